package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is money spent by a treasurer on behalf of the paralelo.
//
// The responsible student is not a foreign key, expenses are kept when the
// student is deleted.
type Expense struct {
	DefaultModel
	TesoreroID           uuid.UUID       `json:"tesorero_id" gorm:"index;not null" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Treasurer            Treasurer       `json:"-" gorm:"foreignKey:TesoreroID"`
	ResponsibleStudentID uuid.UUID       `json:"responsible_student_id" example:"f5b7e6a4-0b6a-4f0e-9a52-0a5e9f4f2b11"` // Student who handled the expense
	Description          string          `json:"description" gorm:"not null" example:"Decoración aula"`
	Amount               decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"12.5" swaggertype:"number"`
	ActivityImage        *string         `json:"activity_image" example:"data:image/jpeg;base64,/9j/4AAQ"` // Image of the activity as data URL
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Description == "" {
		return ErrDescriptionEmpty
	}

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// RecordExpense records an expense. The responsible student must belong to
// the treasurer.
func (t Treasurer) RecordExpense(db *gorm.DB, responsibleStudentID uuid.UUID, description string, amount decimal.Decimal, activityImage *string) (Expense, error) {
	_, err := t.Student(db, responsibleStudentID)
	if err != nil {
		return Expense{}, studentError(err)
	}

	e := Expense{
		TesoreroID:           t.ID,
		ResponsibleStudentID: responsibleStudentID,
		Description:          description,
		Amount:               amount,
		ActivityImage:        activityImage,
	}

	err = db.Create(&e).Error
	if err != nil {
		return Expense{}, err
	}

	return e, nil
}

// Expenses returns all expenses of the treasurer, newest first.
func (t Treasurer) Expenses(db *gorm.DB) ([]Expense, error) {
	expenses := make([]Expense, 0)
	err := db.
		Where("tesorero_id = ?", t.ID).
		Order("created_at DESC").
		Limit(MaxResults).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// DeleteExpense deletes an expense of the treasurer.
func (t Treasurer) DeleteExpense(db *gorm.DB, id uuid.UUID) error {
	var e Expense
	err := db.Where("id = ? AND tesorero_id = ?", id, t.ID).First(&e).Error
	if err != nil {
		return err
	}

	return db.Delete(&e).Error
}
