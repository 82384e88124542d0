package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is the payment of a student for one month of one year.
//
// A payment does not reference the treasurer, ownership is derived
// through the student.
type Payment struct {
	DefaultModel
	StudentID    uuid.UUID       `json:"student_id" gorm:"uniqueIndex:idx_payments_cell,priority:1;not null" example:"f5b7e6a4-0b6a-4f0e-9a52-0a5e9f4f2b11"`
	Student      Student         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Month        string          `json:"month" gorm:"uniqueIndex:idx_payments_cell,priority:2;not null" example:"Enero"`
	Year         string          `json:"year" gorm:"uniqueIndex:idx_payments_cell,priority:3;not null" example:"2024"`
	Paid         bool            `json:"paid" example:"true"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"15" swaggertype:"number"`
	ReceiptImage *string         `json:"receipt_image" example:"data:image/png;base64,iVBORw0KGgo="` // Image of the receipt as data URL
}

func (p *Payment) BeforeSave(_ *gorm.DB) error {
	p.Month = normalizeMonth(p.Month)
	p.Year = strings.TrimSpace(p.Year)

	if p.Month == "" {
		return ErrMonthEmpty
	}

	if p.Year == "" {
		return ErrYearEmpty
	}

	if !p.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// RecordPayment marks the cell of the student for month and year as paid.
//
// If a payment for the cell already exists, it is overwritten and its
// creation time is refreshed. The returned bool reports if a new payment
// was created.
func (t Treasurer) RecordPayment(db *gorm.DB, studentID uuid.UUID, month, year string, amount decimal.Decimal, receiptImage *string) (Payment, bool, error) {
	_, err := t.Student(db, studentID)
	if err != nil {
		return Payment{}, false, studentError(err)
	}

	res, err := upsertPayment(db, studentID, month, year, amount, receiptImage)
	if errors.Is(err, ErrPaymentCellNotUnique) {
		// A concurrent request created the cell in between, overwrite it
		res, err = upsertPayment(db, studentID, month, year, amount, receiptImage)
	}

	if err != nil {
		return Payment{}, false, err
	}

	return res.Payment, res.created, nil
}

// upsertPayment is the find-then-update of a single payment cell.
func upsertPayment(db *gorm.DB, studentID uuid.UUID, month, year string, amount decimal.Decimal, receiptImage *string) (paymentResult, error) {
	cell := Payment{StudentID: studentID, Month: month, Year: year, Amount: amount, ReceiptImage: receiptImage, Paid: true}

	// Validate and normalize before the lookup so that "enero" finds "Enero"
	err := cell.BeforeSave(db)
	if err != nil {
		return paymentResult{}, err
	}

	var existing Payment
	err = db.Where("student_id = ? AND month = ? AND year = ?", cell.StudentID, cell.Month, cell.Year).First(&existing).Error
	if errors.Is(err, ErrResourceNotFound) {
		err = db.Create(&cell).Error
		if err != nil {
			return paymentResult{}, err
		}
		return paymentResult{Payment: cell, created: true}, nil
	} else if err != nil {
		return paymentResult{}, err
	}

	err = db.Model(&existing).Updates(map[string]interface{}{
		"paid":          true,
		"amount":        cell.Amount,
		"receipt_image": cell.ReceiptImage,
		"created_at":    db.NowFunc(),
	}).Error
	if err != nil {
		return paymentResult{}, err
	}

	err = db.Where("id = ?", existing.ID).First(&existing).Error
	if err != nil {
		return paymentResult{}, err
	}

	return paymentResult{Payment: existing}, nil
}

type paymentResult struct {
	Payment
	created bool
}

// Payments returns all payments of the treasurer's students.
func (t Treasurer) Payments(db *gorm.DB) ([]Payment, error) {
	payments := make([]Payment, 0)
	err := db.
		Where("student_id IN (?)", ownedStudentIDs(db, t.ID)).
		Order("created_at").
		Limit(MaxResults).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}

// DeletePayment deletes a payment of one of the treasurer's students.
//
// If the payment exists but belongs to another treasurer's student,
// ErrUnauthorized is returned.
func (t Treasurer) DeletePayment(db *gorm.DB, id uuid.UUID) error {
	var p Payment
	err := db.Where("id = ?", id).First(&p).Error
	if err != nil {
		return err
	}

	_, err = t.Student(db, p.StudentID)
	if errors.Is(err, ErrResourceNotFound) {
		return ErrUnauthorized
	} else if err != nil {
		return err
	}

	return db.Delete(&p).Error
}

// ownedStudentIDs is a subquery selecting the IDs of all students of a treasurer.
func ownedStudentIDs(db *gorm.DB, treasurerID uuid.UUID) *gorm.DB {
	return db.Model(&Student{}).Select("id").Where("tesorero_id = ?", treasurerID)
}
