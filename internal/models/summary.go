package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Summary is the financial state of a paralelo.
type Summary struct {
	TotalIncome     decimal.Decimal `json:"total_income" example:"150" swaggertype:"number"`    // Sum of all paid payments
	TotalExpenses   decimal.Decimal `json:"total_expenses" example:"40" swaggertype:"number"`   // Sum of all expenses
	CurrentBalance  decimal.Decimal `json:"current_balance" example:"110" swaggertype:"number"` // Income minus expenses, can be negative
	TotalStudents   int64           `json:"total_students" example:"10"`
	PendingPayments int64           `json:"pending_payments" example:"20"` // Expected payments according to the dues schedule that have not been made
}

// Summarize calculates the summary for the treasurer with the given ID.
//
// PendingPayments is a coarse count: it compares the number of expected
// payments with the number of paid payments regardless of which months
// they were made for.
func Summarize(db *gorm.DB, treasurerID uuid.UUID) (Summary, error) {
	var s Summary

	err := db.Model(&Student{}).Where("tesorero_id = ?", treasurerID).Count(&s.TotalStudents).Error
	if err != nil {
		return Summary{}, err
	}

	s.TotalIncome, err = income(db, treasurerID)
	if err != nil {
		return Summary{}, err
	}

	s.TotalExpenses, err = expenses(db, treasurerID)
	if err != nil {
		return Summary{}, err
	}

	s.CurrentBalance = s.TotalIncome.Sub(s.TotalExpenses)

	settings, err := Treasurer{DefaultModel: DefaultModel{ID: treasurerID}}.PaymentSettings(db)
	if errors.Is(err, ErrResourceNotFound) {
		return s, nil
	} else if err != nil {
		return Summary{}, err
	}

	var paid int64
	err = db.Model(&Payment{}).
		Where("student_id IN (?) AND paid = ?", ownedStudentIDs(db, treasurerID), true).
		Count(&paid).Error
	if err != nil {
		return Summary{}, err
	}

	expected := s.TotalStudents * int64(len(settings.SelectedMonths))
	s.PendingPayments = max(0, expected-paid)

	return s, nil
}

// income is the sum of all paid payments of the treasurer's students.
func income(db *gorm.DB, treasurerID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := db.
		Select("SUM(amount)").
		Where("student_id IN (?) AND paid = ?", ownedStudentIDs(db, treasurerID), true).
		Table("payments").
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no payments are found, the value is nil
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// expenses is the sum of all expenses of the treasurer.
func expenses(db *gorm.DB, treasurerID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := db.
		Select("SUM(amount)").
		Where("tesorero_id = ?", treasurerID).
		Table("expenses").
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}
