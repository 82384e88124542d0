package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentSettings is the dues schedule of a treasurer. Each treasurer has
// at most one.
type PaymentSettings struct {
	DefaultModel
	TesoreroID     uuid.UUID       `json:"tesorero_id" gorm:"uniqueIndex:idx_payment_settings_tesorero;not null" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Treasurer      Treasurer       `json:"-" gorm:"foreignKey:TesoreroID"`
	MonthlyAmount  decimal.Decimal `json:"monthly_amount" gorm:"type:DECIMAL(20,8)" example:"15" swaggertype:"number"` // Amount due per month and student
	SelectedMonths []string        `json:"selected_months" gorm:"serializer:json" example:"Enero,Febrero,Marzo"`       // Months in which dues are collected
	AcademicYear   string          `json:"academic_year" example:"2024-2025"`
}

var monthCaser = cases.Title(language.Spanish)

// normalizeMonth returns the label of a month in title case, e.g. "enero" → "Enero".
func normalizeMonth(month string) string {
	return monthCaser.String(strings.ToLower(strings.TrimSpace(month)))
}

func normalizeMonths(months []string) []string {
	normalized := make([]string, 0, len(months))
	for _, m := range months {
		m = normalizeMonth(m)
		if m == "" || slices.Contains(normalized, m) {
			continue
		}
		normalized = append(normalized, m)
	}

	return normalized
}

func (p *PaymentSettings) BeforeSave(_ *gorm.DB) error {
	if !p.MonthlyAmount.IsPositive() {
		return ErrMonthlyAmountNotPositive
	}

	p.SelectedMonths = normalizeMonths(p.SelectedMonths)
	if len(p.SelectedMonths) == 0 {
		return ErrNoMonthsSelected
	}

	p.AcademicYear = strings.TrimSpace(p.AcademicYear)
	return nil
}

// SetPaymentSettings replaces the dues schedule of the treasurer.
//
// The replacement is a single upsert on the treasurer's row, concurrent
// writers overwrite each other and the last write wins.
func (t Treasurer) SetPaymentSettings(db *gorm.DB, monthlyAmount decimal.Decimal, selectedMonths []string, academicYear string) (PaymentSettings, error) {
	p := PaymentSettings{
		TesoreroID:     t.ID,
		MonthlyAmount:  monthlyAmount,
		SelectedMonths: selectedMonths,
		AcademicYear:   academicYear,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tesorero_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"id", "created_at", "monthly_amount", "selected_months", "academic_year"}),
	}).Create(&p).Error
	if err != nil {
		return PaymentSettings{}, err
	}

	return p, nil
}

// PaymentSettings returns the dues schedule of the treasurer.
func (t Treasurer) PaymentSettings(db *gorm.DB) (PaymentSettings, error) {
	var p PaymentSettings
	err := db.Where("tesorero_id = ?", t.ID).First(&p).Error
	if err != nil {
		return PaymentSettings{}, err
	}

	return p, nil
}
