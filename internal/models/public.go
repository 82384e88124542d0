package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PublicStudentInfo is what anyone knowing a cedula can see about a student.
type PublicStudentInfo struct {
	Name      string          `json:"name" example:"María Pérez"`
	Cedula    string          `json:"cedula" example:"0912345678"`
	Payments  []Payment       `json:"payments"`                                     // Paid payments only
	TotalPaid decimal.Decimal `json:"total_paid" example:"45" swaggertype:"number"` // Sum of all paid payments
}

// PublicExpense is an expense as shown in the public paralelo summary.
type PublicExpense struct {
	Description        string          `json:"description" example:"Decoración aula"`
	Amount             decimal.Decimal `json:"amount" example:"12.5" swaggertype:"number"`
	ResponsibleStudent string          `json:"responsible_student" example:"María Pérez"` // Name of the responsible student, "N/A" if the student has been deleted
	ActivityImage      *string         `json:"activity_image"`
	CreatedAt          time.Time       `json:"created_at" example:"2024-03-02T19:28:44.491514Z"`
}

// ParaleloSummary is the public financial summary of a paralelo.
type ParaleloSummary struct {
	ParaleloName   string          `json:"paralelo_name" example:"Tercero B"`
	TotalIncome    decimal.Decimal `json:"total_income" example:"150" swaggertype:"number"`
	TotalExpenses  decimal.Decimal `json:"total_expenses" example:"40" swaggertype:"number"`
	CurrentBalance decimal.Decimal `json:"current_balance" example:"110" swaggertype:"number"`
	Expenses       []PublicExpense `json:"expenses"`
}

const unknownStudent = "N/A"

// PublicStudent looks up a student by cedula across all treasurers.
//
// If several treasurers registered the same cedula, the student created
// first is returned.
func PublicStudent(db *gorm.DB, cedula string) (PublicStudentInfo, error) {
	var s Student
	err := db.Where("cedula = ?", cedula).Order("created_at, id").First(&s).Error
	if err != nil {
		return PublicStudentInfo{}, err
	}

	payments := make([]Payment, 0)
	err = db.
		Where("student_id = ? AND paid = ?", s.ID, true).
		Order("created_at").
		Limit(MaxResults).
		Find(&payments).Error
	if err != nil {
		return PublicStudentInfo{}, err
	}

	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}

	return PublicStudentInfo{
		Name:      s.Name,
		Cedula:    s.Cedula,
		Payments:  payments,
		TotalPaid: total,
	}, nil
}

// PublicParaleloSummary returns the public summary for the paralelo of the
// treasurer with the given ID.
func PublicParaleloSummary(db *gorm.DB, treasurerID uuid.UUID) (ParaleloSummary, error) {
	t, err := GetTreasurer(db, treasurerID)
	if err != nil {
		return ParaleloSummary{}, err
	}

	summary, err := Summarize(db, t.ID)
	if err != nil {
		return ParaleloSummary{}, err
	}

	expenses, err := t.Expenses(db)
	if err != nil {
		return ParaleloSummary{}, err
	}

	ids := make([]uuid.UUID, 0, len(expenses))
	for _, e := range expenses {
		ids = append(ids, e.ResponsibleStudentID)
	}

	var students []Student
	err = db.Where("tesorero_id = ? AND id IN ?", t.ID, ids).Find(&students).Error
	if err != nil {
		return ParaleloSummary{}, err
	}

	names := make(map[uuid.UUID]string, len(students))
	for _, s := range students {
		names[s.ID] = s.Name
	}

	details := make([]PublicExpense, 0, len(expenses))
	for _, e := range expenses {
		name, ok := names[e.ResponsibleStudentID]
		if !ok {
			name = unknownStudent
		}

		details = append(details, PublicExpense{
			Description:        e.Description,
			Amount:             e.Amount,
			ResponsibleStudent: name,
			ActivityImage:      e.ActivityImage,
			CreatedAt:          e.CreatedAt,
		})
	}

	return ParaleloSummary{
		ParaleloName:   t.ParaleloName,
		TotalIncome:    summary.TotalIncome,
		TotalExpenses:  summary.TotalExpenses,
		CurrentBalance: summary.CurrentBalance,
		Expenses:       details,
	}, nil
}
