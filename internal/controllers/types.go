package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tesoreria-paralelo/backend/internal/models"
	ez_uuid "github.com/tesoreria-paralelo/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" format:"UUID"` // ID of the resource
}

type URITreasurerID struct {
	ID ez_uuid.UUID `uri:"tesoreroId" format:"UUID"` // ID of the treasurer
}

type URICedula struct {
	Cedula string `uri:"cedula" example:"0912345678"` // Cedula of the student
}

type Links struct {
	Self string `json:"self" example:"https://example.com/api/students/f5b7e6a4-0b6a-4f0e-9a52-0a5e9f4f2b11"` // The resource itself
}

// Treasurer

type RegisterEditable struct {
	Username     string `json:"username" example:"tesorero_3b"`
	Password     string `json:"password" example:"correct horse battery staple"`
	ParaleloName string `json:"paralelo_name" example:"Tercero B"`
}

type LoginEditable struct {
	Username string `json:"username" example:"tesorero_3b"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type Treasurer struct {
	models.Treasurer
	Links Links `json:"links"`
}

func newTreasurer(c *gin.Context, model models.Treasurer) Treasurer {
	return Treasurer{
		Treasurer: model,
		Links: Links{
			Self: baseURL(c) + "/auth/me",
		},
	}
}

type TreasurerResponse struct {
	Data Treasurer `json:"data"`
}

type LoginObject struct {
	Token string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Bearer token for the Authorization header
	User  Treasurer `json:"user"`
}

type LoginResponse struct {
	Data LoginObject `json:"data"`
}

// Students

type StudentEditable struct {
	Name   string `json:"name" example:"María Pérez"`
	Cedula string `json:"cedula" example:"0912345678"`
}

type Student struct {
	models.Student
	Links Links `json:"links"`
}

func newStudent(c *gin.Context, model models.Student) Student {
	return Student{
		Student: model,
		Links: Links{
			Self: baseURL(c) + "/students/" + model.ID.String(),
		},
	}
}

type StudentResponse struct {
	Data Student `json:"data"`
}

type StudentListResponse struct {
	Data []Student `json:"data"`
}

// Payment settings

type PaymentSettingsEditable struct {
	MonthlyAmount  decimal.Decimal `json:"monthly_amount" example:"15" swaggertype:"number"`
	SelectedMonths []string        `json:"selected_months" example:"Enero,Febrero,Marzo"`
	AcademicYear   string          `json:"academic_year" example:"2024-2025"`
}

type PaymentSettingsResponse struct {
	Data *models.PaymentSettings `json:"data"` // The dues schedule, null if none has been set
}

// Payments

type PaymentEditable struct {
	StudentID    ez_uuid.UUID    `json:"student_id" swaggertype:"string" format:"UUID" example:"f5b7e6a4-0b6a-4f0e-9a52-0a5e9f4f2b11"`
	Month        string          `json:"month" example:"Enero"`
	Year         string          `json:"year" example:"2024"`
	Amount       decimal.Decimal `json:"amount" example:"15" swaggertype:"number"`
	ReceiptImage *string         `json:"receipt_image" example:"data:image/png;base64,iVBORw0KGgo="`
}

type Payment struct {
	models.Payment
	Links Links `json:"links"`
}

func newPayment(c *gin.Context, model models.Payment) Payment {
	return Payment{
		Payment: model,
		Links: Links{
			Self: baseURL(c) + "/payments/" + model.ID.String(),
		},
	}
}

type PaymentResponse struct {
	Data Payment `json:"data"`
}

type PaymentListResponse struct {
	Data []Payment `json:"data"`
}

// Expenses

type ExpenseEditable struct {
	ResponsibleStudentID ez_uuid.UUID    `json:"responsible_student_id" swaggertype:"string" format:"UUID" example:"f5b7e6a4-0b6a-4f0e-9a52-0a5e9f4f2b11"`
	Description          string          `json:"description" example:"Decoración aula"`
	Amount               decimal.Decimal `json:"amount" example:"12.5" swaggertype:"number"`
	ActivityImage        *string         `json:"activity_image" example:"data:image/jpeg;base64,/9j/4AAQ"`
}

type Expense struct {
	models.Expense
	Links Links `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	return Expense{
		Expense: model,
		Links: Links{
			Self: baseURL(c) + "/expenses/" + model.ID.String(),
		},
	}
}

type ExpenseResponse struct {
	Data Expense `json:"data"`
}

type ExpenseListResponse struct {
	Data []Expense `json:"data"`
}

// Summaries

type SummaryResponse struct {
	Data models.Summary `json:"data"`
}

type PublicStudentResponse struct {
	Data *models.PublicStudentInfo `json:"data"` // The student, null if no student has the cedula
}

type ParaleloSummaryResponse struct {
	Data models.ParaleloSummary `json:"data"`
}

// Upload

type UploadObject struct {
	ImageURL string `json:"image_url" example:"data:image/png;base64,iVBORw0KGgo="` // The image as data URL
}

type UploadResponse struct {
	Data UploadObject `json:"data"`
}
