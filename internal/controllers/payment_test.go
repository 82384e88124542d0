package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tesoreria-paralelo/backend/internal/controllers"
	"github.com/tesoreria-paralelo/backend/internal/models"
	ez_uuid "github.com/tesoreria-paralelo/backend/internal/uuid"
	"github.com/tesoreria-paralelo/backend/test"
)

func (suite *TestSuiteStandard) TestPaymentsCreate() {
	s := suite.createTestSession(suite.T(), controllers.RegisterEditable{})
	student := suite.createTestStudent(suite.T(), s, controllers.StudentEditable{})
	receipt := "data:image/png;base64,iVBORw0KGgo="

	p := suite.createTestPayment(suite.T(), s, controllers.PaymentEditable{
		StudentID:    ez_uuid.UUID{UUID: student.ID},
		Month:        "enero",
		Year:         "2024",
		Amount:       decimal.NewFromInt(15),
		ReceiptImage: &receipt,
	})

	suite.Assert().Equal(student.ID, p.StudentID)
	suite.Assert().Equal("Enero", p.Month)
	suite.Assert().Equal("2024", p.Year)
	suite.Assert().True(p.Paid)
	suite.Assert().True(decimal.NewFromInt(15).Equal(p.Amount), "Amount is %s", p.Amount)
	suite.Require().NotNil(p.ReceiptImage)
	suite.Assert().Equal(receipt, *p.ReceiptImage)
	suite.Assert().Equal(fmt.Sprintf("%s/payments/%s", test.BaseURL, p.ID), p.Links.Self)
}

// TestPaymentsOverwrite verifies that paying the same month twice updates
// the existing payment.
func (suite *TestSuiteStandard) TestPaymentsOverwrite() {
	s := suite.createTestSession(suite.T(), controllers.RegisterEditable{})
	student := suite.createTestStudent(suite.T(), s, controllers.StudentEditable{})

	first := suite.createTestPayment(suite.T(), s, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: student.ID}, Month: "Marzo", Amount: decimal.NewFromInt(10)})
	second := suite.createTestPayment(suite.T(), s, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: student.ID}, Month: "MARZO", Amount: decimal.NewFromInt(20)}, http.StatusOK)

	suite.Assert().Equal(first.ID, second.ID)
	suite.Assert().True(decimal.NewFromInt(20).Equal(second.Amount), "Amount is %s", second.Amount)
	suite.Assert().Nil(second.ReceiptImage)

	r := test.Request(suite.controller, suite.T(), http.MethodGet, test.BaseURL+"/payments", nil, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.PaymentListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().True(decimal.NewFromInt(20).Equal(response.Data[0].Amount))
}

func (suite *TestSuiteStandard) TestPaymentsCreateFails() {
	a := suite.createTestSession(suite.T(), controllers.RegisterEditable{})
	b := suite.createTestSession(suite.T(), controllers.RegisterEditable{})
	student := suite.createTestStudent(suite.T(), a, controllers.StudentEditable{})
	foreign := suite.createTestStudent(suite.T(), b, controllers.StudentEditable{})

	tests := []struct {
		name     string
		editable controllers.PaymentEditable
		status   int
		err      error
	}{
		{"Student of other treasurer", controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: foreign.ID}, Month: "Enero", Year: "2024", Amount: decimal.NewFromInt(15)}, http.StatusNotFound, models.ErrStudentNotFound},
		{"Unknown student", controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: uuid.New()}, Month: "Enero", Year: "2024", Amount: decimal.NewFromInt(15)}, http.StatusNotFound, models.ErrStudentNotFound},
		{"No month", controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: student.ID}, Year: "2024", Amount: decimal.NewFromInt(15)}, http.StatusBadRequest, models.ErrMonthEmpty},
		{"No year", controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: student.ID}, Month: "Enero", Amount: decimal.NewFromInt(15)}, http.StatusBadRequest, models.ErrYearEmpty},
		{"Zero amount", controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: student.ID}, Month: "Enero", Year: "2024"}, http.StatusBadRequest, models.ErrAmountNotPositive},
		{"Negative amount", controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: student.ID}, Month: "Enero", Year: "2024", Amount: decimal.NewFromInt(-5)}, http.StatusBadRequest, models.ErrAmountNotPositive},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, test.BaseURL+"/payments", tt.editable, a.header())
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.err.Error(), test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

// TestPaymentsIsolation verifies that treasurers only see payments of
// their own students.
func (suite *TestSuiteStandard) TestPaymentsIsolation() {
	a := suite.createTestSession(suite.T(), controllers.RegisterEditable{})
	b := suite.createTestSession(suite.T(), controllers.RegisterEditable{})

	studentA := suite.createTestStudent(suite.T(), a, controllers.StudentEditable{})
	studentB := suite.createTestStudent(suite.T(), b, controllers.StudentEditable{})

	suite.createTestPayment(suite.T(), a, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: studentA.ID}, Month: "Enero"})
	suite.createTestPayment(suite.T(), a, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: studentA.ID}, Month: "Febrero"})
	suite.createTestPayment(suite.T(), b, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: studentB.ID}, Month: "Enero"})

	tests := []struct {
		name    string
		session session
		count   int
	}{
		{"Treasurer A", a, 2},
		{"Treasurer B", b, 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, test.BaseURL+"/payments", nil, tt.session.header())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response controllers.PaymentListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentsDelete() {
	a := suite.createTestSession(suite.T(), controllers.RegisterEditable{})
	b := suite.createTestSession(suite.T(), controllers.RegisterEditable{})
	student := suite.createTestStudent(suite.T(), a, controllers.StudentEditable{})
	p := suite.createTestPayment(suite.T(), a, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: student.ID}})

	tests := []struct {
		name    string
		id      string
		session session
		status  int
	}{
		{"Not a valid UUID", "NotParseableAsUUID", a, http.StatusBadRequest},
		{"Unknown ID", uuid.NewString(), a, http.StatusNotFound},
		{"Other treasurer", p.ID.String(), b, http.StatusForbidden},
		{"Own payment", p.ID.String(), a, http.StatusNoContent},
		{"Already deleted", p.ID.String(), a, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodDelete, fmt.Sprintf("%s/payments/%s", test.BaseURL, tt.id), nil, tt.session.header())
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusForbidden {
				assert.Equal(t, models.ErrUnauthorized.Error(), test.DecodeError(t, r.Body.Bytes()))
			}
		})
	}
}
