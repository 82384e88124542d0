package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tesoreria-paralelo/backend/internal/controllers"
	ez_uuid "github.com/tesoreria-paralelo/backend/internal/uuid"
	"github.com/tesoreria-paralelo/backend/test"
)

func (suite *TestSuiteStandard) TestPublicStudent() {
	s := suite.createTestSession(suite.T(), controllers.RegisterEditable{})
	student := suite.createTestStudent(suite.T(), s, controllers.StudentEditable{Name: "María Pérez", Cedula: "0912345678"})

	suite.createTestPayment(suite.T(), s, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: student.ID}, Month: "Enero", Amount: decimal.NewFromInt(10)})
	suite.createTestPayment(suite.T(), s, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: student.ID}, Month: "Febrero", Amount: decimal.NewFromInt(5)})

	// No token is needed
	r := test.Request(suite.controller, suite.T(), http.MethodGet, test.BaseURL+"/public/student/0912345678", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.PublicStudentResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("María Pérez", response.Data.Name)
	suite.Assert().Equal("0912345678", response.Data.Cedula)
	suite.Assert().Len(response.Data.Payments, 2)
	suite.Assert().True(decimal.NewFromInt(15).Equal(response.Data.TotalPaid), "Total paid is %s", response.Data.TotalPaid)
}

func (suite *TestSuiteStandard) TestPublicStudentUnknown() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, test.BaseURL+"/public/student/0000000000", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data":null}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestPublicParaleloSummary() {
	s := suite.createTestSession(suite.T(), controllers.RegisterEditable{ParaleloName: "Tercero B"})
	ana := suite.createTestStudent(suite.T(), s, controllers.StudentEditable{Name: "Ana"})
	bruno := suite.createTestStudent(suite.T(), s, controllers.StudentEditable{Name: "Bruno"})

	suite.createTestPayment(suite.T(), s, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: ana.ID}, Amount: decimal.NewFromInt(50)})
	suite.createTestExpense(suite.T(), s, controllers.ExpenseEditable{ResponsibleStudentID: ez_uuid.UUID{UUID: ana.ID}, Description: "Pintura", Amount: decimal.NewFromInt(10)})
	suite.createTestExpense(suite.T(), s, controllers.ExpenseEditable{ResponsibleStudentID: ez_uuid.UUID{UUID: bruno.ID}, Description: "Globos", Amount: decimal.NewFromInt(5)})

	// Expenses stay when their responsible student is deleted
	r := test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("%s/students/%s", test.BaseURL, bruno.ID), nil, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("%s/public/paralelo/%s/summary", test.BaseURL, s.treasurer.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ParaleloSummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Tercero B", response.Data.ParaleloName)
	suite.Assert().True(decimal.NewFromInt(50).Equal(response.Data.TotalIncome), "Income is %s", response.Data.TotalIncome)
	suite.Assert().True(decimal.NewFromInt(15).Equal(response.Data.TotalExpenses), "Expenses are %s", response.Data.TotalExpenses)
	suite.Assert().True(decimal.NewFromInt(35).Equal(response.Data.CurrentBalance), "Balance is %s", response.Data.CurrentBalance)

	suite.Require().Len(response.Data.Expenses, 2)
	names := map[string]string{}
	for _, e := range response.Data.Expenses {
		names[e.Description] = e.ResponsibleStudent
	}
	suite.Assert().Equal(map[string]string{"Pintura": "Ana", "Globos": "N/A"}, names)
}

func (suite *TestSuiteStandard) TestPublicParaleloSummaryFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Unknown treasurer", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("%s/public/paralelo/%s/summary", test.BaseURL, tt.id), nil)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.NotEmpty(t, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}
