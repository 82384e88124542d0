package controllers_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/tesoreria-paralelo/backend/internal/controllers"
	ez_uuid "github.com/tesoreria-paralelo/backend/internal/uuid"
	"github.com/tesoreria-paralelo/backend/test"
)

func (suite *TestSuiteStandard) TestDashboardSummary() {
	s := suite.createTestSession(suite.T(), controllers.RegisterEditable{})
	other := suite.createTestSession(suite.T(), controllers.RegisterEditable{})

	ana := suite.createTestStudent(suite.T(), s, controllers.StudentEditable{Name: "Ana"})
	bruno := suite.createTestStudent(suite.T(), s, controllers.StudentEditable{Name: "Bruno"})
	foreign := suite.createTestStudent(suite.T(), other, controllers.StudentEditable{})

	suite.setTestPaymentSettings(suite.T(), s, controllers.PaymentSettingsEditable{
		MonthlyAmount:  decimal.NewFromInt(15),
		SelectedMonths: []string{"Enero", "Febrero", "Marzo", "Abril", "Mayo"},
	})

	suite.createTestPayment(suite.T(), s, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: ana.ID}, Month: "Enero", Amount: decimal.NewFromInt(15)})
	suite.createTestPayment(suite.T(), s, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: bruno.ID}, Month: "Enero", Amount: decimal.NewFromFloat(15.5)})
	suite.createTestPayment(suite.T(), other, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: foreign.ID}, Amount: decimal.NewFromInt(100)})

	suite.createTestExpense(suite.T(), s, controllers.ExpenseEditable{ResponsibleStudentID: ez_uuid.UUID{UUID: ana.ID}, Amount: decimal.NewFromInt(40)})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, test.BaseURL+"/dashboard/summary", nil, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(decimal.NewFromFloat(30.5).Equal(response.Data.TotalIncome), "Income is %s", response.Data.TotalIncome)
	suite.Assert().True(decimal.NewFromInt(40).Equal(response.Data.TotalExpenses), "Expenses are %s", response.Data.TotalExpenses)
	suite.Assert().True(decimal.NewFromFloat(-9.5).Equal(response.Data.CurrentBalance), "Balance is %s", response.Data.CurrentBalance)
	suite.Assert().Equal(int64(2), response.Data.TotalStudents)
	suite.Assert().Equal(int64(8), response.Data.PendingPayments)
}

func (suite *TestSuiteStandard) TestDashboardSummaryEmpty() {
	s := suite.createTestSession(suite.T(), controllers.RegisterEditable{})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, test.BaseURL+"/dashboard/summary", nil, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data":{"total_income":0,"total_expenses":0,"current_balance":0,"total_students":0,"pending_payments":0}}`, r.Body.String())
}
