package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tesoreria-paralelo/backend/internal/controllers"
	"github.com/tesoreria-paralelo/backend/internal/models"
	ez_uuid "github.com/tesoreria-paralelo/backend/internal/uuid"
	"github.com/tesoreria-paralelo/backend/test"
)

func (suite *TestSuiteStandard) TestStudentsCreate() {
	s := suite.createTestSession(suite.T(), controllers.RegisterEditable{})

	student := suite.createTestStudent(suite.T(), s, controllers.StudentEditable{Name: "  María Pérez ", Cedula: "0912345678"})
	suite.Assert().Equal("María Pérez", student.Name)
	suite.Assert().Equal("0912345678", student.Cedula)
	suite.Assert().Equal(s.treasurer.ID, student.TesoreroID)
	suite.Assert().Equal(fmt.Sprintf("%s/students/%s", test.BaseURL, student.ID), student.Links.Self)

	tests := []struct {
		name     string
		editable controllers.StudentEditable
		err      error
	}{
		{"Duplicate cedula", controllers.StudentEditable{Name: "Juan Pérez", Cedula: "0912345678"}, models.ErrCedulaNotUnique},
		{"No name", controllers.StudentEditable{Name: " ", Cedula: "0987654321"}, models.ErrStudentNameEmpty},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, test.BaseURL+"/students", tt.editable, s.header())
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err.Error(), test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

// TestStudentsCedulaPerTreasurer verifies that the cedula only needs to be
// unique within a paralelo.
func (suite *TestSuiteStandard) TestStudentsCedulaPerTreasurer() {
	a := suite.createTestSession(suite.T(), controllers.RegisterEditable{})
	b := suite.createTestSession(suite.T(), controllers.RegisterEditable{})

	suite.createTestStudent(suite.T(), a, controllers.StudentEditable{Cedula: "0912345678"})
	suite.createTestStudent(suite.T(), b, controllers.StudentEditable{Cedula: "0912345678"})
}

func (suite *TestSuiteStandard) TestStudentsList() {
	a := suite.createTestSession(suite.T(), controllers.RegisterEditable{})
	b := suite.createTestSession(suite.T(), controllers.RegisterEditable{})

	suite.createTestStudent(suite.T(), a, controllers.StudentEditable{Name: "Zoe"})
	suite.createTestStudent(suite.T(), a, controllers.StudentEditable{Name: "Ana"})
	suite.createTestStudent(suite.T(), b, controllers.StudentEditable{Name: "Bruno"})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, test.BaseURL+"/students", nil, a.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.StudentListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Ana", response.Data[0].Name)
	suite.Assert().Equal("Zoe", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestStudentsListEmpty() {
	s := suite.createTestSession(suite.T(), controllers.RegisterEditable{})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, test.BaseURL+"/students", nil, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data":[]}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestStudentsDelete() {
	a := suite.createTestSession(suite.T(), controllers.RegisterEditable{})
	b := suite.createTestSession(suite.T(), controllers.RegisterEditable{})

	student := suite.createTestStudent(suite.T(), a, controllers.StudentEditable{})
	suite.createTestPayment(suite.T(), a, controllers.PaymentEditable{StudentID: ez_uuid.UUID{UUID: student.ID}})
	suite.createTestExpense(suite.T(), a, controllers.ExpenseEditable{ResponsibleStudentID: ez_uuid.UUID{UUID: student.ID}})

	tests := []struct {
		name    string
		id      string
		session session
		status  int
	}{
		{"Not a valid UUID", "NotParseableAsUUID", a, http.StatusBadRequest},
		{"Unknown ID", uuid.NewString(), a, http.StatusNotFound},
		{"Other treasurer", student.ID.String(), b, http.StatusNotFound},
		{"Own student", student.ID.String(), a, http.StatusNoContent},
		{"Already deleted", student.ID.String(), a, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodDelete, fmt.Sprintf("%s/students/%s", test.BaseURL, tt.id), nil, tt.session.header())
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// Payments are deleted with the student, expenses are kept
	r := test.Request(suite.controller, suite.T(), http.MethodGet, test.BaseURL+"/payments", nil, a.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data":[]}`, r.Body.String())

	r = test.Request(suite.controller, suite.T(), http.MethodGet, test.BaseURL+"/expenses", nil, a.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &expenses)
	suite.Assert().Len(expenses.Data, 1)
}

func (suite *TestSuiteStandard) TestStudentsOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/students", "OPTIONS, GET, POST"},
		{"/students/" + uuid.NewString(), "OPTIONS, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodOptions, test.BaseURL+tt.path, nil)
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
