package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tesoreria-paralelo/backend/internal/models"
)

func (suite *TestSuiteStandard) TestStudentAdd() {
	t := suite.createTestTreasurer()

	s, err := t.AddStudent(suite.db, " Ana ", " 0912345678 ")
	suite.Require().Nil(err)
	suite.Assert().Equal("Ana", s.Name)
	suite.Assert().Equal("0912345678", s.Cedula)
	suite.Assert().Equal(t.ID, s.TesoreroID)

	_, err = t.AddStudent(suite.db, "Otra Ana", "0912345678")
	suite.Assert().ErrorIs(err, models.ErrCedulaNotUnique)

	_, err = t.AddStudent(suite.db, "", "0987654321")
	suite.Assert().ErrorIs(err, models.ErrStudentNameEmpty)

	_, err = t.AddStudent(suite.db, "Bruno", " ")
	suite.Assert().ErrorIs(err, models.ErrCedulaEmpty)

	// Another treasurer can register the same cedula
	other := suite.createTestTreasurer()
	_, err = other.AddStudent(suite.db, "Ana", "0912345678")
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestStudentLookupIsolation() {
	a := suite.createTestTreasurer()
	b := suite.createTestTreasurer()
	s := suite.createTestStudent(a, "Ana", "")

	found, err := a.Student(suite.db, s.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(s.ID, found.ID)

	_, err = b.Student(suite.db, s.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	students, err := b.Students(suite.db)
	suite.Require().Nil(err)
	suite.Assert().Len(students, 0)
}

// TestStudentDeleteCascade verifies that payments are deleted with their
// student while expenses are kept.
func (suite *TestSuiteStandard) TestStudentDeleteCascade() {
	t := suite.createTestTreasurer()
	s := suite.createTestStudent(t, "Ana", "")
	keep := suite.createTestStudent(t, "Bruno", "")

	suite.createTestPayment(t, s.ID, "Enero", 10)
	suite.createTestPayment(t, s.ID, "Febrero", 10)
	suite.createTestPayment(t, keep.ID, "Enero", 10)
	e := suite.createTestExpense(t, s.ID, "Pintura", 5)

	err := t.DeleteStudent(suite.db, s.ID)
	suite.Require().Nil(err)

	var count int64
	suite.db.Model(&models.Payment{}).Where("student_id = ?", s.ID).Count(&count)
	suite.Assert().Equal(int64(0), count)

	suite.db.Model(&models.Payment{}).Where("student_id = ?", keep.ID).Count(&count)
	suite.Assert().Equal(int64(1), count)

	expenses, err := t.Expenses(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal(e.ID, expenses[0].ID)

	err = t.DeleteStudent(suite.db, s.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestStudentDeleteOtherTreasurer() {
	a := suite.createTestTreasurer()
	b := suite.createTestTreasurer()
	s := suite.createTestStudent(a, "Ana", "")

	err := b.DeleteStudent(suite.db, s.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = a.Student(suite.db, s.ID)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestStudentUnknownForPaymentsAndExpenses() {
	t := suite.createTestTreasurer()

	_, _, err := t.RecordPayment(suite.db, uuid.New(), "Enero", "2024", decimal.NewFromInt(10), nil)
	suite.Assert().ErrorIs(err, models.ErrStudentNotFound)

	_, err = t.RecordExpense(suite.db, uuid.New(), "Pintura", decimal.NewFromInt(10), nil)
	suite.Assert().ErrorIs(err, models.ErrStudentNotFound)
}
