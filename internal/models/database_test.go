package models_test

import (
	"github.com/google/uuid"
	"github.com/tesoreria-paralelo/backend/internal/models"
)

// TestNotFoundMessage verifies that missing records are reported with the
// type of the resource.
func (suite *TestSuiteStandard) TestNotFoundMessage() {
	_, err := models.GetTreasurer(suite.db, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no treasurer matching your query", err.Error())

	t := suite.createTestTreasurer()
	err = t.DeleteExpense(suite.db, uuid.New())
	suite.Assert().Equal("there is no expense matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDBClosed() {
	t := suite.createTestTreasurer()
	s := suite.createTestStudent(t, "Ana", "")
	suite.CloseDB()

	_, err := t.AddStudent(suite.db, "Bruno", "0912345678")
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = t.Students(suite.db)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = t.DeleteStudent(suite.db, s.ID)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = t.Expenses(suite.db)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = t.Payments(suite.db)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
