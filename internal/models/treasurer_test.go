package models_test

import (
	"github.com/google/uuid"
	"github.com/tesoreria-paralelo/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func (suite *TestSuiteStandard) TestTreasurerRegister() {
	t, err := models.RegisterTreasurer(suite.db, " tesorero_3b ", "secret-password", " Tercero B ")
	suite.Require().Nil(err)

	suite.Assert().NotEqual(uuid.Nil, t.ID)
	suite.Assert().Equal("tesorero_3b", t.Username)
	suite.Assert().Equal("Tercero B", t.ParaleloName)
	suite.Assert().NotEqual("secret-password", t.PasswordHash)
	suite.Assert().Nil(bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte("secret-password")))

	_, err = models.RegisterTreasurer(suite.db, "tesorero_3b", "another-password", "Tercero C")
	suite.Assert().ErrorIs(err, models.ErrUsernameNotUnique)
}

func (suite *TestSuiteStandard) TestTreasurerRegisterInvalid() {
	tests := []struct {
		name         string
		username     string
		password     string
		paraleloName string
		err          error
	}{
		{"Short password", "a", "12345", "Tercero B", models.ErrPasswordTooShort},
		{"Short password with multibyte runes", "b", "ñññññ", "Tercero B", models.ErrPasswordTooShort},
		{"Blank username", " ", "secret-password", "Tercero B", models.ErrUsernameEmpty},
		{"Blank paralelo name", "c", "secret-password", "", models.ErrParaleloNameEmpty},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := models.RegisterTreasurer(suite.db, tt.username, tt.password, tt.paraleloName)
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTreasurerAuthenticate() {
	registered, err := models.RegisterTreasurer(suite.db, "tesorero_3b", "secret-password", "Tercero B")
	suite.Require().Nil(err)

	t, err := models.AuthenticateTreasurer(suite.db, "tesorero_3b", "secret-password")
	suite.Require().Nil(err)
	suite.Assert().Equal(registered.ID, t.ID)

	_, err = models.AuthenticateTreasurer(suite.db, "tesorero_3b", "wrong-password")
	suite.Assert().ErrorIs(err, models.ErrInvalidCredentials)

	_, err = models.AuthenticateTreasurer(suite.db, "nobody", "secret-password")
	suite.Assert().ErrorIs(err, models.ErrInvalidCredentials)
}

func (suite *TestSuiteStandard) TestTreasurerGet() {
	registered := suite.createTestTreasurer()

	t, err := models.GetTreasurer(suite.db, registered.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(registered.Username, t.Username)

	_, err = models.GetTreasurer(suite.db, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTreasurerDBClosed() {
	suite.CloseDB()

	_, err := models.RegisterTreasurer(suite.db, "tesorero_3b", "secret-password", "Tercero B")
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = models.GetTreasurer(suite.db, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
