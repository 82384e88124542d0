package models

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// Treasurer is the tenant owning a paralelo (class) and all its data.
type Treasurer struct {
	DefaultModel
	Username     string `json:"username" gorm:"uniqueIndex:idx_treasurers_username;not null" example:"tesorero_3b"` // Login name, unique across all treasurers
	PasswordHash string `json:"-" gorm:"not null"`
	ParaleloName string `json:"paralelo_name" example:"Tercero B"` // Name of the class
}

func (t *Treasurer) BeforeSave(_ *gorm.DB) error {
	t.Username = strings.TrimSpace(t.Username)
	t.ParaleloName = strings.TrimSpace(t.ParaleloName)

	if t.Username == "" {
		return ErrUsernameEmpty
	}

	if t.ParaleloName == "" {
		return ErrParaleloNameEmpty
	}

	return nil
}

// RegisterTreasurer creates a new treasurer with a bcrypt hash of the password.
func RegisterTreasurer(db *gorm.DB, username, password, paraleloName string) (Treasurer, error) {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return Treasurer{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Treasurer{}, err
	}

	t := Treasurer{
		Username:     username,
		PasswordHash: string(hash),
		ParaleloName: paraleloName,
	}

	err = db.Create(&t).Error
	if err != nil {
		return Treasurer{}, err
	}

	return t, nil
}

// AuthenticateTreasurer verifies the credentials and returns the matching
// treasurer. Unknown usernames and wrong passwords both return
// ErrInvalidCredentials.
func AuthenticateTreasurer(db *gorm.DB, username, password string) (Treasurer, error) {
	var t Treasurer
	err := db.Where("username = ?", strings.TrimSpace(username)).First(&t).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return Treasurer{}, ErrInvalidCredentials
		}
		return Treasurer{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password)) != nil {
		return Treasurer{}, ErrInvalidCredentials
	}

	return t, nil
}

// GetTreasurer returns the treasurer with the given ID.
func GetTreasurer(db *gorm.DB, id uuid.UUID) (Treasurer, error) {
	var t Treasurer
	err := db.Where("id = ?", id).First(&t).Error
	if err != nil {
		return Treasurer{}, err
	}

	return t, nil
}
