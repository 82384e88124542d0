package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrUsernameNotUnique  = errors.New("the username is already registered")
	ErrUsernameEmpty      = errors.New("the username must not be empty")
	ErrParaleloNameEmpty  = errors.New("the paralelo name must not be empty")
	ErrPasswordTooShort   = errors.New("the password must be at least 6 characters long")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrCedulaNotUnique  = errors.New("a student with this cedula already exists in your paralelo")
	ErrStudentNameEmpty = errors.New("the student name must not be empty")
	ErrCedulaEmpty      = errors.New("the cedula must not be empty")
	ErrStudentNotFound  = fmt.Errorf("%w student with this ID in your paralelo", ErrResourceNotFound)

	ErrMonthlyAmountNotPositive = errors.New("the monthly amount must be positive")
	ErrNoMonthsSelected         = errors.New("at least one month must be selected")

	ErrPaymentCellNotUnique = errors.New("a payment for this student, month and year already exists")
	ErrMonthEmpty           = errors.New("the month must not be empty")
	ErrYearEmpty            = errors.New("the year must not be empty")
	ErrAmountNotPositive    = errors.New("the amount must be positive")
	ErrDescriptionEmpty     = errors.New("the description must not be empty")

	ErrUnauthorized = errors.New("you are not allowed to access this resource")
)
