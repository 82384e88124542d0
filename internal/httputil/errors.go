package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrNoFilePost       = errors.New("you must send a file in the form field 'file' to this endpoint")
)
