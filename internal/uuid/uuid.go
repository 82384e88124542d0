package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

var ErrInvalidUUID = errors.New("the specified resource ID is not a valid UUID")

// UUID wraps google/uuid so that it can be bound from URI parameters
// with gin.
type UUID struct {
	google_uuid.UUID
}

// UnmarshalParam implements gin's binding.BindUnmarshaler
func (u *UUID) UnmarshalParam(p string) error {
	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return ErrInvalidUUID
	}

	*u = UUID{parsed}
	return nil
}
