package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxResults is the upper bound for the number of records returned by
// any list query.
const MaxResults = 1000

func init() {
	// Amounts are sent as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultModel is the base model for all resources.
type DefaultModel struct {
	ID        uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	CreatedAt time.Time `json:"created_at" example:"2024-03-02T19:28:44.491514Z"`  // Time the resource was created
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	return nil
}

// BeforeCreate is set to generate a UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID = uuid.New()
	return nil
}
