package domain

import (
	"time"

	"github.com/google/uuid"
)

// Scenario is a named, stored parameter preset. Only inputs are stored;
// analyses are recomputed on every request.
type Scenario struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Params      Params    `json:"params"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
