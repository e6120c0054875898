package entity

import (
	"github.com/google/uuid"
)

// db model
type Gig struct {
	Id          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Budget      float64   `json:"budget" db:"budget"`
	OwnerId     uuid.UUID `json:"ownerId" db:"owner_id"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   string    `json:"createdAt" db:"created_at"`
	UpdatedAt   string    `json:"updatedAt" db:"updated_at"`
}

// service + repo input model
type CreateGigInput struct {
	Title       string // given, 5-100 chars
	Description string // given, 20-2000 chars
	Budget      float64 // given, 1-1000000
	OwnerId     string // given
	// Id UUID sets automatically
	// Status is always "open" on creation
	// CreatedAt/UpdatedAt set automatically
}

// listing filter; empty fields are ignored
type GigFilter struct {
	Text   string
	Status string
}

// controller model
type GigOutputModel struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	OwnerId     string  `json:"ownerId"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}
