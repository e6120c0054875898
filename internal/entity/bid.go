package entity

import (
	"github.com/google/uuid"
)

// db model
type Bid struct {
	Id           uuid.UUID `json:"id" db:"id"`
	GigId        uuid.UUID `json:"gigId" db:"gig_id"`
	FreelancerId uuid.UUID `json:"freelancerId" db:"freelancer_id"`
	Message      string    `json:"message" db:"message"`
	Price        float64   `json:"price" db:"price"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    string    `json:"createdAt" db:"created_at"`
	UpdatedAt    string    `json:"updatedAt" db:"updated_at"`
}

// service + repo input model
type CreateBidInput struct {
	GigId        string // given
	FreelancerId string // given
	Message      string // given, 10-1000 chars
	Price        float64 // given, 1-1000000
	// Id UUID sets automatically
	// Status is always "pending" on creation
	// CreatedAt/UpdatedAt set automatically
}

// controller model
type BidOutputModel struct {
	Id           string  `json:"id"`
	GigId        string  `json:"gigId"`
	FreelancerId string  `json:"freelancerId"`
	Message      string  `json:"message"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
}

// what Hire returns to the caller once the transition is durably committed
type HireResult struct {
	Bid     *BidOutputModel `json:"bid"`
	Message string          `json:"message"`
}
