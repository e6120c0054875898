package common

// Gig statuses. A gig only ever moves open -> assigned.
const (
	GigOpen     = "open"
	GigAssigned = "assigned"
)

// Bid statuses. Only the hire transition mutates them:
// pending -> hired for the winner, pending -> rejected for everyone else.
const (
	BidPending  = "pending"
	BidHired    = "hired"
	BidRejected = "rejected"
)

func IsGigStatus(s string) bool {
	return s == GigOpen || s == GigAssigned
}
