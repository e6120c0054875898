package service

import "errors"

var (
	ErrGigNotFound  = errors.New("gig not found")
	ErrBidNotFound  = errors.New("bid not found")
	ErrUserNotFound = errors.New("user not found")

	// ErrValidation wraps field-constraint violations; the concrete field
	// message is appended at the call site.
	ErrValidation = errors.New("validation failed")

	ErrGigNotOpen      = errors.New("gig is no longer accepting bids")
	ErrOwnBidForbidden = errors.New("gig owner can't bid on their own gig")
	ErrBidAlreadyExists = errors.New("freelancer already submitted a bid for this gig")

	ErrNotGigOwner = errors.New("only the gig owner may perform this action")

	// ErrGigAlreadyAssigned covers both a gig observed as assigned before
	// the transaction and a conditional update lost to a concurrent hire.
	ErrGigAlreadyAssigned = errors.New("gig has already been assigned")

	ErrEmailAlreadyTaken  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
