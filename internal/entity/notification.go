package entity

import "time"

// HiredEvent is the payload pushed to a freelancer's live connections
// after a hire has been durably committed.
type HiredEvent struct {
	Message   string    `json:"message"`
	GigId     string    `json:"gigId"`
	GigTitle  string    `json:"gigTitle"`
	Timestamp time.Time `json:"timestamp"`
}
