package models

import "time"

// Event is a campus activity students attend.
type Event struct {
	CreatedAt      time.Time `json:"created_at"`
	Description    *string   `json:"description"`
	EventDate      string    `json:"event_date"` // YYYY-MM-DD
	ID             int64     `json:"id"`
	Location       *string   `json:"location"`
	Name           string    `json:"name"`
	OrganizationID *int64    `json:"organization_id"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EventChanges holds the columns a partial update touches.
type EventChanges struct {
	Name           *string
	Description    *string
	Location       *string
	EventDate      *string
	OrganizationID *int64
}
