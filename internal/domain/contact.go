package domain

import "time"

// ContactStatus represents the processing state of a contact submission.
type ContactStatus string

const (
	ContactStatusNew ContactStatus = "new"
)

// Contact represents a contact form submission.
// Submissions are created once and never mutated or deleted by this service.
type Contact struct {
	ID               string        `json:"id"`
	ContactNumber    string        `json:"contactNumber"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Phone            *string       `json:"phone,omitempty"`
	Message          string        `json:"message"`
	ArtworkReference *string       `json:"artworkReference,omitempty"`
	Status           ContactStatus `json:"status"`
	SubmittedAt      time.Time     `json:"submittedAt"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
