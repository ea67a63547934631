package domain

import "time"

// SubscriptionStatus represents the lifecycle state of a newsletter subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive SubscriptionStatus = "active"
)

// Subscription represents a newsletter subscription.
// Email is stored lower-cased; uniqueness is enforced by the storage layer.
type Subscription struct {
	ID           string             `json:"id"`
	Email        string             `json:"email"`
	Source       string             `json:"source"`
	Status       SubscriptionStatus `json:"status"`
	SubscribedAt time.Time          `json:"subscribedAt"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}
