package newsletter

import "errors"

var (
	// ErrSubscriptionNotFound is returned when no subscription matches an email.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrAlreadySubscribed is returned when the email already has a subscription.
	ErrAlreadySubscribed = errors.New("email is already subscribed")
)
