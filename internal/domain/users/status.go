package users

import "time"

// Subscription status labels surfaced by the simplified dashboard.
const (
	StatusActive  = "active"
	StatusTrial   = "trial"
	StatusExpired = "expired"
	StatusFree    = "free"
)

// SubscriptionStatus collapses the subscription flags into one label.
// Unlike the trial list filter, this one checks the trial expiry against
// the clock: an ongoing trial shows as "trial", a lapsed subscription as
// "expired".
func SubscriptionStatus(now time.Time, u User) string {
	if u.SubscriptionActive {
		return StatusActive
	}
	if u.TrialExpiresAt != nil && now.Before(*u.TrialExpiresAt) {
		return StatusTrial
	}
	if u.SubscriptionExpiresAt != nil && now.After(*u.SubscriptionExpiresAt) {
		return StatusExpired
	}
	return StatusFree
}
