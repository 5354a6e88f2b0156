package users

import "tipadmin-app/internal/domain/bans"

// List filter keys accepted by the users tab.
const (
	FilterAll      = "all"
	FilterActive   = "active"
	FilterInactive = "inactive"
	FilterBanned   = "banned"
	FilterTrial    = "trial"
)

// Filter applies the selected predicate to an already-loaded user list.
//
// The "trial" predicate deliberately does NOT compare the trial expiry
// against the clock: a user with a past-dated, unused trial still counts.
// That matches the shipped behavior and downstream consumers depend on it;
// flagged for product review rather than fixed here.
func Filter(list []User, filter string) []User {
	out := make([]User, 0, len(list))
	for _, u := range list {
		switch filter {
		case FilterActive:
			if !u.SubscriptionActive {
				continue
			}
		case FilterInactive:
			if u.SubscriptionActive {
				continue
			}
		case FilterBanned:
			if !bans.IsBanned(u.Bans) {
				continue
			}
		case FilterTrial:
			if u.TrialExpiresAt == nil || u.IsTrialUsed {
				continue
			}
		}
		out = append(out, u)
	}
	return out
}
