package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		user User
		want string
	}{
		{"active subscription", User{SubscriptionActive: true}, StatusActive},
		{"ongoing trial", User{TrialExpiresAt: &future}, StatusTrial},
		{"lapsed trial, no subscription", User{TrialExpiresAt: &past}, StatusFree},
		{"expired subscription", User{SubscriptionExpiresAt: &past}, StatusExpired},
		{"nothing at all", User{}, StatusFree},
		{"active wins over expiry date", User{SubscriptionActive: true, SubscriptionExpiresAt: &past}, StatusActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubscriptionStatus(now, tt.user))
		})
	}
}
