package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tipadmin-app/internal/domain/bans"
)

func testUsers() []User {
	past := time.Now().Add(-72 * time.Hour)
	future := time.Now().Add(72 * time.Hour)

	return []User{
		{ID: "u1", Email: "vip@example.com", SubscriptionActive: true},
		{ID: "u2", Email: "free@example.com"},
		{ID: "u3", Email: "banned@example.com", Bans: []bans.Ban{
			{IsActive: true, Reason: "spam"},
		}},
		{ID: "u4", Email: "trial@example.com", TrialExpiresAt: &future},
		{ID: "u5", Email: "lapsed-trial@example.com", TrialExpiresAt: &past},
		{ID: "u6", Email: "used-trial@example.com", TrialExpiresAt: &future, IsTrialUsed: true},
	}
}

func ids(list []User) []string {
	out := make([]string, 0, len(list))
	for _, u := range list {
		out = append(out, u.ID)
	}
	return out
}

func TestFilterAll(t *testing.T) {
	all := testUsers()
	assert.Len(t, Filter(all, FilterAll), len(all))
	assert.Len(t, Filter(all, "unknown"), len(all))
}

func TestFilterActiveInactive(t *testing.T) {
	all := testUsers()
	assert.Equal(t, []string{"u1"}, ids(Filter(all, FilterActive)))
	assert.Equal(t, []string{"u2", "u3", "u4", "u5", "u6"}, ids(Filter(all, FilterInactive)))
}

func TestFilterBannedExactSubset(t *testing.T) {
	all := testUsers()
	banned := Filter(all, FilterBanned)
	require.Len(t, banned, 1)
	assert.Equal(t, "u3", banned[0].ID)
}

func TestFilterTrialIgnoresExpiry(t *testing.T) {
	// The trial predicate is expiry-present AND not-used. A past-dated,
	// unused trial still classifies as trial; a used one never does. This
	// is the shipped behavior and must not be silently "fixed".
	all := testUsers()
	assert.Equal(t, []string{"u4", "u5"}, ids(Filter(all, FilterTrial)))
}
