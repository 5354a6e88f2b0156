package admin

import (
	"context"

	"tipadmin-app/internal/store"
)

// Loaders are package variables so the handlers can be exercised against
// a stand-in read side in tests.
var (
	loadUsers = store.Users
	loadTips  = store.Tips
	loadStats = store.Stats
)

func invalidateUsers(ctx context.Context) {
	store.InvalidateUsers(ctx)
}
