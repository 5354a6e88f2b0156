package store

import (
	"context"
	"time"

	"tipadmin-app/database"
	"tipadmin-app/internal/cache"
	"tipadmin-app/internal/domain/billing"
	"tipadmin-app/internal/domain/stats"
	"tipadmin-app/internal/domain/tips"
	"tipadmin-app/internal/domain/users"
)

// Read side shared by every admin surface. Collections are read through
// the shared cache; the request context flows into gorm so queries are
// cancelled when the caller goes away.

func Users(ctx context.Context) ([]users.User, error) {
	var list []users.User
	if ok, err := cache.Shared.Get(ctx, cache.KeyUsers, &list); err == nil && ok {
		return list, nil
	}

	err := database.DB.WithContext(ctx).
		Preload("Bans").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}

	_ = cache.Shared.Set(ctx, cache.KeyUsers, list)
	return list, nil
}

func Tips(ctx context.Context) ([]tips.Tip, error) {
	var list []tips.Tip
	if ok, err := cache.Shared.Get(ctx, cache.KeyTips, &list); err == nil && ok {
		return list, nil
	}

	err := database.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}

	_ = cache.Shared.Set(ctx, cache.KeyTips, list)
	return list, nil
}

func Stats(ctx context.Context) (stats.Overview, error) {
	var snapshot stats.Overview
	if ok, err := cache.Shared.Get(ctx, cache.KeyStats, &snapshot); err == nil && ok {
		return snapshot, nil
	}

	db := database.DB.WithContext(ctx)

	var userList []users.User
	if err := db.Preload("Bans").Find(&userList).Error; err != nil {
		return snapshot, err
	}
	var tipList []tips.Tip
	if err := db.Find(&tipList).Error; err != nil {
		return snapshot, err
	}
	var payments []billing.Payment
	if err := db.Find(&payments).Error; err != nil {
		return snapshot, err
	}

	snapshot = stats.ComputeOverview(time.Now(), userList, tipList, payments)
	_ = cache.Shared.Set(ctx, cache.KeyStats, snapshot)
	return snapshot, nil
}

// InvalidateUsers drops user-derived cache entries after a mutation.
func InvalidateUsers(ctx context.Context) {
	_ = cache.Shared.Invalidate(ctx, cache.KeyUsers, cache.KeyStats)
}

// InvalidateTips drops tip-derived cache entries after a mutation.
func InvalidateTips(ctx context.Context) {
	_ = cache.Shared.Invalidate(ctx, cache.KeyTips, cache.KeyStats)
}
