package admin

import (
	"time"

	"tipadmin-app/internal/domain/bans"
	"tipadmin-app/internal/domain/stats"
	"tipadmin-app/internal/domain/tips"
	"tipadmin-app/internal/domain/users"
)

// AdminUser is the view-ready user row: the stored record with the ban
// state joined on.
type AdminUser struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	FullName              string     `json:"full_name,omitempty"`
	IsAdmin               bool       `json:"is_admin"`
	SubscriptionActive    bool       `json:"subscription_active"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`
	TrialExpiresAt        *time.Time `json:"trial_expires_at,omitempty"`
	IsTrialUsed           bool       `json:"is_trial_used"`
	TotalSpent            float64    `json:"total_spent"`
	LastLogin             *time.Time `json:"last_login,omitempty"`
	RegistrationIP        string     `json:"registration_ip,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`

	IsBanned     bool       `json:"is_banned"`
	BanReason    *string    `json:"ban_reason,omitempty"`
	BanExpiresAt *time.Time `json:"ban_expires_at,omitempty"`
}

// SimpleUser is the reduced row served by the simplified dashboard.
type SimpleUser struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	FullName              string     `json:"full_name,omitempty"`
	SubscriptionStatus    string     `json:"subscription_status"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`
	TrialExpiresAt        *time.Time `json:"trial_expires_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

type DashboardResponse struct {
	Stats stats.Overview `json:"stats"`
	Users []AdminUser    `json:"users"`
	Tips  []tips.Tip     `json:"tips"`
}

type SimpleDashboardResponse struct {
	Stats stats.Simple `json:"stats"`
	Users []SimpleUser `json:"users"`
}

func toAdminUser(u users.User) AdminUser {
	out := AdminUser{
		ID:                    u.ID,
		Email:                 u.Email,
		FullName:              u.FullName,
		IsAdmin:               u.IsAdmin,
		SubscriptionActive:    u.SubscriptionActive,
		SubscriptionExpiresAt: u.SubscriptionExpiresAt,
		TrialExpiresAt:        u.TrialExpiresAt,
		IsTrialUsed:           u.IsTrialUsed,
		TotalSpent:            u.TotalSpent,
		LastLogin:             u.LastLogin,
		RegistrationIP:        u.RegistrationIP,
		CreatedAt:             u.CreatedAt,
	}
	if b := bans.Active(u.Bans); b != nil {
		out.IsBanned = true
		out.BanReason = &b.Reason
		out.BanExpiresAt = b.ExpiresAt
	}
	return out
}

func toAdminUsers(list []users.User) []AdminUser {
	out := make([]AdminUser, 0, len(list))
	for _, u := range list {
		out = append(out, toAdminUser(u))
	}
	return out
}

func toSimpleUsers(now time.Time, list []users.User) []SimpleUser {
	out := make([]SimpleUser, 0, len(list))
	for _, u := range list {
		out = append(out, SimpleUser{
			ID:                    u.ID,
			Email:                 u.Email,
			FullName:              u.FullName,
			SubscriptionStatus:    users.SubscriptionStatus(now, u),
			SubscriptionExpiresAt: u.SubscriptionExpiresAt,
			TrialExpiresAt:        u.TrialExpiresAt,
			CreatedAt:             u.CreatedAt,
		})
	}
	return out
}
