package stats

import (
	"math"
	"time"

	"tipadmin-app/internal/domain/bans"
	"tipadmin-app/internal/domain/billing"
	"tipadmin-app/internal/domain/tips"
	"tipadmin-app/internal/domain/users"
)

// AverageSessionTime is a placeholder: no session tracking exists anywhere
// in the system, so there is nothing to derive it from.
const AverageSessionTime = "12m 34s"

// Overview is the recomputed dashboard snapshot. Not persisted; discarded
// and rebuilt on every fetch cycle.
type Overview struct {
	TotalUsers          int     `json:"total_users"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	BannedUsers         int     `json:"banned_users"`
	TotalTips           int     `json:"total_tips"`
	FreeTips            int     `json:"free_tips"`
	VIPTips             int     `json:"vip_tips"`
	TodayRevenue        float64 `json:"today_revenue"`
	MonthlyRevenue      float64 `json:"monthly_revenue"`
	ConversionRate      float64 `json:"conversion_rate"`
	AverageSessionTime  string  `json:"average_session_time"`
}

// Simple is the reduced snapshot served by the simplified dashboard. It
// classifies each user by SubscriptionStatus, so here trial really does
// mean an ongoing trial.
type Simple struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Trial   int `json:"trial"`
	Expired int `json:"expired"`
}

// ComputeOverview scans the fetched collections with boolean predicates.
// Revenue and conversion are derived from real data here (payments and the
// user list) instead of the fixed figures the dashboard used to show.
func ComputeOverview(now time.Time, userList []users.User, tipList []tips.Tip, payments []billing.Payment) Overview {
	o := Overview{AverageSessionTime: AverageSessionTime}

	o.TotalUsers = len(userList)
	for _, u := range userList {
		if u.SubscriptionActive {
			o.ActiveSubscriptions++
		}
		if bans.IsBanned(u.Bans) {
			o.BannedUsers++
		}
	}

	o.TotalTips = len(tipList)
	for _, t := range tipList {
		switch t.Category {
		case tips.CategoryFree:
			o.FreeTips++
		case tips.CategoryVIP:
			o.VIPTips++
		}
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := now.AddDate(0, 0, -30)
	for _, p := range payments {
		if p.Status != "paid" {
			continue
		}
		if !p.CreatedAt.Before(dayStart) {
			o.TodayRevenue += p.AmountEUR
		}
		if !p.CreatedAt.Before(monthStart) {
			o.MonthlyRevenue += p.AmountEUR
		}
	}

	if o.TotalUsers > 0 {
		rate := float64(o.ActiveSubscriptions) / float64(o.TotalUsers) * 100
		o.ConversionRate = math.Round(rate*10) / 10
	}

	return o
}

// ComputeSimple builds the simplified dashboard counters.
func ComputeSimple(now time.Time, userList []users.User) Simple {
	s := Simple{Total: len(userList)}
	for _, u := range userList {
		switch users.SubscriptionStatus(now, u) {
		case users.StatusActive:
			s.Active++
		case users.StatusTrial:
			s.Trial++
		case users.StatusExpired:
			s.Expired++
		}
	}
	return s
}
