package stripe

import (
	"strings"

	"tipadmin-app/config"
)

// Fixed dashboard URLs surfaced to admins for manual review; there is no
// programmatic interface behind them.
const (
	DashboardCustomersURL     = "https://dashboard.stripe.com/customers"
	DashboardSubscriptionsURL = "https://dashboard.stripe.com/subscriptions"
)

// Configured reports whether a plausible secret key is present. Checked
// before any payment call so an unconfigured deployment never reaches out
// to Stripe.
func Configured() bool {
	key := config.STRIPE_SECRET_KEY
	return key != "" && strings.HasPrefix(key, "sk_")
}

// KeyMode classifies the configured key for the system-status panel.
func KeyMode() string {
	switch {
	case strings.HasPrefix(config.STRIPE_SECRET_KEY, "sk_test_"):
		return "test"
	case strings.HasPrefix(config.STRIPE_SECRET_KEY, "sk_live_"):
		return "live"
	default:
		return "invalid"
	}
}
