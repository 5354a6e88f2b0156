package billing

import (
	"net/http"

	stripeinfra "tipadmin-app/internal/infra/stripe"

	"github.com/gin-gonic/gin"
)

// GetDashboardLinks hands out the fixed Stripe dashboard URLs the admin UI
// opens in a new tab for manual review, plus the key configuration status
// for the system-status panel.
func GetDashboardLinks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"customers":     stripeinfra.DashboardCustomersURL,
		"subscriptions": stripeinfra.DashboardSubscriptionsURL,
		"configured":    stripeinfra.Configured(),
		"key_mode":      stripeinfra.KeyMode(),
	})
}
