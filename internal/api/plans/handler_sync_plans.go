package plans

import (
	"net/http"

	"tipadmin-app/config"
	"tipadmin-app/database"
	"tipadmin-app/internal/domain/plans"
	stripeinfra "tipadmin-app/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/price"
)

// ListPlans returns the checkout allow-list.
func ListPlans(c *gin.Context) {
	if !database.Configured() {
		c.JSON(http.StatusOK, []plans.Plan{})
		return
	}

	var list []plans.Plan
	if err := database.DB.WithContext(c.Request.Context()).Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// SyncPlansFromStripe pulls the active recurring prices from Stripe into
// the local plans table, which acts as the allow-list for checkout.
func SyncPlansFromStripe(c *gin.Context) {
	if !stripeinfra.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Stripe not configured"})
		return
	}
	stripe.Key = config.STRIPE_SECRET_KEY

	if !database.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
		return
	}

	params := &stripe.PriceListParams{}
	params.Active = stripe.Bool(true)
	params.Type = stripe.String("recurring")
	params.AddExpand("data.product")

	it := price.List(params)

	created := 0
	updated := 0
	skipped := 0

	for it.Next() {
		p := it.Price()

		if !p.Active || p.Recurring == nil || p.Product == nil || !p.Product.Active {
			skipped++
			continue
		}
		if string(p.Currency) != "eur" {
			skipped++
			continue
		}

		row := plans.Plan{
			Name:          p.Product.Name,
			PriceEUR:      float64(p.UnitAmount) / 100,
			StripePriceID: p.ID,
			Interval:      string(p.Recurring.Interval),
		}

		var existing plans.Plan
		err := database.DB.Where("stripe_price_id = ?", p.ID).First(&existing).Error
		if err != nil {
			if err := database.DB.Create(&row).Error; err != nil {
				skipped++
				continue
			}
			created++
			continue
		}

		if err := database.DB.Model(&existing).Updates(map[string]interface{}{
			"name":      row.Name,
			"price_eur": row.PriceEUR,
			"interval":  row.Interval,
		}).Error; err != nil {
			skipped++
			continue
		}
		updated++
	}

	if err := it.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list Stripe prices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"created": created,
		"updated": updated,
		"skipped": skipped,
	})
}
