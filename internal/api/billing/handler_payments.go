package billing

import (
	"net/http"

	"tipadmin-app/database"
	"tipadmin-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

type AdminPayment struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	PlanName   *string `json:"plan_name,omitempty"`
	AmountEUR  float64 `json:"amount_eur"`
	Status     string  `json:"status"`
	InvoiceID  *string `json:"invoice_id,omitempty"`
	ReceiptURL *string `json:"receipt_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// ListAllPayments returns every payment row, newest first. Rows are
// written by the external payment pipeline; this is read-only.
func ListAllPayments(c *gin.Context) {
	if !database.Configured() {
		c.JSON(http.StatusOK, []AdminPayment{})
		return
	}

	var payments []billing.Payment
	err := database.DB.WithContext(c.Request.Context()).
		Preload("User").
		Preload("Plan").
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	result := make([]AdminPayment, 0, len(payments))
	for _, p := range payments {
		var planName *string
		if p.Plan != nil {
			planName = &p.Plan.Name
		}
		result = append(result, AdminPayment{
			ID:         p.ID,
			Email:      p.User.Email,
			PlanName:   planName,
			AmountEUR:  p.AmountEUR,
			Status:     p.Status,
			InvoiceID:  p.InvoiceID,
			ReceiptURL: p.ReceiptURL,
			CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}
