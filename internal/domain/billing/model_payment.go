package billing

import (
	"time"

	"tipadmin-app/internal/domain/plans"
	"tipadmin-app/internal/domain/users"
)

// Payment rows are written by the external payment pipeline; this service
// only reads them for the admin payment list and revenue figures.
type Payment struct {
	ID                   uint       `gorm:"primaryKey"`
	UserID               string     `gorm:"type:uuid;index:idx_payments_user_id"`
	User                 users.User `gorm:"foreignKey:UserID"`
	PlanID               *uint
	Plan                 *plans.Plan
	StripeSessionID      string `gorm:"uniqueIndex"`
	StripeSubscriptionID *string
	AmountEUR            float64
	Status               string
	InvoiceID            *string
	ReceiptURL           *string
	CreatedAt            time.Time
}
