package users

import (
	"time"

	"tipadmin-app/internal/domain/bans"
)

// User rows are created by the external signup flow; this service only
// reads them and mutates subscription state. Never deleted here.
type User struct {
	ID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email    string `gorm:"not null;uniqueIndex:idx_users_email"`
	FullName string
	IsAdmin  bool

	SubscriptionActive    bool
	SubscriptionExpiresAt *time.Time

	TrialExpiresAt *time.Time
	IsTrialUsed    bool

	// Not always populated; the payment pipeline writes it out of band.
	TotalSpent     float64
	LastLogin      *time.Time
	RegistrationIP string

	Bans []bans.Ban `gorm:"foreignKey:UserID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
