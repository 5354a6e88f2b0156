package bans

import "time"

// Ban is an administrative restriction on a user. A nil ExpiresAt means
// the ban is permanent. Records are only ever inserted or deactivated,
// never edited, so a user accumulates a ban history over time.
type Ban struct {
	ID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string `gorm:"type:uuid;not null;index:idx_bans_user_id"`
	IsActive  bool
	Reason    string
	ExpiresAt *time.Time
	CreatedBy string
	CreatedAt time.Time
}
