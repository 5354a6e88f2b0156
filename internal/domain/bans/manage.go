package bans

import (
	"time"

	"gorm.io/gorm"
)

// ManageUserBan is the single entry point for the ban axis. Unban
// deactivates every active record for the user; ban inserts a fresh active
// record. durationHours == nil means permanent.
func ManageUserBan(db *gorm.DB, targetUserID, reason string, durationHours *int, unban bool, actorID string) (*Ban, error) {
	if unban {
		err := db.Model(&Ban{}).
			Where("user_id = ? AND is_active = ?", targetUserID, true).
			Update("is_active", false).Error
		return nil, err
	}

	var expires *time.Time
	if durationHours != nil {
		t := time.Now().Add(time.Duration(*durationHours) * time.Hour)
		expires = &t
	}

	ban := Ban{
		UserID:    targetUserID,
		IsActive:  true,
		Reason:    reason,
		ExpiresAt: expires,
		CreatedBy: actorID,
	}
	if err := db.Create(&ban).Error; err != nil {
		return nil, err
	}
	return &ban, nil
}
