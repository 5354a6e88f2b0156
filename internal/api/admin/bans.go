package admin

import (
	"log"
	"net/http"

	"tipadmin-app/database"
	"tipadmin-app/internal/domain/bans"
	"tipadmin-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// BanUser restricts a user's access. A null/absent duration means the ban
// is permanent; otherwise it expires after the given number of hours.
func BanUser(c *gin.Context) {
	var body struct {
		Reason        string `json:"reason" binding:"required"`
		DurationHours *int   `json:"duration_hours"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ban reason is required"})
		return
	}

	if !database.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
		return
	}

	userID := c.Param("id")
	ctx := c.Request.Context()

	var user users.User
	if err := database.DB.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ban, err := bans.ManageUserBan(database.DB.WithContext(ctx), userID, body.Reason, body.DurationHours, false, c.GetString("user_id"))
	if err != nil {
		log.Printf("Error banning user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to ban user"})
		return
	}

	invalidateUsers(ctx)

	c.JSON(http.StatusOK, gin.H{
		"is_banned":      true,
		"ban_reason":     ban.Reason,
		"ban_expires_at": ban.ExpiresAt,
	})
}

// UnbanUser clears every active ban for the user, returning them to the
// unbanned state with reason and expiry gone.
func UnbanUser(c *gin.Context) {
	if !database.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
		return
	}

	userID := c.Param("id")
	ctx := c.Request.Context()

	if _, err := bans.ManageUserBan(database.DB.WithContext(ctx), userID, "", nil, true, c.GetString("user_id")); err != nil {
		log.Printf("Error unbanning user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unban user"})
		return
	}

	invalidateUsers(ctx)

	c.JSON(http.StatusOK, gin.H{"is_banned": false})
}
