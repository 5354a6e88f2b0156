package admin

import (
	"log"
	"net/http"
	"time"

	"tipadmin-app/database"
	"tipadmin-app/internal/domain/billing"
	"tipadmin-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// ListUsers returns the user collection with ban state joined on, newest
// first, optionally narrowed by the filter query parameter.
func ListUsers(c *gin.Context) {
	if !database.Configured() {
		c.JSON(http.StatusOK, []AdminUser{})
		return
	}

	list, err := loadUsers(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	filter := c.DefaultQuery("filter", users.FilterAll)
	c.JSON(http.StatusOK, toAdminUsers(users.Filter(list, filter)))
}

// GetUserDetails returns one user with ban state and payment history.
func GetUserDetails(c *gin.Context) {
	if !database.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
		return
	}

	userID := c.Param("id")
	ctx := c.Request.Context()

	var user users.User
	if err := database.DB.WithContext(ctx).Preload("Bans").First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     toAdminUser(user),
		"payments": payments,
	})
}

// ManageSubscription grants or revokes VIP access for a fixed number of
// days. The expiry is recomputed as now + duration on activation and
// cleared on deactivation.
func ManageSubscription(c *gin.Context) {
	var body struct {
		Active bool `json:"active"`
		Days   int  `json:"days"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Days <= 0 {
		body.Days = 30
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

	updates := map[string]interface{}{
		"subscription_active":     body.Active,
		"subscription_expires_at": nil,
	}
	if body.Active {
		expires := time.Now().AddDate(0, 0, body.Days)
		updates["subscription_expires_at"] = expires
	}

	if err := database.DB.WithContext(ctx).Model(&users.User{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		log.Printf("Error managing subscription: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscription"})
		return
	}

	invalidateUsers(ctx)

	if err := database.DB.WithContext(ctx).Preload("Bans").First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload user"})
		return
	}
	c.JSON(http.StatusOK, toAdminUser(user))
}
