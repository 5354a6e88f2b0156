package tips

import (
	"context"
	"log"
	"math/rand"
	"net/http"

	"tipadmin-app/database"
	"tipadmin-app/internal/domain/tips"
	"tipadmin-app/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Seams over the shared store so the handlers can be exercised without a
// live database.
var (
	loadTips  = store.Tips
	insertTip = func(ctx context.Context, tip *tips.Tip) error {
		return database.DB.WithContext(ctx).Create(tip).Error
	}
)

func invalidate(ctx context.Context) {
	store.InvalidateTips(ctx)
}

// ListTips returns tips newest first, optionally narrowed by the filter
// query parameter. Reads go through the same cached store as the
// dashboard, so a mutation's invalidation covers this listing too.
func ListTips(c *gin.Context) {
	if !database.Configured() {
		c.JSON(http.StatusOK, []tips.Tip{})
		return
	}

	list, err := loadTips(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching tips: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tips"})
		return
	}

	filter := c.DefaultQuery("filter", tips.FilterAll)
	c.JSON(http.StatusOK, tips.Filter(list, filter))
}

// CreateTip publishes a new tip. The identifier is generated here before
// insert; the stored record comes back in the response.
func CreateTip(c *gin.Context) {
	var req CreateTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}
	if req.Category == "" {
		req.Category = tips.CategoryFree
	}
	if req.ConfidenceLevel == "" {
		req.ConfidenceLevel = tips.ConfidenceMedium
	}
	if !tips.ValidCategory(req.Category) || !tips.ValidConfidence(req.ConfidenceLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category or confidence level"})
		return
	}

	if !database.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
		return
	}

	tip := tips.Tip{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Content:         req.Content,
		Category:        req.Category,
		Sport:           req.Sport,
		ConfidenceLevel: req.ConfidenceLevel,
		IsActive:        true,
		CreatedBy:       c.GetString("user_id"),
		Views:           0,
		Likes:           0,
		SuccessRate:     rand.Intn(30) + 70,
	}

	ctx := c.Request.Context()
	if err := insertTip(ctx, &tip); err != nil {
		log.Printf("Error saving tip: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tip"})
		return
	}

	invalidate(ctx)
	c.JSON(http.StatusCreated, tip)
}

// UpdateTip edits an existing tip; only the mutable fields are sent to the
// database.
func UpdateTip(c *gin.Context) {
	var req UpdateTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}
	if req.Category != "" && !tips.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}
	if req.ConfidenceLevel != "" && !tips.ValidConfidence(req.ConfidenceLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid confidence level"})
		return
	}

	if !database.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
		return
	}

	tipID := c.Param("id")
	ctx := c.Request.Context()

	var tip tips.Tip
	if err := database.DB.WithContext(ctx).First(&tip, "id = ?", tipID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
		return
	}

	updates := map[string]interface{}{
		"title":   req.Title,
		"content": req.Content,
		"sport":   req.Sport,
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.ConfidenceLevel != "" {
		updates["confidence_level"] = req.ConfidenceLevel
	}

	if err := database.DB.WithContext(ctx).Model(&tips.Tip{}).
		Where("id = ?", tipID).
		Updates(updates).Error; err != nil {
		log.Printf("Error saving tip: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tip"})
		return
	}

	invalidate(ctx)

	if err := database.DB.WithContext(ctx).First(&tip, "id = ?", tipID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload tip"})
		return
	}
	c.JSON(http.StatusOK, tip)
}

// DeleteTip removes a tip by id. The caller must confirm the deletion
// explicitly via ?confirm=true; without it nothing is touched.
func DeleteTip(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deletion requires confirmation"})
		return
	}

	if !database.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
		return
	}

	tipID := c.Param("id")
	ctx := c.Request.Context()

	res := database.DB.WithContext(ctx).Delete(&tips.Tip{}, "id = ?", tipID)
	if res.Error != nil {
		log.Printf("Error deleting tip: %v", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tip"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
		return
	}

	invalidate(ctx)
	c.JSON(http.StatusOK, gin.H{"deleted": tipID})
}

// ToggleTipStatus flips the active flag via a partial update.
func ToggleTipStatus(c *gin.Context) {
	if !database.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
		return
	}

	tipID := c.Param("id")
	ctx := c.Request.Context()

	var tip tips.Tip
	if err := database.DB.WithContext(ctx).First(&tip, "id = ?", tipID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
		return
	}

	if err := database.DB.WithContext(ctx).Model(&tips.Tip{}).
		Where("id = ?", tipID).
		Update("is_active", !tip.IsActive).Error; err != nil {
		log.Printf("Error updating tip status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tip status"})
		return
	}

	invalidate(ctx)
	c.JSON(http.StatusOK, gin.H{"id": tipID, "is_active": !tip.IsActive})
}
