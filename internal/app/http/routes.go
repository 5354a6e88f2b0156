package routes

import (
	adminapi "tipadmin-app/internal/api/admin"
	billingapi "tipadmin-app/internal/api/billing"
	plansapi "tipadmin-app/internal/api/plans"
	tipsapi "tipadmin-app/internal/api/tips"
	"tipadmin-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/plans", plansapi.ListPlans)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeAndCleanInputMiddleware())
	auth.POST("/create-checkout-session", billingapi.CreateCheckoutSession)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin(), middleware.SanitizeAndCleanInputMiddleware())

	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/dashboard/simple", adminapi.SimpleDashboard)
	admin.GET("/stats", adminapi.GetAdminStats)

	admin.GET("/users", adminapi.ListUsers)
	admin.GET("/users/:id", adminapi.GetUserDetails)
	admin.POST("/users/:id/subscription", adminapi.ManageSubscription)
	admin.POST("/users/:id/ban", adminapi.BanUser)
	admin.POST("/users/:id/unban", adminapi.UnbanUser)

	admin.GET("/tips", tipsapi.ListTips)
	admin.POST("/tips", tipsapi.CreateTip)
	admin.PUT("/tips/:id", tipsapi.UpdateTip)
	admin.DELETE("/tips/:id", tipsapi.DeleteTip)
	admin.POST("/tips/:id/toggle", tipsapi.ToggleTipStatus)

	admin.GET("/payments", billingapi.ListAllPayments)
	admin.GET("/billing/links", billingapi.GetDashboardLinks)
	admin.POST("/sync-plans", plansapi.SyncPlansFromStripe)
}
