package admin

import (
	"log"
	"net/http"
	"sync"
	"time"

	"tipadmin-app/database"
	"tipadmin-app/internal/domain/stats"
	"tipadmin-app/internal/domain/tips"
	"tipadmin-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// AdminDashboard serves the full dashboard variant: the three collections
// are loaded concurrently and joined before responding. A failed load is
// logged and leaves that collection empty; the other two are unaffected.
func AdminDashboard(c *gin.Context) {
	resp := DashboardResponse{
		Users: []AdminUser{},
		Tips:  []tips.Tip{},
		Stats: stats.Overview{AverageSessionTime: stats.AverageSessionTime},
	}

	if !database.Configured() {
		c.JSON(http.StatusOK, resp)
		return
	}

	ctx := c.Request.Context()

	var (
		userList []users.User
		tipList  []tips.Tip
		snapshot = resp.Stats
		wg       sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		list, err := loadUsers(ctx)
		if err != nil {
			log.Printf("Error fetching users: %v", err)
			return
		}
		userList = list
	}()
	go func() {
		defer wg.Done()
		list, err := loadTips(ctx)
		if err != nil {
			log.Printf("Error fetching tips: %v", err)
			return
		}
		tipList = list
	}()
	go func() {
		defer wg.Done()
		s, err := loadStats(ctx)
		if err != nil {
			log.Printf("Error fetching stats: %v", err)
			return
		}
		snapshot = s
	}()
	wg.Wait()

	resp.Users = toAdminUsers(userList)
	if tipList != nil {
		resp.Tips = tipList
	}
	resp.Stats = snapshot

	c.JSON(http.StatusOK, resp)
}

// SimpleDashboard serves the reduced variant: the user list plus four
// counters, read through the same fetch layer as the full dashboard.
func SimpleDashboard(c *gin.Context) {
	resp := SimpleDashboardResponse{Users: []SimpleUser{}}

	if !database.Configured() {
		c.JSON(http.StatusOK, resp)
		return
	}

	userList, err := loadUsers(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		c.JSON(http.StatusOK, resp)
		return
	}

	now := time.Now()
	resp.Stats = stats.ComputeSimple(now, userList)
	resp.Users = toSimpleUsers(now, userList)

	c.JSON(http.StatusOK, resp)
}

// GetAdminStats exposes the overview snapshot on its own.
func GetAdminStats(c *gin.Context) {
	if !database.Configured() {
		c.JSON(http.StatusOK, stats.Overview{AverageSessionTime: stats.AverageSessionTime})
		return
	}

	snapshot, err := loadStats(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
