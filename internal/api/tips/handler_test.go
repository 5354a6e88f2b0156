package tips

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tipadmin-app/database"
	"tipadmin-app/internal/domain/tips"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// The backing database is not configured in unit tests, which doubles as
// coverage for the short-circuit path: mutations must abort before any
// network call when the configuration probe fails.

func newTipsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/tips", ListTips)
	r.POST("/admin/tips", CreateTip)
	r.PUT("/admin/tips/:id", UpdateTip)
	r.DELETE("/admin/tips/:id", DeleteTip)
	r.POST("/admin/tips/:id/toggle", ToggleTipStatus)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListTipsUnconfiguredReturnsEmpty(t *testing.T) {
	w := doJSON(newTipsRouter(), http.MethodGet, "/admin/tips", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

// The listing reads through the shared store, so it sees whatever the
// cached loader serves, filtered.
func TestListTipsServesFilteredFromStore(t *testing.T) {
	prevDB := database.DB
	prevLoad := loadTips
	defer func() {
		database.DB = prevDB
		loadTips = prevLoad
	}()

	database.DB = &gorm.DB{}
	loadTips = func(ctx context.Context) ([]tips.Tip, error) {
		return []tips.Tip{
			{ID: "t1", Title: "Derby pick", Category: tips.CategoryVIP, IsActive: true},
			{ID: "t2", Title: "Warmup", Category: tips.CategoryFree, IsActive: true},
		}, nil
	}

	w := doJSON(newTipsRouter(), http.MethodGet, "/admin/tips?filter=vip", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []tips.Tip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "t1", list[0].ID)
}

// A successful create stores exactly the submitted fields plus the
// generated id and defaults, and echoes the stored record back.
func TestCreateTipStoresRecordWithDefaults(t *testing.T) {
	prevDB := database.DB
	prevInsert := insertTip
	defer func() {
		database.DB = prevDB
		insertTip = prevInsert
	}()

	database.DB = &gorm.DB{}
	var saved tips.Tip
	inserts := 0
	insertTip = func(ctx context.Context, tip *tips.Tip) error {
		inserts++
		saved = *tip
		return nil
	}

	w := doJSON(newTipsRouter(), http.MethodPost, "/admin/tips",
		`{"title":"Derby pick","content":"Home win","category":"vip","sport":"football"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 1, inserts)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "Derby pick", saved.Title)
	assert.Equal(t, "Home win", saved.Content)
	assert.Equal(t, tips.CategoryVIP, saved.Category)
	assert.Equal(t, "football", saved.Sport)
	assert.Equal(t, tips.ConfidenceMedium, saved.ConfidenceLevel)
	assert.True(t, saved.IsActive)
	assert.Equal(t, 0, saved.Views)
	assert.Equal(t, 0, saved.Likes)
	assert.GreaterOrEqual(t, saved.SuccessRate, 70)
	assert.Less(t, saved.SuccessRate, 100)

	var resp tips.Tip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, saved.ID, resp.ID)
	assert.True(t, resp.IsActive)
}

func TestCreateTipRequiresTitleAndContent(t *testing.T) {
	r := newTipsRouter()

	w := doJSON(r, http.MethodPost, "/admin/tips", `{"content":"Body"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/admin/tips", `{"title":"Test Tip"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTipRejectsUnknownCategory(t *testing.T) {
	w := doJSON(newTipsRouter(), http.MethodPost, "/admin/tips",
		`{"title":"Test Tip","content":"Body","category":"premium"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTipUnconfiguredShortCircuits(t *testing.T) {
	w := doJSON(newTipsRouter(), http.MethodPost, "/admin/tips",
		`{"title":"Test Tip","content":"Body","category":"vip","confidence_level":"high"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestUpdateTipUnconfiguredShortCircuits(t *testing.T) {
	w := doJSON(newTipsRouter(), http.MethodPut, "/admin/tips/t1",
		`{"title":"Edited","content":"Body"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDeleteTipRequiresConfirmation(t *testing.T) {
	r := newTipsRouter()

	w := doJSON(r, http.MethodDelete, "/admin/tips/t1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "confirmation")

	// confirmed but unconfigured: still no call goes out
	w = doJSON(r, http.MethodDelete, "/admin/tips/t1?confirm=true", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestToggleTipUnconfiguredShortCircuits(t *testing.T) {
	w := doJSON(newTipsRouter(), http.MethodPost, "/admin/tips/t1/toggle", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
