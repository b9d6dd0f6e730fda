package portal_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"amma-cms/config"
	"amma-cms/database"
	routes "amma-cms/internal/app/http"
	"amma-cms/internal/domain/access"
	"amma-cms/internal/domain/accounts"
	"amma-cms/internal/domain/news"
	"amma-cms/internal/domain/services"
	"amma-cms/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	testutil.OpenDB(t)
	config.JWT_SECRET = "test-secret-key"

	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

func authedGet(t *testing.T, r *gin.Engine, path string, user accounts.User) *httptest.ResponseRecorder {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedContent(t *testing.T) {
	t.Helper()
	svc := services.Service{Name: "Seeded Service", Description: "D"}
	require.NoError(t, services.SaveWithBlocks(database.DB, &svc, nil))

	category := news.NewsCategory{Name: "General"}
	require.NoError(t, database.DB.Create(&category).Error)
	article := news.NewsArticle{
		Title: "Seeded Article", Excerpt: "E", Content: "C",
		CategoryID: category.ID, Status: news.StatusPublished,
	}
	require.NoError(t, database.DB.Create(&article).Error)
}

func TestMeReportsCapabilities(t *testing.T) {
	r := setup(t)

	user := accounts.User{
		Name: "Esi", Email: "esi@example.test", IsActive: true,
		Grants: []accounts.CapabilityGrant{{Capability: string(access.ManageNews)}},
	}
	require.NoError(t, database.DB.Create(&user).Error)

	w := authedGet(t, r, "/portal/me", user)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Email        string          `json:"email"`
		IsSuperuser  bool            `json:"is_superuser"`
		Capabilities map[string]bool `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "esi@example.test", resp.Email)
	assert.False(t, resp.IsSuperuser)
	assert.True(t, resp.Capabilities["manage_news"])
	assert.False(t, resp.Capabilities["manage_services"])
}

func TestDashboardScopedToCapabilities(t *testing.T) {
	r := setup(t)
	seedContent(t)

	user := accounts.User{
		Name: "Kwame", Email: "kwame@example.test", IsActive: true,
		Grants: []accounts.CapabilityGrant{{Capability: string(access.ManageNews)}},
	}
	require.NoError(t, database.DB.Create(&user).Error)

	w := authedGet(t, r, "/portal/dashboard", user)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stats map[string]int64 `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// News counts are real; service counts are zeroed, not hidden.
	assert.EqualValues(t, 1, resp.Stats["news_count"])
	assert.EqualValues(t, 1, resp.Stats["published_news_count"])
	assert.EqualValues(t, 0, resp.Stats["services_count"])
	assert.EqualValues(t, 0, resp.Stats["active_services_count"])
}

func TestDashboardSuperuserSeesAll(t *testing.T) {
	r := setup(t)
	seedContent(t)

	su := accounts.User{Name: "Adjoa", Email: "adjoa@example.test", IsActive: true, IsSuperuser: true}
	require.NoError(t, database.DB.Create(&su).Error)

	w := authedGet(t, r, "/portal/dashboard", su)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stats map[string]int64 `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.Stats["services_count"])
	assert.EqualValues(t, 1, resp.Stats["news_count"])
}

func TestInactiveUserRejected(t *testing.T) {
	r := setup(t)

	user := accounts.User{Name: "Gone", Email: "gone@example.test", IsActive: true}
	require.NoError(t, database.DB.Create(&user).Error)
	require.NoError(t, database.DB.Model(&user).Update("is_active", false).Error)

	w := authedGet(t, r, "/portal/me", user)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
