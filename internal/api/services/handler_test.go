package servicesapi_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"amma-cms/config"
	"amma-cms/database"
	routes "amma-cms/internal/app/http"
	"amma-cms/internal/domain/access"
	"amma-cms/internal/domain/accounts"
	"amma-cms/internal/domain/services"
	"amma-cms/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	testutil.OpenDB(t)
	config.JWT_SECRET = "test-secret-key"

	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

func createUser(t *testing.T, superuser bool, capabilities ...access.Capability) accounts.User {
	t.Helper()
	user := accounts.User{
		Name:        "Ama Mensah",
		Email:       fmt.Sprintf("ama+%d@example.test", time.Now().UnixNano()),
		IsSuperuser: superuser,
		IsActive:    true,
	}
	for _, c := range capabilities {
		user.Grants = append(user.Grants, accounts.CapabilityGrant{Capability: string(c)})
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user accounts.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPortalServicesRequiresToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/portal/services", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPortalServicesRequiresCapability(t *testing.T) {
	r := setupRouter(t)

	// manage_news alone must not open the services controller.
	user := createUser(t, false, access.ManageNews)
	token := tokenFor(t, user)

	w := doJSON(t, r, http.MethodGet, "/portal/services", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Access denied"}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/portal/services", token, gin.H{
		"name": "Should Not Exist", "description": "denied",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	database.DB.Model(&services.Service{}).Count(&count)
	assert.Zero(t, count)
}

func TestServiceCRUDFlow(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, createUser(t, false, access.ManageServices))

	// Create with two blocks.
	w := doJSON(t, r, http.MethodPost, "/portal/services", token, gin.H{
		"name":            "Building Permits",
		"description":     "Apply for a building permit",
		"has_detail_page": true,
		"blocks": []gin.H{
			{"block_type": "text", "title": "Overview", "content": "Start here", "order": 0},
			{"block_type": "list", "title": "Requirements", "data": gin.H{"items": []string{"Site plan"}}, "order": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Service services.Service `json:"service"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Service.ID)
	assert.Equal(t, "building-permits", created.Service.Slug)
	require.Len(t, created.Service.ContentBlocks, 2)

	id := created.Service.ID

	// Update replaces the block set wholesale.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/portal/services/%d", id), token, gin.H{
		"name":        "Building Permits",
		"description": "Apply for a building permit",
		"blocks": []gin.H{
			{"block_type": "notice", "title": "Closed", "content": "Office closed Fridays", "order": 0},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	blocks, err := services.BlocksInOrder(database.DB, id)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "notice", blocks[0].BlockType)

	// List sees it.
	w = doJSON(t, r, http.MethodGet, "/portal/services?q=building", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Building Permits")

	// Delete takes the blocks with it.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/portal/services/%d", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var blockCount int64
	database.DB.Model(&services.ServiceContentBlock{}).Count(&blockCount)
	assert.Zero(t, blockCount)
}

func TestCreateServiceValidation(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, createUser(t, false, access.ManageServices))

	w := doJSON(t, r, http.MethodPost, "/portal/services", token, gin.H{
		"name":        "   ",
		"description": "No name",
		"blocks": []gin.H{
			{"block_type": "text", "content": "orphan"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var svcCount, blockCount int64
	database.DB.Model(&services.Service{}).Count(&svcCount)
	database.DB.Model(&services.ServiceContentBlock{}).Count(&blockCount)
	assert.Zero(t, svcCount)
	assert.Zero(t, blockCount)
}

func TestReorderEndpoint(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, createUser(t, true))

	svc := services.Service{Name: "Waste Collection", Description: "Bins"}
	require.NoError(t, services.SaveWithBlocks(database.DB, &svc, []services.BlockDraft{
		{BlockType: "text", Title: "A", Order: 0},
		{BlockType: "text", Title: "B", Order: 1},
	}))
	blocks, err := services.BlocksInOrder(database.DB, svc.ID)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/portal/api/services/%d/blocks/reorder", svc.ID), token, gin.H{
			"block_orders": []gin.H{
				{"id": blocks[1].ID, "order": 0},
				{"id": blocks[0].ID, "order": 1},
				{"id": 424242, "order": 2},
			},
		})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"success":true`)

	reordered, err := services.BlocksInOrder(database.DB, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", reordered[0].Title)
}

func TestPreviewDoesNotPersist(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, createUser(t, false, access.ManageServices))

	w := doJSON(t, r, http.MethodPost, "/portal/api/services/preview", token, gin.H{
		"service_data": gin.H{"name": "Draft Service", "description": "Unsaved"},
		"blocks_data": []gin.H{
			{"block_type": "text", "title": "Overview", "content": "Draft content"},
			{"block_type": "table", "data": gin.H{"headers": []string{"A"}, "rows": [][]string{{"1"}}}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		HTML    string `json:"html"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.HTML, "<h1>Draft Service</h1>")
	assert.Contains(t, resp.HTML, "Draft content")

	// Storage untouched.
	var svcCount, blockCount int64
	database.DB.Model(&services.Service{}).Count(&svcCount)
	database.DB.Model(&services.ServiceContentBlock{}).Count(&blockCount)
	assert.Zero(t, svcCount)
	assert.Zero(t, blockCount)
}

func TestPreviewMalformedNeverFaults(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, createUser(t, false, access.ManageServices))

	w := doJSON(t, r, http.MethodPost, "/portal/api/services/preview", token, gin.H{
		"blocks_data": gin.H{"not": "an array"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestTemplateEndpoints(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, createUser(t, false, access.ManageServices))

	w := doJSON(t, r, http.MethodGet, "/portal/api/templates", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fees_table")

	w = doJSON(t, r, http.MethodGet, "/portal/api/templates/fees_table", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fee (GHS)")

	w = doJSON(t, r, http.MethodGet, "/portal/api/templates/bogus", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
