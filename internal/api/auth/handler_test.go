package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"amma-cms/config"
	"amma-cms/database"
	routes "amma-cms/internal/app/http"
	"amma-cms/internal/domain/accounts"
	"amma-cms/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	testutil.OpenDB(t)
	config.JWT_SECRET = "test-secret-key"
	config.OIDC_ISSUER = ""

	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

func createLocalUser(t *testing.T, email, password string, active bool) accounts.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)

	user := accounts.User{Name: "Local User", Email: email, Password: &hashed, IsActive: true}
	require.NoError(t, database.DB.Create(&user).Error)
	if !active {
		require.NoError(t, database.DB.Model(&user).Update("is_active", false).Error)
	}
	return user
}

func login(t *testing.T, r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(gin.H{"email": email, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesToken(t *testing.T) {
	r := setup(t)
	createLocalUser(t, "ama@example.test", "correct-horse", true)

	w := login(t, r, "ama@example.test", "correct-horse")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	// The token opens the portal.
	req := httptest.NewRequest(http.MethodGet, "/portal/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	me := httptest.NewRecorder()
	r.ServeHTTP(me, req)
	assert.Equal(t, http.StatusOK, me.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := setup(t)
	createLocalUser(t, "ama@example.test", "correct-horse", true)

	w := login(t, r, "ama@example.test", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = login(t, r, "nobody@example.test", "whatever")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsDeactivated(t *testing.T) {
	r := setup(t)
	createLocalUser(t, "gone@example.test", "correct-horse", false)

	w := login(t, r, "gone@example.test", "correct-horse")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginSSOOnlyAccount(t *testing.T) {
	r := setup(t)

	sub := "oidc|12345"
	user := accounts.User{
		Name: "SSO User", Email: "sso@example.test",
		AuthProvider: "oidc", OIDCSub: &sub, IsActive: true,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	w := login(t, r, "sso@example.test", "anything")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "organizational sign-in")
}

func TestSSOUnavailableWhenUnconfigured(t *testing.T) {
	r := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/sso", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
