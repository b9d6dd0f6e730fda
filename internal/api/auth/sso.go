package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"amma-cms/config"
	"amma-cms/database"
	"amma-cms/internal/domain/accounts"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

// Organizational single sign-on for staff accounts, against whatever OIDC
// provider the municipality runs. Disabled (503) when OIDC_* is unset.

func ssoConfigured() bool {
	return config.OIDC_ISSUER != "" && config.OIDC_CLIENT_ID != "" && config.OIDC_REDIRECT_URL != ""
}

func ssoOAuthConfig(provider *oidc.Provider) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.OIDC_CLIENT_ID,
		ClientSecret: config.OIDC_CLIENT_SECRET,
		RedirectURL:  config.OIDC_REDIRECT_URL,
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		Endpoint:     provider.Endpoint(),
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GET /auth/sso
func SSOStart(c *gin.Context) {
	if !ssoConfigured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "SSO is not configured"})
		return
	}

	provider, err := oidc.NewProvider(c.Request.Context(), config.OIDC_ISSUER)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to init OIDC provider"})
		return
	}

	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	// state lives in an HttpOnly cookie for the round trip
	c.SetCookie(
		"oauth_state",
		state,
		300, // 5 minutes
		"/",
		"",    // domain (set in prod)
		false, // secure (true in prod HTTPS)
		true,  // httpOnly
	)

	c.Redirect(http.StatusFound, ssoOAuthConfig(provider).AuthCodeURL(state, oauth2.AccessTypeOnline))
}

// GET /auth/sso/callback
func SSOCallback(c *gin.Context) {
	if !ssoConfigured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "SSO is not configured"})
		return
	}

	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code/state"})
		return
	}

	cookieState, err := c.Cookie("oauth_state")
	if err != nil || cookieState != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	ctx := c.Request.Context()
	provider, err := oidc.NewProvider(ctx, config.OIDC_ISSUER)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to init OIDC provider"})
		return
	}

	tok, err := ssoOAuthConfig(provider).Exchange(ctx, code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to exchange code"})
		return
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing id_token"})
		return
	}

	claims, err := verifyIDToken(c, provider, rawIDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := findOrCreateSSOUser(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "This account has been deactivated"})
		return
	}

	tokenString, err := issueAppJWT(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})
		return
	}

	redirect := config.PORTAL_URL
	if redirect == "" {
		c.JSON(http.StatusOK, gin.H{"token": tokenString})
		return
	}
	c.Redirect(http.StatusFound, redirect+"?token="+tokenString)
}

/* ---------------- helpers ---------------- */

type idClaims struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

func verifyIDToken(c *gin.Context, provider *oidc.Provider, rawIDToken string) (*idClaims, error) {
	ctx := c.Request.Context()

	verifier := provider.Verifier(&oidc.Config{
		ClientID: config.OIDC_CLIENT_ID,
	})

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.New("invalid id_token")
	}

	var claims idClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.New("failed to decode token claims")
	}

	if claims.Email == "" || claims.Sub == "" {
		return nil, errors.New("token missing required claims")
	}

	return &claims, nil
}

// findOrCreateSSOUser links by subject first, then by email, and finally
// creates a fresh staff account. New SSO accounts carry no capability
// grants: a superuser assigns those afterwards.
func findOrCreateSSOUser(claims *idClaims) (accounts.User, error) {
	var user accounts.User

	if err := database.DB.Preload("Grants").Where("oidc_sub = ?", claims.Sub).First(&user).Error; err == nil {
		return user, nil
	}

	if err := database.DB.Preload("Grants").Where("email = ?", claims.Email).First(&user).Error; err == nil {
		if user.OIDCSub == nil {
			sub := claims.Sub
			user.OIDCSub = &sub
			user.AuthProvider = "oidc"
			if err := database.DB.Save(&user).Error; err != nil {
				return accounts.User{}, err
			}
		}
		return user, nil
	}

	sub := claims.Sub
	user = accounts.User{
		Name:         claims.Name,
		Email:        claims.Email,
		Password:     nil,
		AuthProvider: "oidc",
		OIDCSub:      &sub,
		IsActive:     true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return accounts.User{}, err
	}
	return user, nil
}
