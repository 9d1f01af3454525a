package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"revenue-copilot/config"
	"revenue-copilot/database"
	"revenue-copilot/internal/domain/users"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

// SSO delegates credential handling to an external OIDC provider and issues
// the app's own JWT afterwards. Accounts are provisioned on first login
// with the USER role; admin promotion happens through the user console.

func ssoConfigured() bool {
	return config.OIDC_ISSUER != "" && config.OIDC_CLIENT_ID != "" &&
		config.OIDC_CLIENT_SECRET != "" && config.OIDC_REDIRECT_URL != ""
}

func ssoOAuthConfig(endpoint oauth2.Endpoint) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.OIDC_CLIENT_ID,
		ClientSecret: config.OIDC_CLIENT_SECRET,
		RedirectURL:  config.OIDC_REDIRECT_URL,
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		Endpoint:     endpoint,
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
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "SSO not configured"})
		return
	}

	provider, err := oidc.NewProvider(c.Request.Context(), config.OIDC_ISSUER)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to init oidc provider"})
		return
	}

	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	c.SetCookie("oauth_state", state, 300, "/", "", false, true)

	url := ssoOAuthConfig(provider.Endpoint()).AuthCodeURL(state, oauth2.AccessTypeOnline)
	c.Redirect(http.StatusFound, url)
}

// GET /auth/sso/callback
func SSOCallback(c *gin.Context) {
	if !ssoConfigured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "SSO not configured"})
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to init oidc provider"})
		return
	}

	tok, err := ssoOAuthConfig(provider.Endpoint()).Exchange(ctx, code)
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

	tokenString, err := issueAppJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})
		return
	}

	redirect := config.OIDC_FRONTEND_REDIRECT
	if redirect == "" {
		c.JSON(http.StatusOK, gin.H{"token": tokenString})
		return
	}
	c.Redirect(http.StatusFound, redirect+"?token="+tokenString)
}

type idTokenClaims struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func verifyIDToken(c *gin.Context, provider *oidc.Provider, rawIDToken string) (*idTokenClaims, error) {
	verifier := provider.Verifier(&oidc.Config{ClientID: config.OIDC_CLIENT_ID})

	idToken, err := verifier.Verify(c.Request.Context(), rawIDToken)
	if err != nil {
		return nil, errors.New("invalid id_token")
	}

	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.New("failed to decode token claims")
	}

	if claims.Email == "" || claims.Sub == "" {
		return nil, errors.New("token missing required claims")
	}

	return &claims, nil
}

func findOrCreateSSOUser(claims *idTokenClaims) (users.User, error) {
	var user users.User
	if err := database.DB.Where("email = ?", claims.Email).First(&user).Error; err == nil {
		return user, nil
	}

	var name *string
	if claims.Name != "" {
		name = &claims.Name
	}

	user = users.User{
		Email: claims.Email,
		// never matched against a login; SSO accounts carry no usable password
		PasswordHash: "!sso:" + claims.Sub,
		Name:         name,
		Role:         users.RoleUser,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return users.User{}, err
	}
	return user, nil
}
