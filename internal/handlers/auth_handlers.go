package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"signature_builder_echo/internal/config"
	"signature_builder_echo/internal/identity"
)

// Session cookies live for five days
const sessionLifetime = time.Hour * 24 * 5

var loginErrors = map[string]string{
	"auth_not_configured": "Sign-in is not configured on this server.",
	"sign_in_failed":      "Sign-in failed. Please try again.",
	"too_many_attempts":   "Too many failed attempts. Please wait and try again.",
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	verifier  identity.Verifier
	gate      identity.Gate
	limiter   identity.Limiter
	cfg       *config.Config
	brandName string
}

// NewAuthHandler creates a new AuthHandler. A nil limiter never throttles.
func NewAuthHandler(verifier identity.Verifier, gate identity.Gate, limiter identity.Limiter, cfg *config.Config, brandName string) *AuthHandler {
	if limiter == nil {
		limiter = identity.NoopLimiter{}
	}
	return &AuthHandler{
		verifier:  verifier,
		gate:      gate,
		limiter:   limiter,
		cfg:       cfg,
		brandName: brandName,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(c echo.Context) error {
	data := map[string]interface{}{
		"FirebaseAPIKey":     h.cfg.FirebaseAPIKey,
		"FirebaseAuthDomain": h.cfg.FirebaseAuthDomain,
		"FirebaseProjectID":  h.cfg.FirebaseProjectID,
		"BrandName":          h.brandName,
		"Error":              loginErrors[c.QueryParam("error")],
	}
	return c.Render(http.StatusOK, "login.html", data)
}

// Denied renders the page shown to accounts outside the allowed domain
func (h *AuthHandler) Denied(c echo.Context) error {
	return c.Render(http.StatusForbidden, "denied.html", map[string]interface{}{
		"AllowedDomain": h.gate.Domain(),
	})
}

// HandleLogin verifies the Firebase ID token, checks the account domain and
// creates a session cookie. Failures count against the client's IP.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	if h.verifier == nil {
		return jsonError(c, http.StatusInternalServerError, "Firebase not initialized")
	}

	ctx := c.Request().Context()
	clientKey := c.RealIP()

	blocked, err := h.limiter.Blocked(ctx, clientKey)
	if err != nil {
		c.Logger().Errorf("login limiter: %v", err)
	}
	if blocked {
		return jsonError(c, http.StatusTooManyRequests, "Too many failed attempts")
	}

	fail := func(status int, message string) error {
		if err := h.limiter.Fail(ctx, clientKey); err != nil {
			c.Logger().Errorf("login limiter: %v", err)
		}
		return jsonError(c, status, message)
	}

	// Get ID Token from Authorization Header
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return fail(http.StatusUnauthorized, "Missing authorization header")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return fail(http.StatusUnauthorized, "Invalid authorization format")
	}

	token, err := h.verifier.VerifyIDToken(ctx, tokenString)
	if err != nil {
		return fail(http.StatusUnauthorized, "Invalid token")
	}

	switch h.gate.Check(token) {
	case identity.StatusDenied:
		c.Logger().Warnf("sign-in denied for %s", identity.EmailOf(token))
		return fail(http.StatusForbidden, "denied")
	case identity.StatusSignedOut:
		return fail(http.StatusUnauthorized, "Invalid token")
	}

	cookieValue, err := h.verifier.SessionCookie(ctx, tokenString, sessionLifetime)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "Failed to create session")
	}
	if err := h.limiter.Reset(ctx, clientKey); err != nil {
		c.Logger().Errorf("login limiter: %v", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     identity.SessionCookieName,
		Value:    cookieValue,
		MaxAge:   int(sessionLifetime.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]string{
		"status": "success",
	})
}

// HandleLogout clears the session cookie
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	c.SetCookie(identity.ExpiredSessionCookie())
	return c.JSON(http.StatusOK, map[string]string{
		"status": "logged out",
	})
}
