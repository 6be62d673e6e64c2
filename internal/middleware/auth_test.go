package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"signature_builder_echo/internal/identity"
	"signature_builder_echo/web"
)

type sessionVerifier map[string]*auth.Token

func (sessionVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return nil, errors.New("not used")
}

func (sessionVerifier) SessionCookie(context.Context, string, time.Duration) (string, error) {
	return "", errors.New("not used")
}

func (v sessionVerifier) VerifySessionCookie(_ context.Context, cookie string) (*auth.Token, error) {
	if tok, ok := v[cookie]; ok {
		return tok, nil
	}
	return nil, errors.New("expired")
}

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	pages, err := web.NewTemplateRenderer(web.Templates())
	if err != nil {
		t.Fatalf("NewTemplateRenderer: %v", err)
	}
	e := echo.New()
	e.Renderer = pages
	return e
}

func TestRequireAuth(t *testing.T) {
	verifier := sessionVerifier{
		"good":  {UID: "u1", Claims: map[string]interface{}{"email": "jane@tricociuniversity.edu", "name": "Jane"}},
		"other": {UID: "u2", Claims: map[string]interface{}{"email": "jane@example.com"}},
	}
	gate := identity.NewGate("tricociuniversity.edu")

	tests := []struct {
		name         string
		verifier     identity.Verifier
		cookie       string
		wantStatus   int
		wantLocation string
		wantNext     bool
		wantCleared  bool
	}{
		{"no firebase", nil, "good", http.StatusTemporaryRedirect, "/login?error=auth_not_configured", false, false},
		{"no cookie", verifier, "", http.StatusTemporaryRedirect, "/login", false, false},
		{"expired session", verifier, "stale", http.StatusTemporaryRedirect, "/login", false, true},
		{"wrong domain", verifier, "other", http.StatusForbidden, "", false, true},
		{"allowed", verifier, "good", http.StatusOK, "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho(t)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: identity.SessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			next := func(c echo.Context) error {
				called = true
				if c.Get("userEmail") != "jane@tricociuniversity.edu" || c.Get("userUID") != "u1" || c.Get("userName") != "Jane" {
					t.Errorf("user not set on context: %v %v %v", c.Get("userEmail"), c.Get("userUID"), c.Get("userName"))
				}
				return c.String(http.StatusOK, "builder")
			}

			if err := RequireAuth(tt.verifier, gate)(next)(c); err != nil {
				t.Fatalf("middleware: %v", err)
			}
			if called != tt.wantNext {
				t.Errorf("next called = %v", called)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" && rec.Header().Get(echo.HeaderLocation) != tt.wantLocation {
				t.Errorf("Location = %q", rec.Header().Get(echo.HeaderLocation))
			}
			cleared := strings.Contains(rec.Header().Get("Set-Cookie"), "Max-Age=0")
			if cleared != tt.wantCleared {
				t.Errorf("cookie cleared = %v", cleared)
			}
			if tt.wantStatus == http.StatusForbidden && !strings.Contains(rec.Body.String(), "@tricociuniversity.edu") {
				t.Errorf("denied page missing domain:\n%s", rec.Body.String())
			}
		})
	}
}
