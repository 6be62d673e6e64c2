package handlers

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

	"signature_builder_echo/internal/config"
	"signature_builder_echo/internal/identity"
)

type fakeVerifier struct {
	tokens map[string]*auth.Token
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	if tok, ok := f.tokens[idToken]; ok {
		return tok, nil
	}
	return nil, errors.New("invalid token")
}

func (f *fakeVerifier) SessionCookie(_ context.Context, idToken string, _ time.Duration) (string, error) {
	return "session-for-" + idToken, nil
}

func (f *fakeVerifier) VerifySessionCookie(context.Context, string) (*auth.Token, error) {
	return nil, errors.New("not used")
}

type countingLimiter struct {
	max      int
	failures map[string]int
}

func newCountingLimiter(limit int) *countingLimiter {
	return &countingLimiter{max: limit, failures: map[string]int{}}
}

func (l *countingLimiter) Blocked(_ context.Context, key string) (bool, error) {
	return l.failures[key] >= l.max, nil
}

func (l *countingLimiter) Fail(_ context.Context, key string) error {
	l.failures[key]++
	return nil
}

func (l *countingLimiter) Reset(_ context.Context, key string) error {
	delete(l.failures, key)
	return nil
}

func tokenFor(email string) *auth.Token {
	return &auth.Token{UID: "uid-" + email, Claims: map[string]interface{}{"email": email}}
}

func newAuthHandler(limiter identity.Limiter) *AuthHandler {
	verifier := &fakeVerifier{tokens: map[string]*auth.Token{
		"staff":    tokenFor("Jane@TricociUniversity.edu"),
		"outsider": tokenFor("jane@gmail.com"),
	}}
	cfg := config.FromEnv(func(string) string { return "" })
	return NewAuthHandler(verifier, identity.NewGate("tricociuniversity.edu"), limiter, cfg, "Tricoci University")
}

func loginRequest(e *echo.Echo, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	req.RemoteAddr = "203.0.113.7:4000"
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleLogin(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCookie bool
		wantFails  int
	}{
		{"allowed domain", "Bearer staff", http.StatusOK, true, 0},
		{"other domain", "Bearer outsider", http.StatusForbidden, false, 1},
		{"bad token", "Bearer forged", http.StatusUnauthorized, false, 1},
		{"missing header", "", http.StatusUnauthorized, false, 1},
		{"not bearer", "Basic abc", http.StatusUnauthorized, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := newCountingLimiter(5)
			h := newAuthHandler(limiter)
			c, rec := loginRequest(echo.New(), tt.header)

			if err := h.HandleLogin(c); err != nil {
				t.Fatalf("HandleLogin: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			cookie := rec.Header().Get("Set-Cookie")
			if got := strings.Contains(cookie, identity.SessionCookieName+"=session-for-"); got != tt.wantCookie {
				t.Errorf("Set-Cookie = %q", cookie)
			}
			if got := limiter.failures["203.0.113.7"]; got != tt.wantFails {
				t.Errorf("failures = %d, want %d", got, tt.wantFails)
			}
		})
	}
}

func TestHandleLoginThrottles(t *testing.T) {
	limiter := newCountingLimiter(2)
	h := newAuthHandler(limiter)
	e := echo.New()

	for i := 0; i < 2; i++ {
		c, _ := loginRequest(e, "Bearer forged")
		if err := h.HandleLogin(c); err != nil {
			t.Fatal(err)
		}
	}

	// even a valid token is refused while blocked
	c, rec := loginRequest(e, "Bearer staff")
	if err := h.HandleLogin(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
}

func TestHandleLoginResetsAfterSuccess(t *testing.T) {
	limiter := newCountingLimiter(3)
	h := newAuthHandler(limiter)
	e := echo.New()

	c, _ := loginRequest(e, "Bearer forged")
	_ = h.HandleLogin(c)
	c, rec := loginRequest(e, "Bearer staff")
	if err := h.HandleLogin(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if n := limiter.failures["203.0.113.7"]; n != 0 {
		t.Errorf("failures after success = %d", n)
	}
}

func TestHandleLoginWithoutFirebase(t *testing.T) {
	cfg := config.FromEnv(func(string) string { return "" })
	h := NewAuthHandler(nil, identity.NewGate("tricociuniversity.edu"), nil, cfg, "")
	c, rec := loginRequest(echo.New(), "Bearer staff")
	if err := h.HandleLogin(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestHandleLogout(t *testing.T) {
	h := newAuthHandler(nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	if err := h.HandleLogout(echo.New().NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, identity.SessionCookieName+"=;") || !strings.Contains(cookie, "Max-Age=0") {
		t.Errorf("Set-Cookie = %q", cookie)
	}
}

func TestLoginAndDeniedPages(t *testing.T) {
	e, _ := newTestServer(t)
	h := newAuthHandler(nil)

	c, rec := get(e, "/login?error=sign_in_failed")
	if err := h.LoginPage(c); err != nil {
		t.Fatal(err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Sign-in failed. Please try again.") {
		t.Error("login page missing the error message")
	}
	if !strings.Contains(body, "Tricoci University Google account") {
		t.Error("login page missing the brand name")
	}

	c, rec = get(e, "/denied")
	if err := h.Denied(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("denied status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "@tricociuniversity.edu") {
		t.Error("denied page should name the allowed domain")
	}
}
