package identity

import (
	"context"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
)

// Status is the outcome of checking a visitor against the gate.
type Status string

const (
	StatusSignedOut Status = "signedOut"
	StatusDenied    Status = "denied"
	StatusOK        Status = "ok"
)

// Verifier is the part of the Firebase auth client the gate needs.
// *auth.Client satisfies it.
type Verifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
	VerifySessionCookie(ctx context.Context, sessionCookie string) (*auth.Token, error)
}

// DomainOf returns the lower-cased part of email after the first "@", or
// "" when there is none.
func DomainOf(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) < 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}

// Gate admits only accounts whose email domain equals one allowed domain.
type Gate struct {
	domain string
}

// NewGate returns a gate for domain. A leading "@" is ignored.
func NewGate(domain string) Gate {
	domain = strings.TrimPrefix(strings.TrimSpace(domain), "@")
	return Gate{domain: strings.ToLower(domain)}
}

// Domain is the allowed domain, lower-cased.
func (g Gate) Domain() string {
	return g.domain
}

// Enabled reports whether an allowed domain is configured.
func (g Gate) Enabled() bool {
	return g.domain != ""
}

// Allowed reports whether email belongs to the allowed domain. The
// comparison is case-insensitive and exact, subdomains do not match.
func (g Gate) Allowed(email string) bool {
	return g.Enabled() && DomainOf(email) == g.domain
}

// Check maps a verified token, or its absence, to a Status.
func (g Gate) Check(token *auth.Token) Status {
	if token == nil {
		return StatusSignedOut
	}
	if !g.Allowed(EmailOf(token)) {
		return StatusDenied
	}
	return StatusOK
}

// EmailOf reads the email claim of a verified token.
func EmailOf(token *auth.Token) string {
	if token == nil {
		return ""
	}
	email, _ := token.Claims["email"].(string)
	return email
}

// NameOf reads the display name claim of a verified token.
func NameOf(token *auth.Token) string {
	if token == nil {
		return ""
	}
	name, _ := token.Claims["name"].(string)
	return name
}

// SessionCookieName is the cookie holding the Firebase session.
const SessionCookieName = "session"

// ExpiredSessionCookie clears the session cookie in the browser.
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	}
}
