package domain

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// SessionMaxAge bounds the lifetime of a self-issued session token.
const SessionMaxAge = 24 * time.Hour

type SessionKind string

const (
	// SessionSimple is the client-issued opaque token minted at login.
	SessionSimple SessionKind = "simple"
	// SessionExternal is a backend-issued JWT-shaped token. The payload is
	// decoded without signature verification; the client only checks shape
	// and age, never authenticity.
	SessionExternal SessionKind = "external"
)

type Session struct {
	Kind      SessionKind
	StudentID string
	// IssuedAt is set for simple tokens only.
	IssuedAt time.Time
	// ExpiresAt is set for external tokens only, from the exp claim.
	ExpiresAt time.Time
	Claims    ExternalClaims
}

// ExternalClaims is the subset of a backend token payload the client reads.
type ExternalClaims struct {
	StudentID  string `json:"studentId"`
	Subject    string `json:"sub"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Exp        int64  `json:"exp"`
}

type simpleTokenPayload struct {
	StudentID string `json:"studentId"`
	Timestamp int64  `json:"timestamp"`
}

// NewSimpleSession mints the session recorded after a successful login.
func NewSimpleSession(studentID string, now time.Time) Session {
	return Session{
		Kind:      SessionSimple,
		StudentID: studentID,
		IssuedAt:  now,
	}
}

// EncodeToken serializes a simple session into its opaque slot form:
// base64 over a JSON object with the student ID and a millisecond timestamp.
func (s Session) EncodeToken() (string, error) {
	payload, err := json.Marshal(simpleTokenPayload{
		StudentID: s.StudentID,
		Timestamp: s.IssuedAt.UnixMilli(),
	})
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(payload), nil
}

// ParseSessionToken tries each token variant in a fixed order: the simple
// self-issued form first, then the external JWT-shaped form. A token that
// fits neither is malformed and the caller treats the slot as absent.
func ParseSessionToken(token string) (Session, error) {
	if strings.TrimSpace(token) == "" {
		return Session{}, ErrNoSession
	}

	if session, ok := parseSimpleToken(token); ok {
		return session, nil
	}
	if session, ok := parseExternalToken(token); ok {
		return session, nil
	}

	return Session{}, ErrMalformedToken
}

// Expired reports whether the session is past its validity window at now.
// Simple tokens age out SessionMaxAge after issuance; external tokens are
// valid strictly until their exp claim, and an external token without exp
// is never considered valid.
func (s Session) Expired(now time.Time) bool {
	switch s.Kind {
	case SessionSimple:
		return now.Sub(s.IssuedAt) > SessionMaxAge
	case SessionExternal:
		if s.ExpiresAt.IsZero() {
			return true
		}
		return !s.ExpiresAt.After(now)
	default:
		return true
	}
}

// UserInfo derives the caller identity from the token contents.
func (s Session) UserInfo() UserInfo {
	if s.Kind == SessionExternal {
		return UserInfo{
			StudentID:  s.StudentID,
			Name:       s.Claims.Name,
			Email:      s.Claims.Email,
			Department: s.Claims.Department,
		}
	}

	return UserInfo{StudentID: s.StudentID}
}

func parseSimpleToken(token string) (Session, bool) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Session{}, false
	}

	var payload simpleTokenPayload
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return Session{}, false
	}
	if payload.StudentID == "" || payload.Timestamp <= 0 {
		return Session{}, false
	}

	return Session{
		Kind:      SessionSimple,
		StudentID: payload.StudentID,
		IssuedAt:  time.UnixMilli(payload.Timestamp),
	}, true
}

func parseExternalToken(token string) (Session, bool) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return Session{}, false
	}

	decoded, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return Session{}, false
	}

	var claims ExternalClaims
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return Session{}, false
	}

	studentID := claims.StudentID
	if studentID == "" {
		studentID = claims.Subject
	}
	if studentID == "" {
		return Session{}, false
	}

	session := Session{
		Kind:      SessionExternal,
		StudentID: studentID,
		Claims:    claims,
	}
	if claims.Exp > 0 {
		session.ExpiresAt = time.Unix(claims.Exp, 0)
	}

	return session, true
}
