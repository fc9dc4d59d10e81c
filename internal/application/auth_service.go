package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/latifur-rahman/campus-portal-cli/internal/adapters/portal"
	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
	"github.com/latifur-rahman/campus-portal-cli/internal/ports"
)

// maxAuthRetries bounds the refresh loop for requests the backend answers
// with 401. One refresh attempt, then force logout.
const maxAuthRetries = 1

// AuthService owns the session lifecycle: it mints and validates the local
// token, gates access for the other services, and is the only component
// that touches the session store.
type AuthService struct {
	store      ports.SessionStore
	clock      ports.Clock
	httpClient *http.Client
	baseURL    string
}

func NewAuthService(store ports.SessionStore, clock ports.Clock, httpClient *http.Client, baseURL string) *AuthService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &AuthService{
		store:      store,
		clock:      clock,
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// Login authenticates against the backend and, on success, persists a
// fresh session overwriting any prior one. Nothing is written on failure.
func (s *AuthService) Login(ctx context.Context, studentID, password string) (domain.UserInfo, error) {
	if err := portal.Login(ctx, s.httpClient, s.baseURL, studentID, password); err != nil {
		return domain.UserInfo{}, err
	}

	session := domain.NewSimpleSession(studentID, s.clock.Now())
	token, err := session.EncodeToken()
	if err != nil {
		return domain.UserInfo{}, fmt.Errorf("encode session token: %w", err)
	}

	if err := s.store.Set(ctx, token); err != nil {
		return domain.UserInfo{}, fmt.Errorf("persist session: %w", err)
	}

	return session.UserInfo(), nil
}

// Logout erases the session slot. Clearing an absent slot is a success.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	_, _, err := s.currentSession(ctx)
	return err == nil
}

// CurrentUser returns the identity carried by the stored token, or
// domain.ErrNoSession / ErrSessionExpired under the same conditions that
// make IsAuthenticated false.
func (s *AuthService) CurrentUser(ctx context.Context) (domain.UserInfo, error) {
	session, _, err := s.currentSession(ctx)
	if err != nil {
		return domain.UserInfo{}, err
	}

	return session.UserInfo(), nil
}

// Session exposes the parsed current session for display purposes.
func (s *AuthService) Session(ctx context.Context) (domain.Session, error) {
	session, _, err := s.currentSession(ctx)
	return session, err
}

// AuthHeader is empty when no valid session exists, else the single
// Authorization pair carrying the session token.
func (s *AuthService) AuthHeader(ctx context.Context) map[string]string {
	_, token, err := s.currentSession(ctx)
	if err != nil {
		return map[string]string{}
	}

	return map[string]string{"Authorization": "Bearer " + token}
}

// Do performs req with the session attached. A 401 triggers at most one
// token refresh before the original call fails with ErrSessionExpired and
// the session is force-cleared; the loop never runs a second retry even
// against a persistently rejecting backend.
func (s *AuthService) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	_, token, err := s.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		attemptReq, err := cloneRequest(ctx, req)
		if err != nil {
			return nil, err
		}
		attemptReq.Header.Set("Authorization", "Bearer "+token)

		response, err := s.httpClient.Do(attemptReq)
		if err != nil {
			return nil, fmt.Errorf("perform authenticated request: %w", err)
		}
		if response.StatusCode != http.StatusUnauthorized {
			return response, nil
		}
		_ = response.Body.Close()

		if attempt >= maxAuthRetries {
			break
		}

		refreshed, err := portal.RefreshToken(ctx, s.httpClient, s.baseURL, token)
		if err != nil {
			break
		}
		if err := s.store.Set(ctx, refreshed); err != nil {
			return nil, fmt.Errorf("persist refreshed session: %w", err)
		}
		token = refreshed
	}

	_ = s.store.Clear(ctx)
	return nil, domain.ErrSessionExpired
}

// currentSession reads and validates the slot. A corrupted or expired
// token self-heals: the slot is cleared and the session reported absent
// or expired. An absent slot is left untouched.
func (s *AuthService) currentSession(ctx context.Context) (domain.Session, string, error) {
	token, err := s.store.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return domain.Session{}, "", domain.ErrNoSession
		}
		_ = s.store.Clear(ctx)
		return domain.Session{}, "", domain.ErrMalformedToken
	}

	session, err := domain.ParseSessionToken(token)
	if err != nil {
		_ = s.store.Clear(ctx)
		return domain.Session{}, "", domain.ErrMalformedToken
	}

	if session.Expired(s.clock.Now()) {
		_ = s.store.Clear(ctx)
		return domain.Session{}, "", domain.ErrSessionExpired
	}

	return session, token, nil
}

func cloneRequest(ctx context.Context, req *http.Request) (*http.Request, error) {
	clone := req.Clone(ctx)
	if req.Body == nil || req.Body == http.NoBody {
		return clone, nil
	}
	if req.GetBody == nil {
		return nil, fmt.Errorf("authenticated request with non-replayable body")
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("replay request body: %w", err)
	}
	clone.Body = body

	return clone, nil
}
