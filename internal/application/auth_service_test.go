package application

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
)

// memStore is an in-memory session slot for service tests.
type memStore struct {
	token      string
	present    bool
	getErr     error
	setCalls   int
	clearCalls int
}

func (m *memStore) Get(ctx context.Context) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	if !m.present {
		return "", domain.ErrNoSession
	}
	return m.token, nil
}

func (m *memStore) Set(ctx context.Context, token string) error {
	m.setCalls++
	m.token = token
	m.present = true
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.clearCalls++
	m.token = ""
	m.present = false
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

var loginTime = time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

func seedSession(t *testing.T, store *memStore, studentID string, issued time.Time) {
	t.Helper()

	token, err := domain.NewSimpleSession(studentID, issued).EncodeToken()
	require.NoError(t, err)
	store.token = token
	store.present = true
}

func TestLoginPersistsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/students/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Login successful"}`))
	}))
	defer server.Close()

	store := &memStore{}
	auth := NewAuthService(store, &fixedClock{now: loginTime}, server.Client(), server.URL)

	user, err := auth.Login(context.Background(), "123456", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "123456", user.StudentID)
	assert.Equal(t, 1, store.setCalls)

	session, err := domain.ParseSessionToken(store.token)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionSimple, session.Kind)
	assert.True(t, session.IssuedAt.Equal(loginTime))
}

func TestLoginFailureWritesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer server.Close()

	store := &memStore{}
	seedSession(t, store, "111111", loginTime)
	previous := store.token

	auth := NewAuthService(store, &fixedClock{now: loginTime}, server.Client(), server.URL)

	_, err := auth.Login(context.Background(), "123456", "wrong")

	var rejected *domain.LoginRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Zero(t, store.setCalls)
	assert.Equal(t, previous, store.token)
}

func TestIsAuthenticatedLifecycle(t *testing.T) {
	store := &memStore{}
	clock := &fixedClock{now: loginTime}
	auth := NewAuthService(store, clock, nil, "http://unused")

	ctx := context.Background()

	assert.False(t, auth.IsAuthenticated(ctx))

	seedSession(t, store, "123456", loginTime)
	assert.True(t, auth.IsAuthenticated(ctx))

	clock.now = loginTime.Add(23*time.Hour + 59*time.Minute)
	assert.True(t, auth.IsAuthenticated(ctx))

	clock.now = loginTime.Add(24*time.Hour + time.Minute)
	assert.False(t, auth.IsAuthenticated(ctx))
	// Expiry self-heals the slot.
	assert.Equal(t, 1, store.clearCalls)
	assert.False(t, store.present)
}

func TestCurrentUserErrors(t *testing.T) {
	store := &memStore{}
	clock := &fixedClock{now: loginTime}
	auth := NewAuthService(store, clock, nil, "http://unused")

	ctx := context.Background()

	_, err := auth.CurrentUser(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	seedSession(t, store, "123456", loginTime)
	clock.now = loginTime.Add(25 * time.Hour)
	_, err = auth.CurrentUser(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestCorruptedSlotSelfHeals(t *testing.T) {
	store := &memStore{token: "!!corrupted!!", present: true}
	auth := NewAuthService(store, &fixedClock{now: loginTime}, nil, "http://unused")

	_, err := auth.CurrentUser(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedToken)
	assert.Equal(t, 1, store.clearCalls)

	// Once healed the slot reads as absent.
	_, err = auth.CurrentUser(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := &memStore{}
	auth := NewAuthService(store, &fixedClock{now: loginTime}, nil, "http://unused")

	ctx := context.Background()

	seedSession(t, store, "123456", loginTime)
	require.NoError(t, auth.Logout(ctx))
	require.NoError(t, auth.Logout(ctx))
	assert.False(t, auth.IsAuthenticated(ctx))
}

func TestAuthHeader(t *testing.T) {
	store := &memStore{}
	clock := &fixedClock{now: loginTime}
	auth := NewAuthService(store, clock, nil, "http://unused")

	ctx := context.Background()

	assert.Empty(t, auth.AuthHeader(ctx))

	seedSession(t, store, "123456", loginTime)
	header := auth.AuthHeader(ctx)
	require.Len(t, header, 1)
	assert.Equal(t, "Bearer "+store.token, header["Authorization"])

	clock.now = loginTime.Add(25 * time.Hour)
	assert.Empty(t, auth.AuthHeader(ctx))
}

func TestDoRefreshesOnceOn401(t *testing.T) {
	var meCalls, refreshCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/students/me":
			if meCalls.Add(1) == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			assert.Equal(t, "Bearer refreshed-token", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{}`))
		case "/students/login/refresh":
			refreshCalls.Add(1)
			_, _ = w.Write([]byte(`{"token":"refreshed-token"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	store := &memStore{}
	seedSession(t, store, "123456", loginTime)
	auth := NewAuthService(store, &fixedClock{now: loginTime}, server.Client(), server.URL)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/students/me", nil)
	require.NoError(t, err)

	response, err := auth.Do(req)
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, int32(2), meCalls.Load())
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, "refreshed-token", store.token)
}

func TestDoGivesUpAfterSingleRetry(t *testing.T) {
	var meCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/students/me":
			meCalls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		case "/students/login/refresh":
			_, _ = w.Write([]byte(`{"token":"refreshed-token"}`))
		}
	}))
	defer server.Close()

	store := &memStore{}
	seedSession(t, store, "123456", loginTime)
	auth := NewAuthService(store, &fixedClock{now: loginTime}, server.Client(), server.URL)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/students/me", nil)
	require.NoError(t, err)

	_, err = auth.Do(req)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	// Original attempt plus exactly one retry.
	assert.Equal(t, int32(2), meCalls.Load())
	assert.False(t, store.present)
}

func TestDoFailsFastWhenRefreshRejected(t *testing.T) {
	var meCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/students/me":
			meCalls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		case "/students/login/refresh":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"session not refreshable"}`))
		}
	}))
	defer server.Close()

	store := &memStore{}
	seedSession(t, store, "123456", loginTime)
	auth := NewAuthService(store, &fixedClock{now: loginTime}, server.Client(), server.URL)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/students/me", nil)
	require.NoError(t, err)

	_, err = auth.Do(req)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, int32(1), meCalls.Load())
	assert.False(t, store.present)
}

func TestDoWithoutSession(t *testing.T) {
	auth := NewAuthService(&memStore{}, &fixedClock{now: loginTime}, nil, "http://unused")

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://unused/students/me", nil)
	require.NoError(t, err)

	_, err = auth.Do(req)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}
