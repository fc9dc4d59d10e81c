package portal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
)

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/students/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(123456), body["student_id"])
		assert.Equal(t, "hunter2", body["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Login successful"}`))
	}))
	defer server.Close()

	err := Login(context.Background(), server.Client(), server.URL, "123456", "hunter2")
	assert.NoError(t, err)
}

func TestLoginSendsNonNumericIDAsString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ABC-123", body["student_id"])

		_, _ = w.Write([]byte(`{"message":"Login successful"}`))
	}))
	defer server.Close()

	err := Login(context.Background(), server.Client(), server.URL, "ABC-123", "hunter2")
	assert.NoError(t, err)
}

func TestLoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer server.Close()

	err := Login(context.Background(), server.Client(), server.URL, "123456", "wrong")

	var rejected *domain.LoginRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusUnauthorized, rejected.StatusCode)
	assert.Equal(t, "Invalid credentials", rejected.Message)
}

func TestLoginRejectedWithoutErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	err := Login(context.Background(), server.Client(), server.URL, "123456", "hunter2")

	var rejected *domain.LoginRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "login failed: 500", rejected.Message)
}

func TestLoginUnrecognizedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "different message", body: `{"message":"Welcome back"}`},
		{name: "missing message", body: `{"status":"ok"}`},
		{name: "not json", body: "OK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			err := Login(context.Background(), server.Client(), server.URL, "123456", "hunter2")
			assert.ErrorIs(t, err, domain.ErrUnrecognizedResponse)
		})
	}
}

func TestRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/students/login/refresh", r.URL.Path)
		assert.Equal(t, "Bearer old-token", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"token":"new-token"}`))
	}))
	defer server.Close()

	token, err := RefreshToken(context.Background(), server.Client(), server.URL, "old-token")
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

func TestRefreshTokenRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"session not refreshable"}`))
	}))
	defer server.Close()

	_, err := RefreshToken(context.Background(), server.Client(), server.URL, "old-token")

	var backend *domain.BackendError
	require.ErrorAs(t, err, &backend)
	assert.Equal(t, http.StatusUnauthorized, backend.StatusCode)
	assert.Equal(t, "session not refreshable", backend.Message)
}

func TestRefreshTokenMissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":""}`))
	}))
	defer server.Close()

	_, err := RefreshToken(context.Background(), server.Client(), server.URL, "old-token")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrSessionExpired))
	assert.Contains(t, err.Error(), "missing token")
}
