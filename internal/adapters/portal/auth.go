package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
)

const maxResponseBytes = 1 << 20

type loginRequest struct {
	StudentID any    `json:"student_id"`
	Password  string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
}

type refreshResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Login submits credentials to the backend. Numeric student IDs go out as
// JSON numbers; anything else is forwarded verbatim and left for the
// backend to validate.
func Login(ctx context.Context, client *http.Client, baseURL, studentID, password string) error {
	body, err := json.Marshal(loginRequest{
		StudentID: loginStudentID(studentID),
		Password:  password,
	})
	if err != nil {
		return fmt.Errorf("encode login request: %w", err)
	}

	endpoint := strings.TrimRight(baseURL, "/") + "/students/login"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create login request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("perform login request: %w", err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read login response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &domain.LoginRejectedError{
			StatusCode: response.StatusCode,
			Message:    errorMessage(payload, fmt.Sprintf("login failed: %d", response.StatusCode)),
		}
	}

	var result loginResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return domain.ErrUnrecognizedResponse
	}
	if result.Message != "Login successful" {
		return domain.ErrUnrecognizedResponse
	}

	return nil
}

// RefreshToken asks the backend for a replacement token for a session it
// rejected. Callers attempt this at most once per original request.
func RefreshToken(ctx context.Context, client *http.Client, baseURL, token string) (string, error) {
	endpoint := strings.TrimRight(baseURL, "/") + "/students/login/refresh"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create refresh request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+token)

	response, err := client.Do(request)
	if err != nil {
		return "", fmt.Errorf("perform refresh request: %w", err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read refresh response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", &domain.BackendError{
			StatusCode: response.StatusCode,
			Message:    errorMessage(payload, fmt.Sprintf("token refresh failed: %d", response.StatusCode)),
		}
	}

	var result refreshResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if strings.TrimSpace(result.Token) == "" {
		return "", fmt.Errorf("refresh response missing token")
	}

	return result.Token, nil
}

func loginStudentID(studentID string) any {
	if n, err := strconv.Atoi(strings.TrimSpace(studentID)); err == nil {
		return n
	}
	return studentID
}

func errorMessage(payload []byte, fallback string) string {
	var body errorResponse
	if err := json.Unmarshal(payload, &body); err == nil && strings.TrimSpace(body.Error) != "" {
		return body.Error
	}
	return fallback
}
