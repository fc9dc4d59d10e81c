package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/latifur-rahman/campus-portal-cli/internal/adapters/portal"
	resultadapter "github.com/latifur-rahman/campus-portal-cli/internal/adapters/render/result"
	filestore "github.com/latifur-rahman/campus-portal-cli/internal/adapters/sessionstore/file"
	"github.com/latifur-rahman/campus-portal-cli/internal/application"
	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
	"github.com/latifur-rahman/campus-portal-cli/internal/ports"
)

const (
	configName      = "config"
	configType      = "toml"
	configDir       = ".campus-portal"
	baseURLKey      = "portal.base_url"
	sessionPathKey  = "session.path"
	defaultBaseURL  = "http://localhost:8080"
	sessionFileName = "session.toml"
)

type app struct {
	auth           *application.AuthService
	students       *application.StudentService
	resultRenderer func(domain.ResultAggregate, resultadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	cfg.SetDefault(sessionPathKey, filepath.Join(homeDir, configDir, sessionFileName))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	baseURL := envOrDefault("CAMPUS_PORTAL_BASE_URL", cfg.GetString(baseURLKey))
	sessionPath := cfg.GetString(sessionPathKey)
	if sessionPath == "" {
		return nil, errors.New("session path is empty")
	}

	store := filestore.NewStore(sessionPath)
	auth := application.NewAuthService(store, ports.SystemClock{}, http.DefaultClient, baseURL)
	gateway := portal.NewClient(baseURL, auth)

	return &app{
		auth:           auth,
		students:       application.NewStudentService(gateway, auth),
		resultRenderer: resultadapter.Render,
		now:            time.Now,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
