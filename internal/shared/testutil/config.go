package testutil

import (
	"time"

	"github.com/funfun03/form-showcase/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// NewTestConfig creates a test configuration
// This removes the need for environment variables during testing
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "form-showcase-test",
			Env:  "test",
			Port: 8080,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
		RateLimit: config.RateLimitConfig{
			RequestsPerMinute: 6000,
			Burst:             1000,
			CleanupInterval:   time.Minute,
		},
		Upload: config.UploadConfig{
			MaxMultipartBytes: 1 << 20,
		},
		Account: config.AccountConfig{
			BcryptCost: bcrypt.MinCost, // keep tests fast
		},
	}
}
