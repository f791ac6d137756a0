package account

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	sharedError "github.com/funfun03/form-showcase/internal/shared/error"
	"github.com/funfun03/form-showcase/internal/shared/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogGateway_Submit(t *testing.T) {
	// Given: a gateway with a fixed clock and a captured log
	var buf bytes.Buffer
	ctx := logger.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	gateway := NewLogGateway()
	fixed := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	gateway.now = func() time.Time { return fixed }

	// When
	receipt, err := gateway.Submit(ctx, Submission{
		Form:   "register",
		Email:  "alice@example.com",
		Fields: map[string]any{"firstName": "Alice", "passwordHash": "$2a$..."},
	})

	// Then
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, "register", receipt.Form)
	assert.Equal(t, fixed, receipt.AcceptedAt)

	logged := buf.String()
	assert.Contains(t, logged, "a***@example.com")
	assert.NotContains(t, logged, "alice@example.com")
	assert.NotContains(t, logged, "Alice")
}

func TestLogGateway_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	receipt, err := NewLogGateway().Submit(ctx, Submission{Form: "login"})

	assert.Nil(t, receipt)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSubmissionRejected))

	resp, ok := sharedError.ResolveDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, resp.Status)
	assert.Equal(t, "SUBMIT-001", resp.Code)
}

func TestHasher_Hash(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("abc12345")

	require.NoError(t, err)
	assert.NotEqual(t, "abc12345", digest)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(digest), []byte("abc12345")))
}
