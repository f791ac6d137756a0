package error

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDomainError_WrappedSentinel(t *testing.T) {
	// Given: a registered domain error wrapped twice
	sentinel := NewDomainError("TEST_REJECTED")
	RegisterDomainErrorResponse("TEST_REJECTED", ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "TEST-001",
		Message: "rejected",
	})
	err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", sentinel))

	// When
	resp, ok := ResolveDomainError(err)

	// Then
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Equal(t, "TEST-001", resp.Code)
}

func TestResolveDomainError_Unregistered(t *testing.T) {
	_, ok := ResolveDomainError(NewDomainError("NOT_REGISTERED"))
	assert.False(t, ok)

	_, ok = ResolveDomainError(fmt.Errorf("plain"))
	assert.False(t, ok)

	_, ok = ResolveDomainError(nil)
	assert.False(t, ok)
}

func TestNewValidationErrorResponse(t *testing.T) {
	resp := NewValidationErrorResponse(map[string]string{"email": "Invalid email"})

	assert.Equal(t, ValidationFailed.Code, resp.Code)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "Invalid email", resp.Fields["email"])
}
