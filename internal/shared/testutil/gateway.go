package testutil

import (
	"context"
	"time"

	"github.com/funfun03/form-showcase/internal/account"
)

// MockGateway is a mock implementation of account.Gateway for testing
type MockGateway struct {
	SubmitFunc  func(ctx context.Context, submission account.Submission) (*account.Receipt, error)
	Submissions []account.Submission
}

func (m *MockGateway) Submit(ctx context.Context, submission account.Submission) (*account.Receipt, error) {
	m.Submissions = append(m.Submissions, submission)
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, submission)
	}
	return &account.Receipt{
		ID:         "mock-receipt",
		Form:       submission.Form,
		AcceptedAt: time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC),
	}, nil
}

// Last returns the most recent submission, or nil.
func (m *MockGateway) Last() *account.Submission {
	if len(m.Submissions) == 0 {
		return nil
	}
	return &m.Submissions[len(m.Submissions)-1]
}

// Ensure MockGateway implements account.Gateway
var _ account.Gateway = (*MockGateway)(nil)

// NewMockGateway creates a new mock gateway that accepts everything
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}
