// Package account is the boundary between the forms and whatever service
// eventually owns accounts. Forms hand it validated, redacted records.
package account

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/funfun03/form-showcase/internal/shared/logger"
	"github.com/google/uuid"
)

// Submission is a validated form record. Fields never hold plaintext passwords.
type Submission struct {
	Form   string
	Email  string
	Fields map[string]any
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID         string    `json:"receiptId"`
	Form       string    `json:"form"`
	AcceptedAt time.Time `json:"acceptedAt"`
}

// Gateway accepts a validated record and reports success or failure.
type Gateway interface {
	Submit(ctx context.Context, submission Submission) (*Receipt, error)
}

// LogGateway accepts every submission and records it in the request log.
type LogGateway struct {
	now func() time.Time
}

func NewLogGateway() *LogGateway {
	return &LogGateway{now: time.Now}
}

func (g *LogGateway) Submit(ctx context.Context, submission Submission) (*Receipt, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		log.Warn("submission dropped", "form", submission.Form, "error", err)
		return nil, fmt.Errorf("submit %s: %w: %v", submission.Form, ErrSubmissionRejected, err)
	}

	receipt := &Receipt{
		ID:         uuid.NewString(),
		Form:       submission.Form,
		AcceptedAt: g.now().UTC(),
	}

	log.Info("submission accepted",
		"form", submission.Form,
		"receipt_id", receipt.ID,
		"email", logger.MaskEmail(submission.Email),
		"fields", fieldNames(submission.Fields),
	)

	return receipt, nil
}

func fieldNames(fields map[string]any) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
