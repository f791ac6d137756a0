package registration

import (
	"context"
	"fmt"

	"github.com/funfun03/form-showcase/internal/account"
	"github.com/funfun03/form-showcase/internal/shared/logger"
)

const formName = "register"

type RegistrationService struct {
	gateway account.Gateway
	hasher  *account.Hasher
}

func NewRegistrationService(gateway account.Gateway, hasher *account.Hasher) *RegistrationService {
	return &RegistrationService{
		gateway: gateway,
		hasher:  hasher,
	}
}

// Register hands a validated registration to the gateway.
// The confirmation field is dropped and the password is digested.
func (s *RegistrationService) Register(ctx context.Context, request *RegisterRequest) (*account.Receipt, error) {
	log := logger.FromContext(ctx)

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		log.Error("Failed to hash password", "error", err)
		return nil, fmt.Errorf("register: %w", err)
	}

	receipt, err := s.gateway.Submit(ctx, account.Submission{
		Form:  formName,
		Email: request.Email,
		Fields: map[string]any{
			"firstName":    request.FirstName,
			"lastName":     request.LastName,
			"phone":        request.Phone,
			"wantEmails":   request.WantEmails,
			"passwordHash": hash,
		},
	})
	if err != nil {
		log.Warn("Registration not accepted", "email", logger.MaskEmail(request.Email), "error", err)
		return nil, fmt.Errorf("register: %w", err)
	}

	return receipt, nil
}
