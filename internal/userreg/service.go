package userreg

import (
	"context"
	"fmt"

	"github.com/funfun03/form-showcase/internal/account"
	"github.com/funfun03/form-showcase/internal/shared/logger"
)

const formName = "user-registration"

type UserRegistrationService struct {
	gateway account.Gateway
	hasher  *account.Hasher
}

func NewUserRegistrationService(gateway account.Gateway, hasher *account.Hasher) *UserRegistrationService {
	return &UserRegistrationService{
		gateway: gateway,
		hasher:  hasher,
	}
}

// Register submits a validated registration. picture is nil when none was uploaded.
func (s *UserRegistrationService) Register(ctx context.Context, request *UserRegistrationRequest, picture *Picture) (*account.Receipt, error) {
	log := logger.FromContext(ctx)

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		log.Error("Failed to hash password", "error", err)
		return nil, fmt.Errorf("register user: %w", err)
	}

	fields := map[string]any{
		"fullName":     request.FullName,
		"phoneNumber":  request.PhoneNumber,
		"gender":       request.Gender,
		"dateOfBirth":  request.DateOfBirth,
		"country":      request.Country,
		"hobbies":      request.Hobbies,
		"bio":          request.Bio,
		"passwordHash": hash,
	}
	if picture != nil {
		fields["profilePicture"] = *picture
	}

	receipt, err := s.gateway.Submit(ctx, account.Submission{
		Form:   formName,
		Email:  request.Email,
		Fields: fields,
	})
	if err != nil {
		log.Warn("User registration not accepted", "email", logger.MaskEmail(request.Email), "error", err)
		return nil, fmt.Errorf("register user: %w", err)
	}

	return receipt, nil
}
