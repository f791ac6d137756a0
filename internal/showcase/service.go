package showcase

import (
	"context"
	"fmt"

	"github.com/funfun03/form-showcase/internal/account"
	"github.com/funfun03/form-showcase/internal/shared/logger"
)

const (
	formSignIn = "showcase-signin"
	formSignUp = "showcase-signup"
	formLogIn  = "showcase-login"
)

type ShowcaseService struct {
	gateway account.Gateway
	hasher  *account.Hasher
}

func NewShowcaseService(gateway account.Gateway, hasher *account.Hasher) *ShowcaseService {
	return &ShowcaseService{
		gateway: gateway,
		hasher:  hasher,
	}
}

// SignIn applies an accepted sign-in email to the state.
func (s *ShowcaseService) SignIn(ctx context.Context, state *State, request *SignInRequest) {
	logger.FromContext(ctx).Info("sign-in email accepted", "email", logger.MaskEmail(request.Email))
	state.SubmitEmail(request.Email)
}

func (s *ShowcaseService) SignUp(ctx context.Context, request *SignUpRequest) (*account.Receipt, error) {
	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to hash password", "error", err)
		return nil, fmt.Errorf("sign up: %w", err)
	}

	receipt, err := s.gateway.Submit(ctx, account.Submission{
		Form:  formSignUp,
		Email: request.Email,
		Fields: map[string]any{
			"name":         request.Name,
			"passwordHash": hash,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return receipt, nil
}

// LogIn forwards the attempt without the password; see account.CredentialsWithheld.
func (s *ShowcaseService) LogIn(ctx context.Context, request *LogInRequest) (*account.Receipt, error) {
	receipt, err := s.gateway.Submit(ctx, account.Submission{
		Form:   formLogIn,
		Email:  request.Email,
		Fields: map[string]any{"credentials": account.CredentialsWithheld},
	})
	if err != nil {
		return nil, fmt.Errorf("log in: %w", err)
	}
	return receipt, nil
}
