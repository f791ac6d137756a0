package login

import (
	"context"
	"fmt"

	"github.com/funfun03/form-showcase/internal/account"
	"github.com/funfun03/form-showcase/internal/shared/logger"
)

const formName = "login"

type LoginService struct {
	gateway account.Gateway
}

func NewLoginService(gateway account.Gateway) *LoginService {
	return &LoginService{gateway: gateway}
}

func (s *LoginService) Login(ctx context.Context, request *LoginRequest) (*account.Receipt, error) {
	log := logger.FromContext(ctx)

	receipt, err := s.gateway.Submit(ctx, account.Submission{
		Form:  formName,
		Email: request.Email,
		Fields: map[string]any{
			"rememberMe":  request.RememberMe,
			"credentials": account.CredentialsWithheld,
		},
	})
	if err != nil {
		log.Warn("Login not accepted", "email", logger.MaskEmail(request.Email), "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	log.Info("Login submitted", "email", logger.MaskEmail(request.Email), "remember_me", request.RememberMe)
	return receipt, nil
}
