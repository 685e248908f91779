package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	"github.com/m04kA/HSB-ReservationService/internal/service/auth/models"
)

// Service сервис аутентификации. Паролей и токенов не хранит:
// проверку выполняет бэкенд, сервис только валидирует вход и
// прокидывает результат.
type Service struct {
	client SahaAPIClient
	logger Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(client SahaAPIClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Login выполняет вход по email и паролю
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: attempt for email=%s", email)

	payload, err := s.client.Login(ctx, &sahaapi.LoginRequest{
		Email:    email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, sahaapi.ErrUnauthorized) || errors.Is(err, sahaapi.ErrNotFound) {
			s.logger.Warn("Login: invalid credentials for email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: backend error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - backend error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: successful for user=%s", payload.User.ID)
	return fromAuthPayload(payload), nil
}

// Register регистрирует нового пользователя
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Register: attempt for email=%s", email)

	payload, err := s.client.Register(ctx, &sahaapi.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, sahaapi.ErrConflict) {
			s.logger.Warn("Register: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: backend error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - backend error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successful for user=%s", payload.User.ID)
	return fromAuthPayload(payload), nil
}

func fromAuthPayload(p *sahaapi.AuthPayload) *models.AuthResponse {
	return &models.AuthResponse{
		Token: p.Token,
		User: models.UserResponse{
			ID:    p.User.ID,
			Name:  p.User.Name,
			Email: p.User.Email,
			Role:  p.User.Role,
		},
	}
}
