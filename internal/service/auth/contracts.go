package auth

import (
	"context"

	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
)

// SahaAPIClient интерфейс клиента Saha API для аутентификации
type SahaAPIClient interface {
	Login(ctx context.Context, req *sahaapi.LoginRequest) (*sahaapi.AuthPayload, error)
	Register(ctx context.Context, req *sahaapi.RegisterRequest) (*sahaapi.AuthPayload, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
