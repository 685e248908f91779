package sahaapi

import (
	"context"
	"net/http"
)

// Login обменивает учетные данные на пользователя и bearer-токен.
// Выпуск токена целиком на стороне бэкенда.
func (c *Client) Login(ctx context.Context, req *LoginRequest) (*AuthPayload, error) {
	var auth AuthPayload
	if err := c.do(ctx, "login", http.MethodPost, "/api/auth/login", "", req, nil, &auth, false); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Register регистрирует пользователя и возвращает его вместе с токеном.
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*AuthPayload, error) {
	var auth AuthPayload
	if err := c.do(ctx, "register", http.MethodPost, "/api/auth/register", "", req, nil, &auth, false); err != nil {
		return nil, err
	}
	return &auth, nil
}
