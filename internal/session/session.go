// Package session заменяет глобального "текущего пользователя": сессия
// извлекается из bearer-токена один раз в middleware и дальше передается
// явно в каждую операцию, которой нужен действующий пользователь.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается при нечитаемом или неподписанном токене
	ErrInvalidToken = errors.New("session: invalid token")

	// ErrTokenExpired возвращается для просроченного токена
	ErrTokenExpired = errors.New("session: token expired")
)

// Session действующий пользователь текущего запроса.
// Token хранится для передачи бэкенду как есть: для нас это opaque credential.
type Session struct {
	UserID string
	Name   string
	Role   string
	Token  string
}

// ParseToken разбирает bearer-токен и восстанавливает сессию из claims
// (id/name/role) без похода на бэкенд. Подпись проверяется локально.
func ParseToken(tokenString, secret string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, _ := claims["id"].(string)
	if userID == "" {
		return nil, fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}

	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return &Session{
		UserID: userID,
		Name:   name,
		Role:   role,
		Token:  tokenString,
	}, nil
}

type ctxKey struct{}

// IntoContext кладет сессию в контекст запроса.
func IntoContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext достает сессию из контекста.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
