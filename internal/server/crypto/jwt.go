// Package crypto содержит криптографические примитивы сервера:
//   - хэширование паролей (bcrypt, argon2id);
//   - выпуск и проверку подписанных JWT (HS256).
package crypto

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	serr "github.com/IvanChernomyrdin/go-recipes/internal/shared/errors"
)

// JWTConfig описывает параметры выпуска токена.
type JWTConfig struct {
	// Issuer — значение поля iss. Пусто — поле не пишется и не проверяется.
	Issuer string
	// Audience — значение поля aud. Пусто — поле не пишется и не проверяется.
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	SigningKey string
}

// TokenIssuer выпускает и проверяет сессионные токены.
//
// Токен содержит sub (userID) и iat, exp не выставляется:
// токен действителен, пока совпадает подпись.
type TokenIssuer struct {
	cfg    JWTConfig
	parser *jwt.Parser
	now    func() time.Time
}

// NewTokenIssuer создаёт TokenIssuer. Ключ один на процесс.
func NewTokenIssuer(cfg JWTConfig) *TokenIssuer {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithStrictDecoding(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &TokenIssuer{
		cfg:    cfg,
		parser: jwt.NewParser(opts...),
		now:    time.Now,
	}
}

// Issue подписывает токен для пользователя.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", serr.ErrUserIDEmpty
	}

	claims := jwt.RegisteredClaims{
		Issuer:   t.cfg.Issuer,
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(t.now()),
	}
	if t.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{t.cfg.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.cfg.SigningKey))
}

// Verify проверяет подпись и claims и возвращает userID.
//
// Любое расхождение (чужой ключ, испорченный payload, не тот алгоритм,
// пустой sub) даёт ErrUnauthorized.
func (t *TokenIssuer) Verify(token string) (string, error) {
	if token == "" {
		return "", serr.ErrUnauthorized
	}

	claims := &jwt.RegisteredClaims{}
	_, err := t.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(t.cfg.SigningKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", serr.ErrUnauthorized, err)
	}

	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return "", fmt.Errorf("%w: empty subject", serr.ErrUnauthorized)
	}
	return userID, nil
}
