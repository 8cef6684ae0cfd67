package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipes/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-recipes/internal/shared/errors"
)

// AuthService реализует регистрацию и вход пользователей.
type AuthService struct {
	users  UsersRepo
	hasher crypto.PasswordHasher
	tokens TokenIssuer

	dummyOnce sync.Once
	dummyHash string
}

// LoginResult — то, что получает клиент после входа.
type LoginResult struct {
	Token  string
	UserID uuid.UUID
}

// NewAuthService создаёт AuthService с зависимостями.
func NewAuthService(users UsersRepo, hasher crypto.PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register регистрирует нового пользователя.
//
// Ошибки:
//   - ErrInvalidInput — пустой username или пароль;
//   - ErrAlreadyExists — username занят (в том числе если второй запрос
//     проскочил проверку и упёрся в уникальный индекс);
//   - ErrInternal — всё остальное.
func (s *AuthService) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return uuid.Nil, serr.ErrInvalidInput
	}

	_, err := s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return uuid.Nil, serr.ErrAlreadyExists
	case !errors.Is(err, serr.ErrNotFound):
		return uuid.Nil, fmt.Errorf("%w: find user: %v", serr.ErrInternal, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: hash password: %v", serr.ErrInternal, err)
	}

	id, err := s.users.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, serr.ErrAlreadyExists) {
			return uuid.Nil, serr.ErrAlreadyExists
		}
		return uuid.Nil, fmt.Errorf("%w: create user: %v", serr.ErrInternal, err)
	}
	return id, nil
}

// Login проверяет пароль и выдаёт токен.
//
// Не раскрывает, существует ли username: на отсутствие пользователя
// и на пустые поля тоже тратится одна проверка хэша и возвращается
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if username == "" || password == "" {
		s.burnVerify(password)
		return LoginResult{}, serr.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			s.burnVerify(password)
			return LoginResult{}, serr.ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("%w: find user: %v", serr.ErrInternal, err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return LoginResult{}, fmt.Errorf("%w: verify password: %v", serr.ErrInternal, err)
	}
	if !ok {
		return LoginResult{}, serr.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		return LoginResult{}, fmt.Errorf("%w: issue token: %v", serr.ErrInternal, err)
	}

	return LoginResult{Token: token, UserID: user.ID}, nil
}

// burnVerify тратит столько же времени, сколько проверка настоящего хэша.
func (s *AuthService) burnVerify(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("recipes-login-placeholder")
	})
	if s.dummyHash != "" {
		_, _ = s.hasher.Verify(password, s.dummyHash)
	}
}
