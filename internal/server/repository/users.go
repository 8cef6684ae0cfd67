// Package repository реализует доступ к хранилищу: PostgreSQL и in-memory.
// Ошибки драйвера переводятся в доменные ошибки из shared/errors.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-recipes/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipes/internal/shared/errors"
)

// коды ошибок PostgreSQL
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create добавляет пользователя. Занятый username ловит уникальный индекс
// и превращается в ErrAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, username, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash)
		 VALUES ($1,$2)
		 RETURNING id`,
		username, passwordHash,
	).Scan(&id)

	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return uuid.Nil, serr.ErrAlreadyExists
		}
		return uuid.Nil, serr.ErrInternal
	}

	return id, nil
}

func (r *UsersRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username=$1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// pgCode достаёт код ошибки PostgreSQL, если это она.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
