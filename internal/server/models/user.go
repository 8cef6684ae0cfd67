// Серверные модели хранилища
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — учётная запись. PasswordHash наружу не отдаётся никогда,
// поэтому json-тегов у модели нет.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
