// Хэширование паролей
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	"github.com/IvanChernomyrdin/go-recipes/internal/server/config"
)

// PasswordHasher — односторонний хэш пароля с солью.
//
// Verify возвращает (false, nil) при несовпадении пароля
// и ошибку только если сам хэш битый.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

const argon2Prefix = "argon2id$"

// NewPasswordHasher собирает хэшер по секции password конфига.
//
// Новые хэши считаются настроенным алгоритмом, а проверка понимает оба формата,
// поэтому смена password.hasher не ломает вход старым пользователям.
func NewPasswordHasher(cfg config.PasswordConfig) (PasswordHasher, error) {
	var primary PasswordHasher
	switch strings.ToLower(cfg.Hasher) {
	case config.HasherBcrypt, "":
		primary = BcryptHasher{Cost: cfg.Bcrypt.Cost}
	case config.HasherArgon2id:
		primary = Argon2Hasher{Params: Argon2Params{
			Time:      cfg.Argon2.Time,
			MemoryKiB: cfg.Argon2.MemoryKiB,
			Threads:   cfg.Argon2.Threads,
			KeyLen:    cfg.Argon2.KeyLen,
			SaltLen:   cfg.Argon2.SaltLen,
		}}
	default:
		return nil, fmt.Errorf("unknown password hasher %q", cfg.Hasher)
	}
	return formatAwareHasher{primary: primary}, nil
}

type formatAwareHasher struct {
	primary PasswordHasher
}

func (h formatAwareHasher) Hash(password string) (string, error) {
	return h.primary.Hash(password)
}

func (h formatAwareHasher) Verify(password, encoded string) (bool, error) {
	if strings.HasPrefix(encoded, argon2Prefix) {
		return Argon2Hasher{}.Verify(password, encoded)
	}
	return BcryptHasher{}.Verify(password, encoded)
}

// BcryptHasher — bcrypt с фиксированным cost.
// Cost = 0 означает bcrypt.DefaultCost (10).
type BcryptHasher struct {
	Cost int
}

// Hash возвращает bcrypt-хэш. Пароли длиннее 72 байт bcrypt не принимает,
// это возвращается ошибкой, а не молча обрезается.
func (b BcryptHasher) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(password, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("bcrypt: %w", err)
	}
}

type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
	SaltLen   uint32
}

// Argon2Hasher — argon2id. Параметры нужны только для Hash,
// при проверке они берутся из самой строки хэша.
type Argon2Hasher struct {
	Params Argon2Params
}

// Hash возвращает строку формата:
// argon2id$v=19$m=65536,t=3,p=2$<salt_b64>$<hash_b64>
func (a Argon2Hasher) Hash(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("empty password")
	}
	p := a.Params

	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)

	encoded := fmt.Sprintf(
		"argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.MemoryKiB, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
	return encoded, nil
}

func (Argon2Hasher) Verify(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "argon2id" {
		return false, errors.New("invalid hash format")
	}

	// parts[1] = v=19
	// parts[2] = m=...,t=...,p=...
	// parts[3] = salt
	// parts[4] = hash
	var version int
	if _, err := fmt.Sscanf(parts[1], "v=%d", &version); err != nil || version != argon2.Version {
		return false, errors.New("unsupported argon2 version")
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, errors.New("invalid params format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, errors.New("invalid salt")
	}

	wantHash, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(wantHash) == 0 {
		return false, errors.New("invalid hash")
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(wantHash)))
	return subtle.ConstantTimeCompare(got, wantHash) == 1, nil
}
