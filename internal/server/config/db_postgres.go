// Подключение к PostgreSQL и миграции.
//
// Пакет выполняет:
//   - открытие соединения с PostgreSQL (через драйвер pgx);
//   - настройку пула соединений;
//   - проверку доступности базы (Ping);
//   - запуск миграций (golang-migrate) при старте сервера.
package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/IvanChernomyrdin/go-recipes/internal/shared/logger"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// OpenPostgres открывает подключение к базе данных по DSN, проверяет его доступность
// и применяет миграции, если они включены.
//
// Закрывать *sql.DB должен вызывающий.
func OpenPostgres(ctx context.Context, dbCfg DBConfig, migCfg MigrationsConfig, log *logger.HTTPLogger) (*sql.DB, error) {
	sugar := log.Sugar()

	db, err := sql.Open("pgx", dbCfg.DSN)
	if err != nil {
		sugar.Errorf("error to connect db: %v", err)
		return nil, err
	}
	ApplyPool(db, dbCfg)

	pingCtx, cancel := context.WithTimeout(ctx, dbCfg.QueryTimeout)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		sugar.Errorf("error check db connection: %v", err)
		db.Close()
		return nil, err
	}

	if migCfg.Enabled {
		if err := Migrate(db, migCfg.Path); err != nil {
			sugar.Errorf("error applying migrations: %v", err)
			db.Close()
			return nil, err
		}
		sugar.Info("migrations applied successfully")
	}

	return db, nil
}

// ApplyPool переносит настройки пула из конфига в *sql.DB.
// Нулевые значения оставляют дефолты database/sql.
func ApplyPool(db *sql.DB, cfg DBConfig) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}

// Migrate применяет миграции из sourceURL (например file://migrations/postgres).
// migrate.ErrNoChange ошибкой не считается.
func Migrate(db *sql.DB, sourceURL string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
