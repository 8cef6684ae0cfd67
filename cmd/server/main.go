// @title           Recipes API
// @version         1.0
// @description     Recipe sharing backend.
// @description     Provides user registration, login and ownership-scoped recipe CRUD.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3002
// @BasePath  /
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
//
// Package main содержит точку входа серверного приложения рецептов.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - выбор хранилища (PostgreSQL с миграциями или память процесса);
//   - создание хэшера паролей и ключа подписи токенов один раз на процесс;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - обработку системных сигналов завершения и graceful shutdown.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-recipes/internal/server/api"
	"github.com/IvanChernomyrdin/go-recipes/internal/server/config"
	"github.com/IvanChernomyrdin/go-recipes/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-recipes/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-recipes/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-recipes/internal/server/repository"
	"github.com/IvanChernomyrdin/go-recipes/internal/server/service"
	"github.com/IvanChernomyrdin/go-recipes/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-recipes/swagger/docs"
)

func main() {
	configPath := flag.String("config", "./configs/server.yaml", "путь к server.yaml")
	flag.Parse()

	boot := logger.NewHTTPLogger().Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		boot.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Fatal(err)
	}

	httpLogger, err := logger.New(cfg.LoggerOptions())
	if err != nil {
		boot.Fatalf("logger: %v", err)
	}
	defer httpLogger.Logger.Sync()
	sugar := httpLogger.Logger.Sugar()

	repos, closeStore, err := openStore(cfg, httpLogger)
	if err != nil {
		sugar.Fatal(err)
	}
	defer closeStore()

	hasher, err := crypto.NewPasswordHasher(cfg.Password)
	if err != nil {
		sugar.Fatal(err)
	}
	tokens := crypto.NewTokenIssuer(crypto.JWTConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
	})

	svc := service.NewServices(repos, hasher, tokens)
	verifier := middleware.NewJWTVerifier(tokens, cfg.Auth.Header)
	handler := api.NewHandler(svc, httpLogger, verifier)
	router := h.NewRouter(handler, cfg.Server.MaxBodyBytes)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("server started", "addr", addr, "tls", cfg.TLS.Enabled, "db_driver", cfg.DB.Driver)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

// openStore поднимает хранилище по db.driver и возвращает функцию его закрытия.
func openStore(cfg *config.Config, log *logger.HTTPLogger) (service.Repositories, func(), error) {
	switch cfg.DB.Driver {
	case config.DriverMemory:
		store := repository.NewMemoryStore()
		log.Logger.Sugar().Warn("db.driver=memory: data lives only until restart")
		return service.Repositories{
			Users:   store.Users(),
			Recipes: store.Recipes(),
			Health:  store,
		}, func() {}, nil
	default:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.DB.QueryTimeout)
		defer cancel()

		db, err := config.OpenPostgres(ctx, cfg.DB, cfg.Migrations, log)
		if err != nil {
			return service.Repositories{}, nil, err
		}
		return service.Repositories{
			Users:   repository.NewUsersRepository(db),
			Recipes: repository.NewRecipesRepository(db),
			Health:  repository.NewHealthRepository(db),
		}, func() { db.Close() }, nil
	}
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
