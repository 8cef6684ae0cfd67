package tests

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/IvanChernomyrdin/go-recipes/internal/server/api"
	"github.com/IvanChernomyrdin/go-recipes/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-recipes/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-recipes/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-recipes/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-recipes/internal/shared/logger"
)

const testSigningKey = "supersecretkeysupersecretkey123456" // >= 32

type testEnv struct {
	h       *api.Handler
	users   *svcmocks.MockUsersRepo
	recipes *svcmocks.MockRecipesRepo
	health  *svcmocks.MockHealthRepo
	hasher  crypto.PasswordHasher
	tokens  *crypto.TokenIssuer
}

// newTestEnv создаёт Handler с моками репозиториев и настоящими сервисами
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)

	env := &testEnv{
		users:   svcmocks.NewMockUsersRepo(ctrl),
		recipes: svcmocks.NewMockRecipesRepo(ctrl),
		health:  svcmocks.NewMockHealthRepo(ctrl),
		hasher:  crypto.BcryptHasher{Cost: bcrypt.MinCost},
		tokens:  crypto.NewTokenIssuer(crypto.JWTConfig{SigningKey: testSigningKey}),
	}

	svc := service.NewServices(service.Repositories{
		Users:   env.users,
		Recipes: env.recipes,
		Health:  env.health,
	}, env.hasher, env.tokens)

	verifier := middleware.NewJWTVerifier(env.tokens, "")
	env.h = api.NewHandler(svc, &logger.HTTPLogger{Logger: zap.NewNop()}, verifier)
	return env
}

// withRoute кладёт в контекст запроса chi-параметр {id} и userID,
// как это сделали бы роутер и guard.
func withRoute(ctx context.Context, id, userID string) context.Context {
	rctx := chi.NewRouteContext()
	if id != "" {
		rctx.URLParams.Add("id", id)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	if userID != "" {
		ctx = middleware.ContextWithUserID(ctx, userID)
	}
	return ctx
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return v
}
