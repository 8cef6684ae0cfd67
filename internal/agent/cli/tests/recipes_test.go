package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-recipes/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-recipes/internal/agent/config"
	serr "github.com/IvanChernomyrdin/go-recipes/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-recipes/internal/shared/models"
)

const soupJSON = `{"_id":"r1","name":"Soup","ingredients":["water","salt"],"instructions":"boil","imageUrl":"","cookingTime":15,"userOwner":"u1"}`

func loggedInApp(url string) *cli.App {
	return &cli.App{
		ServerURL: url,
		Creds:     &config.Credentials{Token: "tok-1", UserID: "u1"},
	}
}

func runRecipes(t *testing.T, app *cli.App, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRecipesCmd(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRecipesList_PrintsRows(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Fatalf("list must not send a token")
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, "["+soupJSON+`,{"_id":"r2","name":"Tea","ingredients":[],"instructions":"","imageUrl":"","cookingTime":2.5,"userOwner":"u2"}]`)
	})
	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	out, err := runRecipes(t, loggedInApp(srv.URL), "list")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "r1\tSoup\t15 min\t(mine)\n") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "r2\tTea\t2.5 min\n") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRecipesList_Empty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "[]")
	})
	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	out, err := runRecipes(t, &cli.App{ServerURL: srv.URL, Creds: &config.Credentials{}}, "list")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out != "no recipes yet\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRecipesGet_PrintsDetailsAndJSON(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes/r1", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, soupJSON)
	})
	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{ServerURL: srv.URL, Creds: &config.Credentials{}}

	out, err := runRecipes(t, app, "get", "r1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "ingredients:  water, salt") || !strings.Contains(out, "cooking time: 15 min") {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = runRecipes(t, app, "get", "r1", "--json")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	var got models.Recipe
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if got.ID != "r1" || got.CookingTime != 15 {
		t.Fatalf("unexpected recipe: %+v", got)
	}
}

func TestRecipesCreate_SendsTokenAndFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "tok-1" {
			t.Fatalf("expected raw token, got %q", got)
		}

		var req models.CreateRecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "Soup" || req.CookingTime != 15.5 {
			t.Fatalf("unexpected request: %+v", req)
		}
		if strings.Join(req.Ingredients, "|") != "water|salt" {
			t.Fatalf("unexpected ingredients: %v", req.Ingredients)
		}

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"createdRecipe":`+soupJSON+`}`)
	})
	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	out, err := runRecipes(t, loggedInApp(srv.URL),
		"create", "--name", "Soup", "--ingredient", "water", "--ingredient", "salt", "--cooking-time", "15.5")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out != "created r1\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRecipesCreate_NotLoggedIn(t *testing.T) {
	app := &cli.App{ServerURL: "https://127.0.0.1:1", Creds: &config.Credentials{}}

	_, err := runRecipes(t, app, "create", "--name", "Soup")
	if !errors.Is(err, cli.ErrNotLoggedIn) {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}

func TestRecipesUpdate_SendsOnlyChangedFlags(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes/r1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("expected PUT, got %s", r.Method)
		}

		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(raw) != 2 || raw["cookingTime"] != float64(0) || raw["name"] != "Soup 2" {
			t.Fatalf("unexpected body: %v", raw)
		}

		io.WriteString(w, `{"updatedRecipe":`+soupJSON+`}`)
	})
	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	// --cooking-time 0 тоже должно уйти: флаг передан явно
	out, err := runRecipes(t, loggedInApp(srv.URL), "update", "r1", "--name", "Soup 2", "--cooking-time", "0")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out != "updated r1\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRecipesUpdate_NothingToUpdate(t *testing.T) {
	_, err := runRecipes(t, loggedInApp("https://127.0.0.1:1"), "update", "r1")
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if !strings.Contains(err.Error(), "nothing to update") {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}

func TestRecipesDelete_ForbiddenReturnsServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes/r1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"message":"Forbidden"}`)
	})
	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	_, err := runRecipes(t, loggedInApp(srv.URL), "delete", "r1")
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if err.Error() != "403: Forbidden" {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}

func TestRecipesDelete_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes/r1", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"message":"Recipe deleted successfully"}`)
	})
	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	out, err := runRecipes(t, loggedInApp(srv.URL), "delete", "r1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out != "deleted r1\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}
