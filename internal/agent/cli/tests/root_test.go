package tests

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-recipes/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-recipes/internal/agent/config"
)

func TestNewRootCmd_HasExpectedSubcommands(t *testing.T) {
	cmd := cli.NewRootCmd("1.0.0", "2026-01-16")

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}

	want := []string{"register", "login", "logout", "recipes", "version"}
	for _, w := range want {
		if !names[w] {
			t.Fatalf("expected subcommand %q to exist", w)
		}
	}
}

func TestNewRootCmd_DefaultFlags(t *testing.T) {
	cmd := cli.NewRootCmd("1.0.0", "2026-01-16")

	if got := cmd.PersistentFlags().Lookup("server").DefValue; got != cli.DefaultServerURL {
		t.Fatalf("expected default server %q, got %q", cli.DefaultServerURL, got)
	}
	if got := cmd.PersistentFlags().Lookup("auth-header").DefValue; got != "Authorization" {
		t.Fatalf("expected default auth header Authorization, got %q", got)
	}
}

func TestNewRootCmd_PersistentPreRunE_LoadsCredsFromFlag(t *testing.T) {
	p := filepath.Join(t.TempDir(), "creds.json")
	if err := config.Save(p, &config.Credentials{Token: "tok-1", UserID: "u1"}); err != nil {
		t.Fatalf("Save creds: %v", err)
	}

	// list помечает свои рецепты, значит креды реально загружены
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"_id":"r1","name":"Soup","ingredients":[],"instructions":"","imageUrl":"","cookingTime":5,"userOwner":"u1"}]`)
	})
	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	root := cli.NewRootCmd("1.0.0", "2026-01-16")

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--server", srv.URL, "--creds", p, "recipes", "list"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "(mine)") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewRootCmd_PersistentPreRunE_MissingCredsFileIsOK(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "creds.json")

	root := cli.NewRootCmd("1.0.0", "2026-01-16")

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--creds", p, "version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "version=1.0.0") || !strings.Contains(got, "build_date=2026-01-16") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewRootCmd_PersistentPreRunE_ReturnsErrorOnBadCredsFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(p, []byte("{not-json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	root := cli.NewRootCmd("1.0.0", "2026-01-16")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--creds", p, "version"})

	err := root.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "load credentials") {
		t.Fatalf("unexpected error: %v", err)
	}
}
