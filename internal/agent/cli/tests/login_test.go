package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-recipes/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-recipes/internal/agent/config"
	serr "github.com/IvanChernomyrdin/go-recipes/internal/shared/errors"
)

func TestNewLoginCmd_Success_SavesTokenAndPrintsMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}

		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Username != "shux" {
			t.Fatalf("expected username shux, got %q", req.Username)
		}
		if req.Password != "1234" {
			t.Fatalf("expected password 1234, got %q", req.Password)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token":  "tok-1",
			"userID": "u1",
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	credsPath := filepath.Join(t.TempDir(), "creds.json")

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewLoginCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--username", "shux", "--password", "1234"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := out.String(); !strings.Contains(got, "login ok (token saved)") {
		t.Fatalf("unexpected output: %q", got)
	}

	loaded, err := config.Load(credsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if loaded.Token != "tok-1" {
		t.Fatalf("expected Token=tok-1, got %q", loaded.Token)
	}
	if loaded.UserID != "u1" {
		t.Fatalf("expected UserID=u1, got %q", loaded.UserID)
	}
	if loaded.Username != "shux" {
		t.Fatalf("expected Username=shux, got %q", loaded.Username)
	}
	if loaded.Server != srv.URL {
		t.Fatalf("expected Server=%s, got %q", srv.URL, loaded.Server)
	}
	if !app.Creds.LoggedIn() {
		t.Fatalf("expected app creds to be updated")
	}
}

func TestNewLoginCmd_MissingUsername_ReturnsError(t *testing.T) {
	app := &cli.App{
		ServerURL: "https://127.0.0.1:1",
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewLoginCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--password", "1234"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}

func TestNewLoginCmd_ServerReturnsError_DoesNotWriteCredsFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Username or password is incorrect"}`))
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	credsPath := filepath.Join(t.TempDir(), "creds.json")

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewLoginCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--username", "shux", "--password", "wrong"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if !strings.Contains(err.Error(), "Username or password is incorrect") {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}

	if _, statErr := os.Stat(credsPath); statErr == nil {
		t.Fatalf("creds file should not be created on login error")
	}
}

func TestNewLogoutCmd_RemovesCredsFile(t *testing.T) {
	credsPath := filepath.Join(t.TempDir(), "creds.json")
	if err := config.Save(credsPath, &config.Credentials{Token: "tok-1", UserID: "u1"}); err != nil {
		t.Fatalf("save creds: %v", err)
	}

	app := &cli.App{CredsPath: credsPath, Creds: &config.Credentials{Token: "tok-1", UserID: "u1"}}

	cmd := cli.NewLogoutCmd(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out.String(), "logged out") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if app.Creds.LoggedIn() {
		t.Fatalf("expected creds to be cleared")
	}
	if _, err := os.Stat(credsPath); !os.IsNotExist(err) {
		t.Fatalf("expected creds file to be removed, stat err: %v", err)
	}
}
