package tests

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/IvanChernomyrdin/go-recipes/internal/agent/config"
)

func TestDefaultPath_ReturnsPathInHomeDir(t *testing.T) {
	p, err := config.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath returned error: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir returned error: %v", err)
	}

	want := filepath.Join(home, ".recipes", "credentials.json")
	if p != want {
		t.Fatalf("expected %q, got %q", want, p)
	}
}

func TestLoad_FileNotExists_ReturnsEmptyCredentials(t *testing.T) {
	p := filepath.Join(t.TempDir(), "no-such-file.json")

	creds, err := config.Load(p)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if creds == nil {
		t.Fatalf("expected non-nil creds")
	}
	if creds.LoggedIn() {
		t.Fatalf("expected empty creds, got %+v", *creds)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "credentials.json") // вложенная директория

	want := &config.Credentials{
		Token:    "token-1",
		UserID:   "u1",
		Username: "shux",
		Server:   "http://127.0.0.1:3002",
	}

	if err := config.Save(p, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := config.Load(p)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if *got != *want {
		t.Fatalf("expected %+v, got %+v", *want, *got)
	}
	if !got.LoggedIn() {
		t.Fatalf("expected LoggedIn after save")
	}

	if runtime.GOOS != "windows" {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatalf("Stat: %v", err)
		}
		if st.Mode().Perm() != 0o600 {
			t.Fatalf("expected 0600, got %o", st.Mode().Perm())
		}
	}
}

func TestLoad_BadJSON_ReturnsError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(p, []byte("{not-json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := config.Load(p); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestClear(t *testing.T) {
	p := filepath.Join(t.TempDir(), "credentials.json")

	// отсутствующий файл не ошибка
	if err := config.Clear(p); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}

	if err := config.Save(p, &config.Credentials{Token: "t"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := config.Clear(p); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err=%v", err)
	}
}
