package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IvanChernomyrdin/go-recipes/internal/agent/api"
)

func TestClient_PostJSON_SetsHeaders_AndDecodesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected method POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected Content-Type application/json, got %q", ct)
		}
		// токен уходит как есть, без "Bearer "
		if auth := r.Header.Get("Authorization"); auth != "token-1" {
			t.Fatalf("expected Authorization token-1, got %q", auth)
		}

		var got map[string]any
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if got["a"] != float64(1) {
			t.Fatalf("expected a=1, got %#v", got["a"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	var resp map[string]any
	if err := c.PostJSON("/x", map[string]any{"a": 1}, &resp, "token-1"); err != nil {
		t.Fatalf("PostJSON returned error: %v", err)
	}
	if resp["ok"] != true {
		t.Fatalf("expected ok=true, got %#v", resp["ok"])
	}
}

func TestClient_WithAuthHeader_UsesCustomHeader(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Auth-Token"); got != "token-1" {
			t.Fatalf("expected X-Auth-Token token-1, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Fatalf("expected empty Authorization, got %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL).WithAuthHeader("X-Auth-Token")
	if err := c.GetJSON("/x", nil, "token-1"); err != nil {
		t.Fatalf("GetJSON returned error: %v", err)
	}
}

func TestClient_WithAuthHeader_EmptyKeepsDefault(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(api.DefaultAuthHeader); got != "token-1" {
			t.Fatalf("expected %s token-1, got %q", api.DefaultAuthHeader, got)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL + "/").WithAuthHeader("")
	if err := c.DeleteJSON("/x", nil, "token-1"); err != nil {
		t.Fatalf("DeleteJSON returned error: %v", err)
	}
}

func TestClient_GetJSON_WithoutAuth_NoBodyHeaders(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Fatalf("expected empty Authorization, got %q", auth)
		}
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Fatalf("expected no Content-Type on GET, got %q", ct)
		}
		if acc := r.Header.Get("Accept"); acc != "application/json" {
			t.Fatalf("expected Accept application/json, got %q", acc)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	var resp []any
	if err := api.NewClient(srv.URL).GetJSON("/x", &resp, ""); err != nil {
		t.Fatalf("GetJSON returned error: %v", err)
	}
}

func TestClient_Non2xx_ReturnsAPIError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"json message", http.StatusForbidden, `{"message":"Forbidden"}`, "Forbidden"},
		{"plain text", http.StatusBadRequest, "bad request: invalid input", "bad request: invalid input"},
		{"empty body", http.StatusBadGateway, "", "502 Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			srv := httptest.NewTLSServer(mux)
			defer srv.Close()

			err := api.NewClient(srv.URL).PostJSON("/x", map[string]any{"a": 1}, nil, "")
			if err == nil {
				t.Fatalf("expected error, got nil")
			}

			var apiErr *api.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *api.APIError, got %T", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, apiErr.StatusCode)
			}
			if apiErr.Message != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, apiErr.Message)
			}
		})
	}
}

func TestClient_RespNil_DoesNotDecode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "not a json")
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	if err := api.NewClient(srv.URL).PutJSON("/x", map[string]any{"a": 1}, nil, ""); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestClient_EmptyBody_IsOK(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	var resp map[string]any
	if err := api.NewClient(srv.URL).GetJSON("/x", &resp, ""); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
