package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-builder/internal/shared/config"
)

func newTestConfig() config.Config {
	return config.Config{
		Port:            "8080",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
		AdminEmail:      "admin@example.com",
		AdminPassword:   "admin-secret",
	}
}

func TestHealthRoute(t *testing.T) {
	router := NewRouter(newTestConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := NewRouter(newTestConfig())

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/ai/content"},
		{http.MethodPost, "/api/v1/resumes"},
		{http.MethodGet, "/api/v1/admin/users"},
		{http.MethodGet, "/api/v1/admin/stats"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", p.method, p.path, resp.Code)
		}
	}
}

func TestSignupLoginAndGenerateFlow(t *testing.T) {
	router := NewRouter(newTestConfig())

	signup := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup",
		strings.NewReader(`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"secret123","phone":"555-0100"}`))
	signup.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, signup)
	if resp.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	login := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"secret123"}`))
	login.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, login)
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	generate := httptest.NewRequest(http.MethodPost, "/api/v1/ai/content",
		strings.NewReader(`{"job_title":"Engineer"}`))
	generate.Header.Set("Content-Type", "application/json")
	generate.Header.Set("Authorization", "Bearer "+payload.Token)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, generate)
	if resp.Code != http.StatusOK {
		t.Fatalf("generate: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var bundle struct {
		Summary    string   `json:"summary"`
		Skills     []string `json:"skills"`
		Experience string   `json:"experience"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("decode bundle: %v", err)
	}
	if bundle.Summary == "" || bundle.Experience == "" || len(bundle.Skills) == 0 {
		t.Fatalf("incomplete bundle: %+v", bundle)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9090":  ":9090",
		":7000": ":7000",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
