package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(repo Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(NewService(repo)).RegisterRoutes(api)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

const signupBody = `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"secret123","phone":"555-0100"}`

func TestSignupEndpoint(t *testing.T) {
	router := newTestRouter(NewMemoryRepo())

	resp := postJSON(t, router, "/api/v1/auth/signup", signupBody)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Message string `json:"message"`
		UserID  int64  `json:"user_id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.UserID == 0 {
		t.Fatal("expected a user_id in response")
	}
}

func TestSignupEndpointMissingFields(t *testing.T) {
	router := newTestRouter(NewMemoryRepo())

	resp := postJSON(t, router, "/api/v1/auth/signup", `{"email":"ada@example.com"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestSignupEndpointDuplicateEmail(t *testing.T) {
	router := newTestRouter(NewMemoryRepo())

	if resp := postJSON(t, router, "/api/v1/auth/signup", signupBody); resp.Code != http.StatusCreated {
		t.Fatalf("first signup failed: %d", resp.Code)
	}
	resp := postJSON(t, router, "/api/v1/auth/signup", signupBody)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(NewMemoryRepo())
	if resp := postJSON(t, router, "/api/v1/auth/signup", signupBody); resp.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d", resp.Code)
	}

	resp := postJSON(t, router, "/api/v1/auth/login", `{"email":"ada@example.com","password":"secret123"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		UserID int64  `json:"user_id"`
		Token  string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Token == "" {
		t.Fatal("expected a token in response")
	}

	resp = postJSON(t, router, "/api/v1/auth/login", `{"email":"ada@example.com","password":"wrong"}`)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}

	resp = postJSON(t, router, "/api/v1/auth/login", `{"email":"nobody@example.com","password":"secret123"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
