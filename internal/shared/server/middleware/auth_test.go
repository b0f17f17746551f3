package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/auth"
)

func newGuardedRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserIDFromContext(c), "role": RoleFromContext(c)})
	})
	return router
}

func doGet(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRequireUserMissingToken(t *testing.T) {
	router := newGuardedRouter(RequireUser())

	if resp := doGet(router, ""); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestRequireUserInvalidToken(t *testing.T) {
	router := newGuardedRouter(RequireUser())

	if resp := doGet(router, "garbage"); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestRequireUserAcceptsUserToken(t *testing.T) {
	router := newGuardedRouter(RequireUser())

	token, err := auth.Sign("7", "user@example.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if resp := doGet(router, token); resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRequireAdminRejectsUserToken(t *testing.T) {
	router := newGuardedRouter(RequireAdmin())

	token, err := auth.Sign("7", "user@example.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if resp := doGet(router, token); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestRequireAdminAcceptsAdminToken(t *testing.T) {
	router := newGuardedRouter(RequireAdmin())

	token, err := auth.Sign("admin@example.com", "admin@example.com", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if resp := doGet(router, token); resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRequireUserAcceptsAdminToken(t *testing.T) {
	router := newGuardedRouter(RequireUser())

	token, err := auth.Sign("admin@example.com", "admin@example.com", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if resp := doGet(router, token); resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
