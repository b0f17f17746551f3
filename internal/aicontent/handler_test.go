package aicontent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func TestGenerateEndpointReturnsBundle(t *testing.T) {
	router := newTestRouter(NewService(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/content", strings.NewReader(`{"job_title":"Designer"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var bundle Bundle
	if err := json.Unmarshal(resp.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if bundle.Summary == "" || bundle.Experience == "" || len(bundle.Skills) == 0 {
		t.Fatalf("incomplete bundle: %+v", bundle)
	}
	if !strings.Contains(bundle.Summary, "Designer") {
		t.Fatalf("fallback summary should reference the subject: %q", bundle.Summary)
	}
}

func TestGenerateEndpointMissingBodyDefaults(t *testing.T) {
	router := newTestRouter(NewService(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/content", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var bundle Bundle
	if err := json.Unmarshal(resp.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(bundle.Summary, DefaultSubject) {
		t.Fatalf("expected default subject in summary, got %q", bundle.Summary)
	}
}
