package aicontent

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the content service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches content routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/content", h.generate)
}

type generateRequest struct {
	JobTitle string `json:"job_title"`
}

func (h *Handler) generate(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}

	var req generateRequest
	// A missing or malformed body still yields a bundle for the default subject.
	_ = c.ShouldBindJSON(&req)

	bundle := h.Svc.Generate(c.Request.Context(), req.JobTitle)

	// Final guard: the route never returns a partial bundle.
	if bundle.Summary == "" || bundle.Experience == "" || len(bundle.Skills) == 0 {
		fallback := Fallback(DefaultSubject)
		if bundle.Summary == "" {
			bundle.Summary = fallback.Summary
		}
		if bundle.Experience == "" {
			bundle.Experience = fallback.Experience
		}
		if len(bundle.Skills) == 0 {
			bundle.Skills = fallback.Skills
		}
	}

	respond.OK(c, bundle)
}
