package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

// Handler wires resume CRUD HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.save)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
}

type saveRequest struct {
	UserID     int64  `json:"user_id"`
	TemplateID int    `json:"template_id"`
	Education  string `json:"education"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Projects   string `json:"projects"`
	AIContent  string `json:"ai_content"`
}

func (h *Handler) save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resumeID, err := h.Svc.Save(c.Request.Context(), Resume{
		UserID:     req.UserID,
		TemplateID: req.TemplateID,
		Education:  req.Education,
		Skills:     req.Skills,
		Experience: req.Experience,
		Projects:   req.Projects,
		AIContent:  req.AIContent,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "user_id is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save resume", err.Error())
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"message":   "Resume saved successfully",
		"resume_id": resumeID,
	})
}

func (h *Handler) get(c *gin.Context) {
	resumeID, ok := parseID(c)
	if !ok {
		return
	}

	resume, err := h.Svc.Get(c.Request.Context(), resumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", err.Error())
		}
		return
	}

	respond.OK(c, resume)
}

type updateRequest struct {
	TemplateID *int    `json:"template_id"`
	Education  *string `json:"education"`
	Skills     *string `json:"skills"`
	Experience *string `json:"experience"`
	Projects   *string `json:"projects"`
	AIContent  *string `json:"ai_content"`
}

func (h *Handler) update(c *gin.Context) {
	resumeID, ok := parseID(c)
	if !ok {
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Svc.Update(c.Request.Context(), resumeID, UpdateFields{
		TemplateID: req.TemplateID,
		Education:  req.Education,
		Skills:     req.Skills,
		Experience: req.Experience,
		Projects:   req.Projects,
		AIContent:  req.AIContent,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "no fields to update", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update resume", err.Error())
		}
		return
	}

	respond.OK(c, gin.H{"message": "Resume updated successfully"})
}

func (h *Handler) remove(c *gin.Context) {
	resumeID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), resumeID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete resume", err.Error())
		}
		return
	}

	respond.OK(c, gin.H{"message": "Resume deleted successfully"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume id is required", nil)
		return 0, false
	}
	return id, true
}
