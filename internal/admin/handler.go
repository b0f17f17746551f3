package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/users"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

// Handler wires the admin HTTP API to the composed services.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches the admin login route.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.login)
}

// RegisterRoutes attaches the protected admin routes. The caller is expected
// to guard the group with the admin-role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/users", h.listUsers)
	rg.PUT("/admin/users/:id", h.updateUser)
	rg.DELETE("/admin/users/:id", h.deleteUser)
	rg.GET("/admin/resumes", h.listResumes)
	rg.GET("/admin/stats", h.stats)
	rg.GET("/admin/stats/monthly", h.monthlyStats)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.Login(req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "unavailable", "admin login not configured", nil)
		default:
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "invalid credentials", nil)
		}
		return
	}

	token, err := auth.Sign(h.Svc.Email, h.Svc.Email, auth.RoleAdmin)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}

	respond.OK(c, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *Handler) listUsers(c *gin.Context) {
	query := users.PageQuery{
		Search: c.Query("search"),
		Page:   defaultPage,
		Limit:  defaultLimit,
	}
	if v := c.Query("page"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "page must be an integer", nil)
			return
		}
		query.Page = parsed
	}
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be an integer", nil)
			return
		}
		query.Limit = parsed
	}

	page, err := h.Svc.Users.ListPage(c.Request.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "page and limit must be at least 1", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list users", err.Error())
		}
		return
	}

	records := page.Users
	if records == nil {
		records = []users.User{}
	}
	respond.OK(c, gin.H{
		"users":        records,
		"total_pages":  page.TotalPages,
		"current_page": page.CurrentPage,
	})
}

type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Status    *string `json:"status"`
}

func (h *Handler) updateUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Svc.Users.Update(c.Request.Context(), userID, users.UpdateFields{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "no fields to update", nil)
		case errors.Is(err, users.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update user", err.Error())
		}
		return
	}

	respond.OK(c, gin.H{"message": "User updated successfully"})
}

func (h *Handler) deleteUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Svc.Users.Delete(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete user", err.Error())
		}
		return
	}

	respond.OK(c, gin.H{"message": "User deleted successfully"})
}

func (h *Handler) listResumes(c *gin.Context) {
	list, err := h.Svc.Resumes.ListWithOwners(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", err.Error())
		return
	}
	if list == nil {
		list = []resumes.Summary{}
	}
	respond.OK(c, gin.H{"resumes": list})
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load stats", err.Error())
		return
	}
	respond.OK(c, stats)
}

func (h *Handler) monthlyStats(c *gin.Context) {
	stats, err := h.Svc.MonthlyStats(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load monthly stats", err.Error())
		return
	}
	if stats.Users == nil {
		stats.Users = []users.MonthlyCount{}
	}
	if stats.Resumes == nil {
		stats.Resumes = []resumes.MonthlyCount{}
	}
	respond.OK(c, stats)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user id is required", nil)
		return 0, false
	}
	return id, true
}
