package resumes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
)

// Handler wires the resume HTTP routes to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the resume routes, all behind requireAuth.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	grp := rg.Group("/resumes", requireAuth)
	grp.GET("", h.list)
	grp.GET("/:id", h.get)
	grp.POST("", h.create)
	grp.PUT("/:id", h.update)
	grp.DELETE("/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	out, err := h.Svc.List(c.Request.Context(), ownerID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Error fetching resumes.")
		return
	}
	respond.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	resume, err := h.Svc.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found.")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error fetching resume.")
		return
	}
	respond.OK(c, resume)
}

type createResumeRequest struct {
	Title      string          `json:"title"`
	ResumeData json.RawMessage `json:"resumeData"`
}

func (h *Handler) create(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req createResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Please provide title and resumeData.")
		return
	}
	if req.Title == "" || len(req.ResumeData) == 0 || isJSONNull(req.ResumeData) {
		respond.Error(c, http.StatusBadRequest, "Please provide title and resumeData.")
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), ownerID, req.Title, req.ResumeData)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "Please provide title and resumeData.")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error creating resume.")
		return
	}
	respond.JSON(c, http.StatusCreated, resume)
}

type updateResumeRequest struct {
	Title      string          `json:"title"`
	ResumeData json.RawMessage `json:"resumeData"`
}

func (h *Handler) update(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req updateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if isJSONNull(req.ResumeData) {
		req.ResumeData = nil
	}

	resume, err := h.Svc.Update(c.Request.Context(), ownerID, c.Param("id"), req.Title, req.ResumeData)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found.")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Invalid request body.")
		default:
			respond.Error(c, http.StatusInternalServerError, "Error updating resume.")
		}
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) remove(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found.")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error deleting resume.")
		return
	}
	respond.OK(c, gin.H{"msg": "Resume deleted successfully."})
}

// isJSONNull reports whether a raw payload is the JSON literal null, which
// bind leaves as the bytes "null" rather than an empty message.
func isJSONNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
