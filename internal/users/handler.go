package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
)

// Handler wires the auth HTTP routes to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the auth routes. requireAuth guards /me; the other
// routes are public by design.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	grp := rg.Group("/auth")
	grp.POST("/register", h.register)
	grp.POST("/login", h.login)
	grp.GET("/me", requireAuth, h.me)
	grp.POST("/verify-token", h.verifyToken)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Please provide name, email, and password.")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respond.Error(c, http.StatusBadRequest, "Please provide name, email, and password.")
		return
	}
	if len(req.Password) < minPasswordLen {
		respond.Error(c, http.StatusBadRequest, "Password must be at least 6 characters.")
		return
	}

	user, token, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			respond.Error(c, http.StatusBadRequest, "User with this email already exists.")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Please provide name, email, and password.")
		default:
			respond.Error(c, http.StatusInternalServerError, "Server error during registration.")
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"msg":   "User registered successfully!",
		"token": token,
		"user":  toPublic(user),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Please provide email and password.")
		return
	}
	if req.Email == "" || req.Password == "" {
		respond.Error(c, http.StatusBadRequest, "Please provide email and password.")
		return
	}

	user, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			respond.Error(c, http.StatusUnauthorized, "Invalid credentials.")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Please provide email and password.")
		default:
			respond.Error(c, http.StatusInternalServerError, "Server error during login.")
		}
		return
	}

	respond.OK(c, gin.H{
		"msg":   "Login successful!",
		"token": token,
		"user":  toPublic(user),
	})
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "User not found.")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Server error fetching user info.")
		return
	}

	respond.OK(c, gin.H{"user": toPublicWithCreatedAt(user)})
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

func (h *Handler) verifyToken(c *gin.Context) {
	var req verifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		respond.Error(c, http.StatusBadRequest, "Token required.")
		return
	}

	claims, err := h.Svc.VerifyToken(req.Token)
	if err != nil {
		respond.JSON(c, http.StatusUnauthorized, gin.H{
			"valid": false,
			"msg":   "Invalid or expired token.",
		})
		return
	}

	respond.OK(c, gin.H{
		"valid": true,
		"user": gin.H{
			"id":    claims.UserID,
			"email": claims.Email,
			"name":  claims.Name,
		},
	})
}
