package auth

import (
	"errors"
	"log"
	"net/http"

	"saasquatch/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/users/me", h.GetMe)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Username == "" || req.Password == "" {
		response.Error(c, http.StatusBadRequest, "Email, username, and password are required")
		return
	}
	if len(req.Password) < 6 {
		response.Error(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		log.Printf("registration error: %v", err)
		if errors.Is(err, ErrUserExists) {
			// duplicate message is not sensitive, pass it through
			response.Error(c, http.StatusInternalServerError, "User with this email or username already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User created successfully",
		"user": RegisteredUser{
			ID:                     user.ID,
			Email:                  user.Email,
			Username:               user.Username,
			LinkedinURL:            user.LinkedinURL,
			TargetIndustries:       user.TargetIndustries,
			MinEmployees:           user.MinEmployees,
			MaxEmployees:           user.MaxEmployees,
			MinRevenue:             user.MinRevenue,
			MaxRevenue:             user.MaxRevenue,
			BusinessTypePreference: user.BusinessTypePreference,
			RequireContactInfo:     user.RequireContactInfo,
		},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("login error: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": UserPublic{
			ID:          user.ID,
			Email:       user.Email,
			Username:    user.Username,
			LinkedinURL: user.LinkedinURL,
		},
		"token": token,
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
