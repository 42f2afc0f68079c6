package emailsummary

import (
	"errors"
	"log"
	"net/http"

	"saasquatch/internal/domain"
	"saasquatch/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/email-summary", h.SendSummary)
}

type sendSummaryRequest struct {
	Email string        `json:"email"`
	Leads []domain.Lead `json:"leads"`
}

func (h *Handler) SendSummary(c *gin.Context) {
	var req sendSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendFailure(c, http.StatusBadRequest, "Email and leads are required")
		return
	}

	if req.Email == "" || len(req.Leads) == 0 {
		response.SendFailure(c, http.StatusBadRequest, "Email and leads are required")
		return
	}

	messageID, err := h.service.SendSummary(c.Request.Context(), req.Email, req.Leads)
	if err != nil {
		// provider detail stays in the log, the caller gets a generic message
		log.Printf("email summary failed: %v", err)
		if errors.Is(err, ErrNotConfigured) {
			response.SendFailure(c, http.StatusInternalServerError, "Email service not configured")
			return
		}
		response.SendFailure(c, http.StatusInternalServerError, "Failed to send email")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Email sent successfully",
		"messageId": messageID,
	})
}
