package handlers

import (
	"errors"
	"net/http"

	domain "technopedia-registration/internal/domain/registration"
	serviceInterfaces "technopedia-registration/internal/interfaces/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// RegistrationHandler handles registration-related HTTP requests
type RegistrationHandler struct {
	registrationService serviceInterfaces.RegistrationService
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService serviceInterfaces.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
	}
}

// respondError maps the service error kinds to HTTP statuses. Every
// kind the workflow can surface is matched here.
func respondError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var duplicateErr *domain.DuplicateError
	var paymentErr *domain.PaymentError
	var databaseErr *domain.DatabaseError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  validationErr.Fields,
		})
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusConflict, APIResponse{
			Success: false,
			Message: duplicateErr.Error(),
		})
	case errors.Is(err, domain.ErrRegistrationClosed):
		c.JSON(http.StatusForbidden, APIResponse{
			Success: false,
			Message: domain.ErrRegistrationClosed.Error(),
		})
	case errors.As(err, &paymentErr):
		c.JSON(http.StatusPaymentRequired, APIResponse{
			Success: false,
			Message: paymentErr.Error(),
		})
	case errors.As(err, &databaseErr):
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: databaseErr.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Something went wrong. Please try again.",
		})
	}
}

// Register handles POST /api/v1/register
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req serviceInterfaces.MainRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request format",
			Errors:  err.Error(),
		})
		return
	}

	registrant, err := h.registrationService.RegisterMain(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: "Registration successful",
		Data:    registrant,
	})
}

// RegisterGame handles POST /api/v1/register/game
func (h *RegistrationHandler) RegisterGame(c *gin.Context) {
	var req serviceInterfaces.GameRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request format",
			Errors:  err.Error(),
		})
		return
	}

	result, err := h.registrationService.RegisterGame(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: "Game registration successful",
		Data:    result,
	})
}

// CheckEmail handles GET /api/v1/register/check-email
func (h *RegistrationHandler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "email query parameter is required",
		})
		return
	}

	exists, err := h.registrationService.CheckEmailExists(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    gin.H{"exists": exists},
	})
}

// CheckPRN handles GET /api/v1/register/check-prn
func (h *RegistrationHandler) CheckPRN(c *gin.Context) {
	prn := c.Query("prn")
	if prn == "" {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "prn query parameter is required",
		})
		return
	}

	exists, err := h.registrationService.CheckPRNExists(c.Request.Context(), prn)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    gin.H{"exists": exists},
	})
}

// ListGames handles GET /api/v1/games
func (h *RegistrationHandler) ListGames(c *gin.Context) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    domain.Games,
	})
}

// GetEntries handles GET /api/v1/registrants/:registrant_id/entries
func (h *RegistrationHandler) GetEntries(c *gin.Context) {
	registrantID, err := uuid.Parse(c.Param("registrant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid registrant ID",
		})
		return
	}

	entries, err := h.registrationService.ListGameEntries(c.Request.Context(), registrantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    entries,
	})
}

// GetStats handles GET /api/v1/stats
func (h *RegistrationHandler) GetStats(c *gin.Context) {
	stats, err := h.registrationService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    stats,
	})
}
