package handlers

import (
	"net/http"

	"partyplan/middleware"
	"partyplan/models"
	"partyplan/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	Profiles profile.ProfileService
	Logger   *zap.Logger
}

func NewProfileHandler(svc profile.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{Profiles: svc, Logger: logger}
}

// GetProfile returns the caller's profile, creating a blank one on first use.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	p, err := h.Profiles.GetOrCreate(identity)
	if err != nil {
		h.Logger.Error("failed to fetch profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfile saves the caller's name and phone.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	var input models.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p, err := h.Profiles.Update(identity, input)
	if err != nil {
		h.Logger.Error("failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}
