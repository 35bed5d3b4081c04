package handlers

import (
	"errors"
	"net/http"

	contactsRepo "partyplan/database/repository/contacts"
	"partyplan/models"
	"partyplan/services/contact"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler serves the public contact form and the admin inbox.
type ContactHandler struct {
	Contacts contact.ContactService
	Logger   *zap.Logger
}

func NewContactHandler(svc contact.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Contacts: svc, Logger: logger}
}

// SubmitContact stores a contact form submission.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var input models.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sub, err := h.Contacts.Submit(input)
	if err != nil {
		h.Logger.Error("failed to store contact submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "submission": sub})
}

// ListContacts returns every submission for the admin inbox.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	subs, err := h.Contacts.ListAll()
	if err != nil {
		h.Logger.Error("failed to list contact submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

// UpdateContactStatus advances a submission through its lifecycle.
func (h *ContactHandler) UpdateContactStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if err := h.Contacts.UpdateStatus(c.Param("id"), input.Status); err != nil {
		if errors.Is(err, contactsRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
