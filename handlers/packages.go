package handlers

import (
	"errors"
	"net/http"

	packagesRepo "partyplan/database/repository/packages"
	"partyplan/models"
	"partyplan/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PackageHandler serves the public catalog and the admin package CRUD.
type PackageHandler struct {
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

func NewPackageHandler(svc catalog.CatalogService, logger *zap.Logger) *PackageHandler {
	return &PackageHandler{Catalog: svc, Logger: logger}
}

// ListPackages returns the active catalog for browsing.
func (h *PackageHandler) ListPackages(c *gin.Context) {
	pkgs, err := h.Catalog.ListActive()
	if err != nil {
		h.Logger.Error("failed to list packages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": pkgs})
}

// GetPackage returns one package by ID.
func (h *PackageHandler) GetPackage(c *gin.Context) {
	pkg, err := h.Catalog.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, packagesRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		h.Logger.Error("failed to fetch package", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch package"})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// ListAllPackages returns every package, active or not, for the admin panel.
func (h *PackageHandler) ListAllPackages(c *gin.Context) {
	pkgs, err := h.Catalog.ListAll()
	if err != nil {
		h.Logger.Error("failed to list packages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": pkgs})
}

// CreatePackage inserts a new package from admin input.
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var input models.ServicePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	pkg, err := h.Catalog.Create(input)
	if err != nil {
		h.Logger.Error("failed to create package", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// UpdatePackage saves admin edits.
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	var input models.ServicePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	pkg, err := h.Catalog.Update(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, packagesRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		h.Logger.Error("failed to update package", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package"})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// DeletePackage removes a package, or deactivates it when bookings exist.
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	deleted, err := h.Catalog.Remove(c.Param("id"))
	if err != nil {
		if errors.Is(err, packagesRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		h.Logger.Error("failed to remove package", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove package"})
		return
	}
	if deleted {
		c.JSON(http.StatusOK, gin.H{"deleted": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": false, "deactivated": true})
}
