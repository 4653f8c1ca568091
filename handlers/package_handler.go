package handlers

import (
	"net/http"

	"github.com/NomadCrew/tourist-travel-backend/types"
	"github.com/gin-gonic/gin"
)

// PackageHandler serves the read-only package catalog.
type PackageHandler struct {
	catalog PackageCatalogInterface
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(catalog PackageCatalogInterface) *PackageHandler {
	return &PackageHandler{catalog: catalog}
}

// ListPackagesHandler returns the whole catalog in its fixed order.
func (h *PackageHandler) ListPackagesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, types.Envelope{Success: true, Data: h.catalog.ListPackages()})
}

// GetPackageHandler returns one package by its numeric id.
func (h *PackageHandler) GetPackageHandler(c *gin.Context) {
	pkg, err := h.catalog.GetPackage(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.Envelope{Success: true, Data: pkg})
}
