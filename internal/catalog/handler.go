package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListPackages godoc
// @Summary      Browse travel packages
// @Description  Lists active packages, optionally filtered by region, category, search text and sort order.
// @Tags         packages
// @Produce      json
// @Param        region    query     string  false  "Region filter"
// @Param        category  query     string  false  "Category filter"
// @Param        search    query     string  false  "Name or destination search"
// @Param        sort      query     string  false  "Sort order"  Enums(name, price_low, price_high, rating)
// @Success      200       {array}   Package
// @Failure      500       {object}  api.ErrorResponse
// @Router       /packages [get]
func (h *Handler) ListPackages(c *gin.Context) {
	filter := ListFilter{
		Region:   c.Query("region"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}

	packages, err := h.service.Browse(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"})
		return
	}

	c.JSON(http.StatusOK, packages)
}

// FeaturedPackages godoc
// @Summary      Featured packages
// @Description  Returns the top-rated active packages for the landing page.
// @Tags         packages
// @Produce      json
// @Success      200  {array}   Package
// @Failure      500  {object}  api.ErrorResponse
// @Router       /packages/featured [get]
func (h *Handler) FeaturedPackages(c *gin.Context) {
	packages, err := h.service.Featured(c.Request.Context(), 6)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"})
		return
	}

	c.JSON(http.StatusOK, packages)
}

// ComparePackages godoc
// @Summary      Compare packages
// @Description  Returns the active packages named by a comma-separated id list for side-by-side comparison. Unknown ids are skipped.
// @Tags         packages
// @Produce      json
// @Param        ids  query     string  true  "Comma-separated package IDs"
// @Success      200  {array}   Package
// @Failure      400  {object}  api.ErrorResponse
// @Router       /packages/compare [get]
func (h *Handler) ComparePackages(c *gin.Context) {
	var ids []int
	for _, raw := range strings.Split(c.Query("ids"), ",") {
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No package IDs to compare"})
		return
	}

	packages, err := h.service.Compare(c.Request.Context(), ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"})
		return
	}

	c.JSON(http.StatusOK, packages)
}

// GetPackage godoc
// @Summary      Get package details
// @Tags         packages
// @Produce      json
// @Param        packageID  path      int  true  "Package ID"
// @Success      200        {object}  Package
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /packages/{packageID} [get]
func (h *Handler) GetPackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	pkg, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch package"})
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// AdminListPackages godoc
// @Summary      List all packages
// @Description  Returns every package including inactive ones. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Package
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/packages [get]
func (h *Handler) AdminListPackages(c *gin.Context) {
	packages, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"})
		return
	}

	c.JSON(http.StatusOK, packages)
}

// CreatePackage godoc
// @Summary      Create package
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpsertRequest  true  "Package data"
// @Success      201      {object}  Package
// @Failure      400      {object}  api.ErrorResponse
// @Router       /admin/packages [post]
func (h *Handler) CreatePackage(c *gin.Context) {
	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// UpdatePackage godoc
// @Summary      Update package
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        packageID  path      int            true  "Package ID"
// @Param        request    body      UpsertRequest  true  "Package data"
// @Success      200        {object}  Package
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /admin/packages/{packageID} [put]
func (h *Handler) UpdatePackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package"})
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// DeletePackage godoc
// @Summary      Delete package
// @Description  Hard-deletes the package, or deactivates it when bookings reference it.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        packageID  path      int  true  "Package ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /admin/packages/{packageID} [delete]
func (h *Handler) DeletePackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	deleted, err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete package"})
		return
	}

	if deleted {
		c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deactivated because bookings reference it"})
}

// TogglePackage godoc
// @Summary      Toggle package visibility
// @Description  Flips the package between active and inactive and returns its new state. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        packageID  path      int  true  "Package ID"
// @Success      200        {object}  Package
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /admin/packages/{packageID}/toggle [post]
func (h *Handler) TogglePackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	pkg, err := h.service.ToggleActive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle package"})
		return
	}

	c.JSON(http.StatusOK, pkg)
}
