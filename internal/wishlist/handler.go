package wishlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hdcode14/otpbs-exploreease/internal/auth"
	"github.com/hdcode14/otpbs-exploreease/internal/catalog"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary      List wishlist
// @Description  Returns the active packages the current user has wishlisted, newest first.
// @Tags         wishlist
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   catalog.Package
// @Failure      401  {object}  api.ErrorResponse
// @Router       /wishlist [get]
func (h *Handler) List(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	packages, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
		return
	}

	c.JSON(http.StatusOK, packages)
}

// IDs godoc
// @Summary      List wishlisted package IDs
// @Description  Returns only the package ids in the current user's wishlist, for marking saved packages on listing pages.
// @Tags         wishlist
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   int
// @Failure      401  {object}  api.ErrorResponse
// @Router       /wishlist/ids [get]
func (h *Handler) IDs(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ids, err := h.service.IDs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
		return
	}

	c.JSON(http.StatusOK, ids)
}

// Check godoc
// @Summary      Check wishlist membership
// @Tags         wishlist
// @Security     BearerAuth
// @Produce      json
// @Param        packageID  path      int  true  "Package ID"
// @Success      200        {object}  map[string]bool
// @Failure      400        {object}  api.ErrorResponse
// @Router       /wishlist/{packageID} [get]
func (h *Handler) Check(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	packageID, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	saved, err := h.service.Contains(c.Request.Context(), userID, packageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"in_wishlist": saved})
}

// Add godoc
// @Summary      Add package to wishlist
// @Description  Adding an already wishlisted package is a no-op.
// @Tags         wishlist
// @Security     BearerAuth
// @Produce      json
// @Param        packageID  path      int  true  "Package ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /wishlist/{packageID} [post]
func (h *Handler) Add(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	packageID, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	added, err := h.service.Add(c.Request.Context(), userID, packageID)
	if err != nil {
		if errors.Is(err, catalog.ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
		return
	}

	if added {
		c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Already in wishlist"})
}

// Remove godoc
// @Summary      Remove package from wishlist
// @Tags         wishlist
// @Security     BearerAuth
// @Produce      json
// @Param        packageID  path      int  true  "Package ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /wishlist/{packageID} [delete]
func (h *Handler) Remove(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	packageID, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, packageID); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not in wishlist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
}
