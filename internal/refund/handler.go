package refund

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hdcode14/otpbs-exploreease/internal/auth"
	"github.com/hdcode14/otpbs-exploreease/internal/booking"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Description  Cancels the booking. Paid bookings raise a refund request for the tiered amount: 80% at 7+ days out, 50% at 3-6 days, 0% under 3 days.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path      int            true   "Booking ID"
// @Param        request    body      CancelRequest  false  "Cancellation reason"
// @Success      200        {object}  CancelResult
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	// Body is optional; a missing reason is fine.
	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.service.CancelBooking(c.Request.Context(), userID, bookingID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, booking.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		case errors.Is(err, ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking already cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListRequests godoc
// @Summary      List refund requests
// @Description  All refund requests joined with customer and booking. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   AdminView
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/refunds [get]
func (h *Handler) ListRequests(c *gin.Context) {
	views, err := h.service.ListRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch refund requests"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// ProcessRequest godoc
// @Summary      Approve or reject a refund
// @Description  Approving marks the booking refunded; both outcomes stamp the processing time. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        requestID  path      int     true  "Refund request ID"
// @Param        action     query     string  true  "approve or reject"
// @Success      200        {object}  Request
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /admin/refunds/{requestID} [post]
func (h *Handler) ProcessRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("requestID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	req, err := h.service.ProcessRefund(c.Request.Context(), requestID, c.Query("action"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAction):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Action must be approve or reject"})
		case errors.Is(err, ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Refund request not found"})
		case errors.Is(err, ErrAlreadyProcessed):
			c.JSON(http.StatusConflict, gin.H{"error": "Refund request already processed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process refund"})
		}
		return
	}

	c.JSON(http.StatusOK, req)
}
