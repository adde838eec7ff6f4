package document

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hdcode14/otpbs-exploreease/internal/auth"
	"github.com/hdcode14/otpbs-exploreease/internal/booking"
)

type Handler struct {
	bookings booking.Service
}

func NewHandler(bookings booking.Service) *Handler {
	return &Handler{bookings: bookings}
}

// Invoice godoc
// @Summary      Download invoice PDF
// @Description  Available once the booking is paid. Owner or admin only.
// @Tags         documents
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        bookingID  path  int  true  "Booking ID"
// @Success      200  {file}    file
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/invoice [get]
func (h *Handler) Invoice(c *gin.Context) {
	d, ok := h.fetchDetail(c)
	if !ok {
		return
	}

	if d.PaymentStatus != booking.PaymentStatusPaid && d.PaymentStatus != booking.PaymentStatusRefunded {
		c.JSON(http.StatusConflict, gin.H{"error": "Invoice is available after payment"})
		return
	}

	data, err := Invoice(d)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
		return
	}

	sendPDF(c, fmt.Sprintf("invoice-%s.pdf", invoiceNumber(d.ID)), data)
}

// ETicket godoc
// @Summary      Download e-ticket PDF
// @Description  Available once the booking is confirmed. Owner or admin only.
// @Tags         documents
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        bookingID  path  int  true  "Booking ID"
// @Success      200  {file}    file
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/eticket [get]
func (h *Handler) ETicket(c *gin.Context) {
	d, ok := h.fetchDetail(c)
	if !ok {
		return
	}

	if d.Status != booking.StatusConfirmed {
		c.JSON(http.StatusConflict, gin.H{"error": "E-ticket is available after confirmation"})
		return
	}

	data, err := ETicket(d)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate e-ticket"})
		return
	}

	sendPDF(c, fmt.Sprintf("eticket-%s.pdf", bookingReference(d.ID)), data)
}

// Report godoc
// @Summary      Download business report PDF
// @Description  Counts, confirmed revenue, and recent bookings. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/report [get]
func (h *Handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.bookings.DashboardStats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	recent, err := h.bookings.RecentBookings(ctx, 15)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	data, err := Report(stats, recent, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	sendPDF(c, "business-report.pdf", data)
}

func (h *Handler) fetchDetail(c *gin.Context) (*booking.Detail, bool) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return nil, false
	}

	d, err := h.bookings.GetForUser(c.Request.Context(), userID, bookingID, auth.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, booking.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		}
		return nil, false
	}

	return d, true
}

func sendPDF(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
