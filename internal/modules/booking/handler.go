package booking

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"serenityhaven/internal/domain"
	"serenityhaven/internal/middleware"
	"serenityhaven/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.GET("/bookings/reference/:reference", h.GetByReference)
	rg.PUT("/bookings/:id", h.UpdateBooking)
	rg.POST("/bookings/:id/confirm", h.Confirm)
	rg.POST("/bookings/:id/check-in", h.CheckIn)
	rg.POST("/bookings/:id/check-out", h.CheckOut)
	rg.POST("/bookings/:id/no-show", h.NoShow)
	rg.POST("/bookings/:id/cancel", h.Cancel)
	rg.GET("/bookings/:id/cancellation", h.PreviewCancellation)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/today/check-ins", h.TodaysCheckIns)
	rg.GET("/bookings/today/check-outs", h.TodaysCheckOuts)
	rg.GET("/bookings/current-guests", h.CurrentGuests)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req, middleware.IsAdmin(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) GetByReference(c *gin.Context) {
	ref := c.Param("reference")
	b, err := h.service.GetBookingByReference(c.Request.Context(), ref)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), id, req, middleware.IsAdmin(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Confirm(c *gin.Context) {
	h.lifecycle(c, h.service.ConfirmBooking)
}

func (h *Handler) CheckIn(c *gin.Context) {
	h.lifecycle(c, h.service.CheckIn)
}

func (h *Handler) CheckOut(c *gin.Context) {
	h.lifecycle(c, h.service.CheckOut)
}

func (h *Handler) NoShow(c *gin.Context) {
	h.lifecycle(c, h.service.MarkNoShow)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req CancelBookingRequest
	// Body is optional for cancellations.
	_ = c.ShouldBindJSON(&req)

	b, err := h.service.CancelBooking(c.Request.Context(), id, req.Reason, middleware.IsAdmin(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) PreviewCancellation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	preview, err := h.service.PreviewCancellation(c.Request.Context(), id, middleware.IsAdmin(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancellation": preview})
}

func (h *Handler) List(c *gin.Context) {
	limit, offset := pagination(c)
	ctx := c.Request.Context()

	if v := c.Query("customer_id"); v != "" {
		customerID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
			return
		}
		bs, err := h.service.ListByCustomer(ctx, customerID, limit, offset)
		h.writeList(c, bs, err)
		return
	}

	if v := c.Query("room_id"); v != "" {
		roomID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
			return
		}
		bs, err := h.service.ListByRoom(ctx, roomID, limit, offset)
		h.writeList(c, bs, err)
		return
	}

	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		fromDate, err1 := time.Parse("2006-01-02", from)
		toDate, err2 := time.Parse("2006-01-02", to)
		if err1 != nil || err2 != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be YYYY-MM-DD")
			return
		}
		bs, err := h.service.ListByDateRange(ctx, fromDate, toDate)
		h.writeList(c, bs, err)
		return
	}

	status := c.DefaultQuery("status", string(domain.BookingConfirmed))
	bs, err := h.service.ListByStatus(ctx, domain.BookingStatus(status), limit, offset)
	h.writeList(c, bs, err)
}

func (h *Handler) TodaysCheckIns(c *gin.Context) {
	bs, err := h.service.TodaysCheckIns(c.Request.Context())
	h.writeList(c, bs, err)
}

func (h *Handler) TodaysCheckOuts(c *gin.Context) {
	bs, err := h.service.TodaysCheckOuts(c.Request.Context())
	h.writeList(c, bs, err)
}

func (h *Handler) CurrentGuests(c *gin.Context) {
	bs, err := h.service.CurrentGuests(c.Request.Context())
	h.writeList(c, bs, err)
}

func (h *Handler) lifecycle(c *gin.Context, fn func(ctx context.Context, id int64) (*domain.Booking, error)) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	b, err := fn(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) writeList(c *gin.Context, bookings []domain.Booking, err error) {
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation, ErrInvalidDates:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrCapacityExceeded:
		response.Error(c, http.StatusBadRequest, "CAPACITY_EXCEEDED", err.Error())
	case ErrBookingNotFound, ErrRoomNotFound, ErrCustomerNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case ErrNotAvailable, ErrOverbooking:
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is not available for the selected dates")
	case ErrCustomerBlacklisted:
		response.Error(c, http.StatusForbidden, "CUSTOMER_BLACKLISTED", err.Error())
	case ErrCancellationNotAllowed:
		response.Error(c, http.StatusConflict, "CANCELLATION_NOT_ALLOWED", err.Error())
	case ErrInvalidTransition, ErrCheckInTooEarly:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
