package rooms

import (
	"net/http"
	"strconv"
	"time"

	"serenityhaven/internal/domain"
	"serenityhaven/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes read-only room endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.List)
	rg.GET("/rooms/:id", h.Get)
	rg.GET("/rooms/availability", h.ListAvailable)
	rg.GET("/rooms/:id/quote", h.Quote)
}

// RegisterAdminRoutes exposes room management endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/rooms", h.Create)
	rg.PUT("/rooms/:id", h.Update)
	rg.PATCH("/rooms/:id/availability", h.SetAvailability)
	rg.DELETE("/rooms/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	room, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if t := c.Query("type"); t != "" {
		out, err := h.service.ListByType(ctx, domain.RoomType(t))
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"rooms": out, "count": len(out)})
		return
	}

	out, err := h.service.ListRooms(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": out, "count": len(out)})
}

func (h *Handler) ListAvailable(c *gin.Context) {
	checkIn, checkOut, ok := dateRange(c)
	if !ok {
		return
	}

	out, err := h.service.ListAvailable(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": out, "count": len(out)})
}

func (h *Handler) Quote(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	checkIn, checkOut, ok := dateRange(c)
	if !ok {
		return
	}

	total, err := h.service.CalculatePrice(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		h.writeError(c, err)
		return
	}

	room, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	nights := int(domain.Midnight(checkOut).Sub(domain.Midnight(checkIn)).Hours() / 24)
	response.Success(c, http.StatusOK, gin.H{"quote": PriceQuote{
		RoomID:     id,
		Nights:     nights,
		PerNight:   room.CurrentPrice(),
		TotalPrice: total,
	}})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) SetAvailability(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailable == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "is_available is required")
		return
	}

	room, err := h.service.SetAvailability(c.Request.Context(), id, *req.IsAvailable)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation, ErrInvalidDates:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrRoomNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case ErrDuplicateNumber:
		response.Error(c, http.StatusConflict, "DUPLICATE_ROOM_NUMBER", err.Error())
	case ErrCapacityExceeded:
		response.Error(c, http.StatusBadRequest, "CAPACITY_EXCEEDED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return 0, false
	}
	return id, true
}

func dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	checkIn, err1 := time.Parse("2006-01-02", c.Query("check_in"))
	checkOut, err2 := time.Parse("2006-01-02", c.Query("check_out"))
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in and check_out must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}
