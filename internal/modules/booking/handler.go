package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staybook/internal/pkg/response"
	"staybook/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/:id", h.Get)
	rg.PUT("/bookings/:id", h.Update)
	rg.PATCH("/bookings/:id", h.Patch)
	rg.DELETE("/bookings/:id", h.Delete)
}

// List handles GET /api/v1/bookings with filters
func (h *Handler) List(c *gin.Context) {
	var f repository.BookingFilters

	if v := c.Query("listing_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
			return
		}
		f.ListingID = id
	}

	if v := c.Query("guest_id"); v != "" {
		if val, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.GuestID = val
		}
	}

	f.Status = c.Query("status")

	f.Limit = 20
	if v := c.Query("limit"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 && val <= 100 {
			f.Limit = val
		}
	}
	if v := c.Query("page"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			f.Offset = (val - 1) * f.Limit
		}
	}

	items, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": items,
		"pagination": gin.H{
			"page":        (f.Offset / f.Limit) + 1,
			"limit":       f.Limit,
			"total":       total,
			"total_pages": (int(total) + f.Limit - 1) / f.Limit,
		},
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeErr(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeErr(c, err, "Failed to get booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeErr(c, err, "Failed to update booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) Patch(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req PatchBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	b, err := h.service.Patch(c.Request.Context(), id, req)
	if err != nil {
		h.writeErr(c, err, "Failed to update booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeErr(c, err, "Failed to delete booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Booking deleted"})
}

func (h *Handler) writeErr(c *gin.Context, err error, internalMsg string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Check-out date must be after check-in date")
	case ErrBadDate:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date format, expected YYYY-MM-DD")
	case ErrInvalidGuests:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Number of guests must be at least 1")
	case ErrInvalidStatus:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking status")
	case ErrCapacityExceeded:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Number of guests exceeds maximum capacity")
	case ErrNotAvailable:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "This listing is not available for booking")
	case ErrListingNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing with this ID does not exist")
	case ErrGuestNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guest with this ID does not exist")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", internalMsg)
	}
}

func bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return uuid.Nil, false
	}
	return id, true
}
