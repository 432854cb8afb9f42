package review

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staybook/internal/pkg/response"
	"staybook/internal/pkg/validator"
	"staybook/internal/repository"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.List)
	rg.POST("/reviews", h.Create)
	rg.GET("/reviews/:id", h.Get)
	rg.PUT("/reviews/:id", h.Update)
	rg.PATCH("/reviews/:id", h.Patch)
	rg.DELETE("/reviews/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review data", errs)
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeErr(c, err, "Failed to create review")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

// List handles GET /api/v1/reviews with filters
func (h *Handler) List(c *gin.Context) {
	var f repository.ReviewFilters

	if v := c.Query("listing_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
			return
		}
		f.ListingID = id
	}

	if v := c.Query("reviewer_id"); v != "" {
		if val, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.ReviewerID = val
		}
	}

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

	reviews, total, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"reviews": reviews,
		"pagination": gin.H{
			"page":        (f.Offset / f.Limit) + 1,
			"limit":       f.Limit,
			"total":       total,
			"total_pages": (int(total) + f.Limit - 1) / f.Limit,
		},
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}

	rv, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeErr(c, err, "Failed to get review")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"review": rv})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review data", errs)
		return
	}

	rv, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeErr(c, err, "Failed to update review")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"review": rv})
}

func (h *Handler) Patch(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}

	var req PatchReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review data", errs)
		return
	}

	rv, err := h.svc.Patch(c.Request.Context(), id, req)
	if err != nil {
		h.writeErr(c, err, "Failed to update review")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"review": rv})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.writeErr(c, err, "Failed to delete review")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *Handler) writeErr(c *gin.Context, err error, internalMsg string) {
	switch err {
	case ErrInvalidRequest:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
	case ErrBookingMismatch:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking does not belong to this listing and reviewer")
	case ErrListingNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing with this ID does not exist")
	case ErrReviewerNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reviewer with this ID does not exist")
	case ErrBookingNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking with this ID does not exist")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "You have already reviewed this listing")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", internalMsg)
	}
}

func reviewID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return uuid.Nil, false
	}
	return id, true
}
