package listing

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
	rg.GET("/listings", h.List)
	rg.POST("/listings", h.Create)
	rg.GET("/listings/:id", h.Get)
	rg.PUT("/listings/:id", h.Update)
	rg.PATCH("/listings/:id", h.Patch)
	rg.DELETE("/listings/:id", h.Delete)
}

// List handles GET /api/v1/listings with filters
func (h *Handler) List(c *gin.Context) {
	var f repository.ListingFilters

	f.Location = c.Query("location")
	f.PropertyType = c.Query("property_type")

	if minPrice := c.Query("min_price"); minPrice != "" {
		if val, err := strconv.ParseFloat(minPrice, 64); err == nil {
			f.MinPrice = val
		}
	}

	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if val, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			f.MaxPrice = val
		}
	}

	if avail := c.Query("is_available"); avail != "" {
		if val, err := strconv.ParseBool(avail); err == nil {
			f.Available = &val
		}
	}

	f.Limit, f.Offset = pagination(c)

	listings, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list listings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"listings":   listings,
		"pagination": paginationMeta(f.Limit, f.Offset, total),
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	l, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Price per night must be greater than 0")
		case ErrHostNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Host with this ID does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create listing")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"listing": l})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to get listing")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": detail})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	l, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleWriteError(c, err, "Failed to update listing")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": l})
}

func (h *Handler) Patch(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	var req PatchListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	l, err := h.service.Patch(c.Request.Context(), id, req)
	if err != nil {
		handleWriteError(c, err, "Failed to update listing")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": l})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete listing")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Listing deleted"})
}

func handleWriteError(c *gin.Context, err error, internalMsg string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing data")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
	case ErrHostNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Host with this ID does not exist")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", internalMsg)
	}
}

func listingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads limit/page query params with the defaults used across
// all list endpoints.
func pagination(c *gin.Context) (limit, offset int) {
	limit = 20
	if v := c.Query("limit"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 && val <= 100 {
			limit = val
		}
	}

	offset = 0
	if v := c.Query("page"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			offset = (val - 1) * limit
		}
	}
	return limit, offset
}

func paginationMeta(limit, offset int, total int64) gin.H {
	totalPages := (int(total) + limit - 1) / limit
	return gin.H{
		"page":        (offset / limit) + 1,
		"limit":       limit,
		"total":       total,
		"total_pages": totalPages,
	}
}
