package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	q            queries.HotelQueries
	availability usecase.AvailabilityChecker
}

func NewHotelHandler(q queries.HotelQueries, availability usecase.AvailabilityChecker) *HotelHandler {
	return &HotelHandler{q: q, availability: availability}
}

// @Summary Search hotels
// @Description List hotels matching destination, price, star, amenity and rating filters
// @Tags hotels
// @Produce json
// @Param destination query string false "Destination (city, state or hotel name)"
// @Param min_price query number false "Minimum price per night"
// @Param max_price query number false "Maximum price per night"
// @Param stars query []int false "Star ratings (repeatable)"
// @Param amenities query []string false "Required amenities (repeatable, any match)"
// @Param min_rating query number false "Minimum guest rating"
// @Param sort_by query string false "Sort order: price-low, price-high, rating, name"
// @Success 200 {array} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Router /hotels [get]
func (h *HotelHandler) Search(c *gin.Context) {
	var req reqdto.SearchHotelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search filters", nil)
		return
	}
	hotels, err := h.q.Search(c.Request.Context(), req.ToCriteria())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Search failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": resdto.FromHotels(hotels)})
}

// @Summary Featured hotels
// @Description List the featured hotels shown on the landing page
// @Tags hotels
// @Produce json
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels/featured [get]
func (h *HotelHandler) Featured(c *gin.Context) {
	hotels, err := h.q.Featured(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load featured hotels", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": resdto.FromHotels(hotels)})
}

// @Summary Text search
// @Description Free-text search over hotel names, locations and descriptions
// @Tags hotels
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels/search [get]
func (h *HotelHandler) SearchText(c *gin.Context) {
	hotels, err := h.q.SearchText(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Search failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": resdto.FromHotels(hotels)})
}

// @Summary Get hotel
// @Description Get a hotel by ID with fresh review statistics
// @Tags hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} resdto.HotelDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	detail, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load hotel", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelDetail(detail))
}

// @Summary Check availability
// @Description Check room availability for a hotel over a date range
// @Tags hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id}/availability [get]
func (h *HotelHandler) CheckAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-in and check-out dates are required", nil)
		return
	}
	result, err := h.availability.Check(c.Request.Context(), id, req.CheckIn, req.CheckOut)
	if err != nil {
		if errors.Is(err, usecase.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Availability check failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(result))
}
