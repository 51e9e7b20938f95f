package api

import (
	"errors"
	"net/http"
	"strconv"

	"stayhub/internal/domain/review"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Post a review for a hotel stay
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput(), userID)
	if err != nil {
		httperr.AbortWithError(c, reviewErrStatus(err), err, "Create review failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReview(*created))
}

// @Summary List hotel reviews
// @Description List reviews for a hotel with optional rating floor, text search and sort
// @Tags reviews
// @Produce json
// @Param id path int true "Hotel ID"
// @Param min_rating query int false "Minimum rating (1-5)"
// @Param search query string false "Text search over title, comment and reviewer"
// @Param sort_by query string false "Sort order: newest, oldest, rating-high, rating-low"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /hotels/{id}/reviews [get]
func (h *ReviewHandler) ListByHotel(c *gin.Context) {
	hotelID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel id", nil)
		return
	}
	filters := queries.ReviewFilters{
		HotelID: hotelID,
		Search:  c.Query("search"),
		SortBy:  review.SortBy(c.Query("sort_by")),
	}
	if v := c.Query("min_rating"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			filters.MinRating = iv
		}
	}
	reviews, err := h.q.List(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": resdto.FromReviews(reviews)})
}

// @Summary Hotel review stats
// @Description Get the aggregated rating statistics for a hotel
// @Tags reviews
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} resdto.ReviewStatsResponse
// @Failure 400 {object} map[string]string
// @Router /hotels/{id}/reviews/stats [get]
func (h *ReviewHandler) HotelStats(c *gin.Context) {
	hotelID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel id", nil)
		return
	}
	stats, err := h.q.HotelStats(c.Request.Context(), hotelID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewStats(stats))
}

// @Summary Get review
// @Description Get a review by ID
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	r, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrReviewNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReview(*r))
}

// @Summary Update review
// @Description Update own review by ID
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), id, req.ToInput(), actorID)
	if err != nil {
		httperr.AbortWithError(c, reviewErrStatus(err), err, "Update failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReview(*updated))
}

// @Summary Delete review
// @Description Delete own review
// @Tags reviews
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, actorID); err != nil {
		httperr.AbortWithError(c, reviewErrStatus(err), err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark review helpful
// @Description Increment the helpful counter of a review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id}/helpful [post]
func (h *ReviewHandler) MarkHelpful(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	updated, err := h.cmds.MarkHelpful(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, reviewErrStatus(err), err, "Failed to mark review helpful", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReview(*updated))
}

func reviewErrStatus(err error) int {
	switch {
	case errors.Is(err, commands.ErrReviewNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrReviewNotOwned):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrDomainValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
