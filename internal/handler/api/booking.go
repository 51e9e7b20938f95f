package api

import (
	"errors"
	"net/http"
	"strconv"

	"stayhub/internal/domain/booking"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a room; a transient conflict returns 409 and may be retried
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dates", nil)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), input, userID)
	if err != nil {
		if errors.Is(err, commands.ErrRoomUnavailable) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Room is no longer available for the selected dates", nil)
			return
		}
		httperr.AbortWithError(c, bookingErrStatus(err), err, "Create booking failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(*created))
}

// @Summary List bookings
// @Description List the caller's bookings, optionally narrowed by status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter: confirmed, completed, cancelled"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var (
		bookings []booking.Booking
		err      error
	)
	if v := c.Query("status"); v != "" {
		status, parseErr := booking.ParseStatus(v)
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid status", nil)
			return
		}
		bookings, err = h.q.ListByStatus(c.Request.Context(), userID, status)
	} else {
		bookings, err = h.q.ListByUser(c.Request.Context(), userID)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": resdto.FromBookings(bookings)})
}

// @Summary Upcoming bookings
// @Description List the caller's bookings that are not cancelled and check in today or later
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/upcoming [get]
func (h *BookingHandler) Upcoming(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	bookings, err := h.q.Upcoming(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": resdto.FromBookings(bookings)})
}

// @Summary Recent bookings
// @Description List the caller's most recently created bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 5)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/recent [get]
func (h *BookingHandler) Recent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	limit := 0
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}
	bookings, err := h.q.Recent(c.Request.Context(), userID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": resdto.FromBookings(bookings)})
}

// @Summary Get booking
// @Description Get one of the caller's bookings by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
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
	b, err := h.q.GetByID(c.Request.Context(), id, actorID)
	if err != nil {
		httperr.AbortWithError(c, bookingQueryErrStatus(err), err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(*b))
}

// @Summary Cancel booking
// @Description Cancel one of the caller's bookings; cancelling twice is a no-op
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
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
	cancelled, err := h.cmds.Cancel(c.Request.Context(), id, actorID)
	if err != nil {
		httperr.AbortWithError(c, bookingErrStatus(err), err, "Cancel failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(*cancelled))
}

// @Summary Delete booking
// @Description Remove one of the caller's bookings from history
// @Tags bookings
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
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
		httperr.AbortWithError(c, bookingErrStatus(err), err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func bookingErrStatus(err error) int {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrBookingAccess):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrDomainValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func bookingQueryErrStatus(err error) int {
	switch {
	case errors.Is(err, queries.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, queries.ErrBookingAccess):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
