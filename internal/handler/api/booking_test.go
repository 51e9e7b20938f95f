//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"stayhub/internal/domain/booking"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	commandsmock "stayhub/tests/mock/commands"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID = 42

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: a bearer header authenticates as testUserID.
	authed := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", testUserID)
		}
		c.Next()
	}

	group := s.router.Group("/bookings", authed)
	group.POST("", s.handler.Create)
	group.GET("", s.handler.List)
	group.GET("/upcoming", s.handler.Upcoming)
	group.GET("/recent", s.handler.Recent)
	group.GET("/:id", s.handler.Get)
	group.POST("/:id/cancel", s.handler.Cancel)
	group.DELETE("/:id", s.handler.Delete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type bookingListResponse struct {
	Bookings []resdto.BookingResponse `json:"bookings"`
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateDTO()
	created := builder.NewBookingBuilder().BuildDomain()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), testUserID).
			DoAndReturn(func(_ any, input commands.CreateBookingInput, _ int) (*booking.Booking, error) {
				s.Equal(reqBody.HotelID, input.HotelID)
				s.Equal("2025-06-01", input.CheckIn.Format("2006-01-02"))
				s.Equal(reqBody.GuestDetails.Email, input.GuestDetails.Email)
				return &created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ConfirmationNumber, response.ConfirmationNumber)
		s.Equal(3, response.Nights)
	})

	s.Run("error: 401 Unauthorized without user context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		invalid := builder.NewBookingBuilder().BuildCreateDTO()
		invalid.CheckIn = "June 1st"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, invalid, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 Conflict when the room is gone", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), testUserID).
			Return(nil, commands.ErrRoomUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	returned := []booking.Booking{builder.NewBookingBuilder().BuildDomain()}

	s.Run("success: lists all bookings", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), testUserID).Return(returned, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")

		var response bookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 1)
	})

	s.Run("success: narrows by status", func() {
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), testUserID, booking.StatusCancelled).
			Return([]booking.Booking{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=cancelled", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=pending", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})
}

func (s *BookingHandlerTestSuite) TestUpcoming() {
	s.mockQueries.EXPECT().Upcoming(gomock.Any(), testUserID).
		Return([]booking.Booking{builder.NewBookingBuilder().BuildDomain()}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/upcoming", nil, "token")

	var response bookingListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response.Bookings, 1)
}

func (s *BookingHandlerTestSuite) TestRecent() {
	s.mockQueries.EXPECT().Recent(gomock.Any(), testUserID, 2).
		Return([]booking.Booking{}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/recent?limit=2", nil, "token")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BookingHandlerTestSuite) TestGet() {
	b := builder.NewBookingBuilder().BuildDomain()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, testUserID).Return(&b, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("/bookings/%d", b.ID), nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID, response.ID)
	})

	s.Run("error: 403 Forbidden for another user's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, testUserID).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("/bookings/%d", b.ID), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), 99, testUserID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/99", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	cancelled := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) { b.Status = booking.StatusCancelled }).
		BuildDomain()

	s.mockCommands.EXPECT().Cancel(gomock.Any(), cancelled.ID, testUserID).Return(&cancelled, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/bookings/%d/cancel", cancelled.ID), nil, "token")

	var response resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(string(booking.StatusCancelled), response.Status)
}

func (s *BookingHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), 1, testUserID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/1", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), 99, testUserID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/99", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
