//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayhub/internal/domain/hotel"
	"stayhub/internal/domain/review"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	queriesmock "stayhub/tests/mock/queries"
	usecasemock "stayhub/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HotelHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockQueries      *queriesmock.MockHotelQueries
	mockAvailability *usecasemock.MockAvailabilityChecker
	handler          *api.HotelHandler
}

func (s *HotelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockHotelQueries(s.mockCtrl)
	s.mockAvailability = usecasemock.NewMockAvailabilityChecker(s.mockCtrl)
	s.handler = api.NewHotelHandler(s.mockQueries, s.mockAvailability)

	s.router.GET("/hotels", s.handler.Search)
	s.router.GET("/hotels/featured", s.handler.Featured)
	s.router.GET("/hotels/search", s.handler.SearchText)
	s.router.GET("/hotels/:id", s.handler.Get)
	s.router.GET("/hotels/:id/availability", s.handler.CheckAvailability)
}

func (s *HotelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHotelHandlerSuite(t *testing.T) {
	suite.Run(t, new(HotelHandlerTestSuite))
}

type hotelListResponse struct {
	Hotels []resdto.HotelResponse `json:"hotels"`
}

func (s *HotelHandlerTestSuite) TestSearch() {
	returned := []hotel.Hotel{builder.NewHotelBuilder().BuildDomain()}

	s.Run("success: returns 200 OK with matched hotels", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(returned, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels?destination=miami&sort_by=price-low", nil, "")

		var response hotelListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Hotels, 1)
		s.Equal("Grand Plaza Hotel", response.Hotels[0].Name)
	})

	s.Run("success: filters are forwarded as criteria", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, criteria hotel.SearchCriteria) ([]hotel.Hotel, error) {
				s.Equal("miami", criteria.Destination)
				s.Require().NotNil(criteria.MaxPrice)
				s.InDelta(200.0, *criteria.MaxPrice, 0.001)
				s.Equal([]int{4, 5}, criteria.StarRatings)
				return []hotel.Hotel{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels?destination=miami&max_price=200&stars=4&stars=5", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed filters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels?stars=9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid search filters")
	})
}

func (s *HotelHandlerTestSuite) TestFeatured() {
	returned := []hotel.Hotel{
		builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) { b.Featured = true }).BuildDomain(),
	}

	s.mockQueries.EXPECT().Featured(gomock.Any()).Return(returned, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/featured", nil, "")

	var response hotelListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Hotels, 1)
	s.True(response.Hotels[0].Featured)
}

func (s *HotelHandlerTestSuite) TestSearchText() {
	s.mockQueries.EXPECT().SearchText(gomock.Any(), "beach").
		Return([]hotel.Hotel{builder.NewHotelBuilder().BuildDomain()}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/search?q=beach", nil, "")

	var response hotelListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response.Hotels, 1)
}

func (s *HotelHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK with review stats", func() {
		detail := &queries.HotelDetail{
			Hotel: builder.NewHotelBuilder().BuildDomain(),
			Stats: &review.Stats{AverageRating: 4.5, TotalReviews: 12, Distribution: map[int]int{5: 8, 4: 4}},
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), 1).Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/1", nil, "")

		var response resdto.HotelDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.ID)
		s.Require().NotNil(response.Stats)
		s.Equal(12, response.Stats.TotalReviews)
	})

	s.Run("success: stats omitted when review data is unavailable", func() {
		detail := &queries.HotelDetail{Hotel: builder.NewHotelBuilder().BuildDomain()}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), 1).Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/1", nil, "")

		var response resdto.HotelDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.Stats)
	})

	s.Run("error: 404 Not Found for unknown hotel", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), 99).Return(nil, queries.ErrHotelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})

	s.Run("error: 400 Bad Request for non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *HotelHandlerTestSuite) TestCheckAvailability() {
	s.Run("success: returns 200 OK with rooms", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), 1, "2025-06-01", "2025-06-04").
			Return(&usecase.AvailabilityResult{
				Available: true,
				HotelID:   1,
				CheckIn:   "2025-06-01",
				CheckOut:  "2025-06-04",
				Rooms: []usecase.Room{
					{ID: "1_deluxe", Type: "Deluxe Room", Capacity: 2, PricePerNight: 180, Available: true},
					{ID: "1_suite", Type: "Executive Suite", Capacity: 4, PricePerNight: 270, Available: true},
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/1/availability?check_in=2025-06-01&check_out=2025-06-04", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.Len(response.Rooms, 2)
	})

	s.Run("error: 400 Bad Request when dates are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/1/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Check-in and check-out dates are required")
	})

	s.Run("error: 404 Not Found for unknown hotel", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), 99, "2025-06-01", "2025-06-04").
			Return(nil, usecase.ErrHotelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/99/availability?check_in=2025-06-01&check_out=2025-06-04", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})
}
