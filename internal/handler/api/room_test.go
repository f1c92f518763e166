//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/handler/api"
	"hotel-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockRoomQueries struct {
	mock.Mock
}

func (m *MockRoomQueries) FindAvailable(ctx context.Context, period booking.StayPeriod) ([]*queries.RoomView, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.RoomView), args.Error(1)
}

type RoomHandlerSuite struct {
	suite.Suite
	engine      *gin.Engine
	mockQueries *MockRoomQueries
}

func (s *RoomHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockQueries = new(MockRoomQueries)

	handler := api.NewRoomHandler(s.mockQueries)

	s.engine = gin.New()
	s.engine.GET("/api/rooms/available", handler.SearchAvailableRooms)
}

func (s *RoomHandlerSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *RoomHandlerSuite) TestSearchAvailableRooms() {
	rooms := []*queries.RoomView{
		{ID: 1, Number: 201, Floor: 2, Smoking: false, RoomType: "Simple", NightlyRate: 80, HotelCity: "Paris"},
		{ID: 3, Number: 305, Floor: 3, Smoking: false, RoomType: "Simple", NightlyRate: 80, HotelCity: "Lyon"},
	}
	s.mockQueries.On("FindAvailable", mock.Anything, mock.Anything).Return(rooms, nil)

	w := s.get("/api/rooms/available?arrival=2025-06-20&departure=2025-06-25")

	s.Equal(http.StatusOK, w.Code)

	var body []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Require().Len(body, 2)
	s.Equal("Simple", body[0]["room_type"])
	s.Equal(float64(80), body[0]["nightly_rate"])
}

func (s *RoomHandlerSuite) TestSearchRejectsBadInput() {
	cases := []struct {
		name string
		path string
	}{
		{name: "missing departure", path: "/api/rooms/available?arrival=2025-06-20"},
		{name: "missing arrival", path: "/api/rooms/available?departure=2025-06-25"},
		{name: "malformed date", path: "/api/rooms/available?arrival=20-06-2025&departure=2025-06-25"},
		{name: "inverted range", path: "/api/rooms/available?arrival=2025-06-25&departure=2025-06-20"},
		{name: "same day", path: "/api/rooms/available?arrival=2025-06-20&departure=2025-06-20"},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			s.SetupTest()
			w := s.get(c.path)
			s.Equal(http.StatusBadRequest, w.Code)
			s.mockQueries.AssertNotCalled(s.T(), "FindAvailable", mock.Anything, mock.Anything)
		})
	}
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerSuite))
}
