//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/handler/api"
	reqdto "hotel-desk/internal/handler/dto/request"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"
	"hotel-desk/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockReservationQueries struct {
	mock.Mock
}

func (m *MockReservationQueries) List(ctx context.Context) ([]*queries.ReservationView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.ReservationView), args.Error(1)
}

func (m *MockReservationQueries) GetByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.ReservationView), args.Error(1)
}

type MockReservationCommands struct {
	mock.Mock
}

func (m *MockReservationCommands) Create(ctx context.Context, req reqdto.CreateReservationRequest) (*commands.CreateReservationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.CreateReservationResult), args.Error(1)
}

type ReservationHandlerSuite struct {
	suite.Suite
	engine       *gin.Engine
	mockQueries  *MockReservationQueries
	mockCommands *MockReservationCommands
}

func (s *ReservationHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockQueries = new(MockReservationQueries)
	s.mockCommands = new(MockReservationCommands)

	handler := api.NewReservationHandler(s.mockQueries, s.mockCommands)

	s.engine = gin.New()
	s.engine.GET("/api/reservations", handler.ListReservations)
	s.engine.GET("/api/reservations/:id", handler.GetReservation)
	s.engine.POST("/api/reservations", handler.CreateReservation)
}

func (s *ReservationHandlerSuite) TestListReservations() {
	view := builder.NewReservationBuilder().BuildViewQuery(1)
	s.mockQueries.On("List", mock.Anything).Return([]*queries.ReservationView{view}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	s.engine.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var body []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Require().Len(body, 1)
	s.Equal("Jean Dupont", body[0]["client_name"])
	s.Equal("Paris", body[0]["hotel_city"])
	s.Equal("2025-06-20", body[0]["arrival"])
	s.Equal("2025-06-25", body[0]["departure"])
}

func (s *ReservationHandlerSuite) TestGetReservationNotFound() {
	s.mockQueries.On("GetByID", mock.Anything, int64(404)).Return(nil, queries.ErrReservationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/404", nil)
	s.engine.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ReservationHandlerSuite) TestGetReservationBadID() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/abc", nil)
	s.engine.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockQueries.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *ReservationHandlerSuite) TestCreateReservationSuccess() {
	dto := builder.NewReservationBuilder().BuildCreateRequestDTO()
	s.mockCommands.On("Create", mock.Anything, dto).
		Return(&commands.CreateReservationResult{ReservationID: 11}, nil)

	w := s.postJSON("/api/reservations", dto)

	s.Equal(http.StatusCreated, w.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(float64(11), body["id"])
}

func (s *ReservationHandlerSuite) TestCreateReservationStatusMapping() {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "room unavailable", err: commands.ErrRoomUnavailable, wantStatus: http.StatusConflict},
		{name: "client not found", err: commands.ErrClientNotFound, wantStatus: http.StatusNotFound},
		{name: "room not found", err: commands.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "domain validation", err: commands.ErrDomainValidation, wantStatus: http.StatusBadRequest},
		{name: "database failure", err: commands.ErrDatabaseOperationFailed, wantStatus: http.StatusInternalServerError},
		// the command layer marks these sentinels onto the underlying cause;
		// the mapping must still recognize them
		{
			name:       "validation failure carrying its cause",
			err:        errs.Mark(booking.ErrInvalidStayPeriod, commands.ErrDomainValidation),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "database failure carrying its cause",
			err:        errs.Mark(errs.New("connection reset"), commands.ErrDatabaseOperationFailed),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			s.SetupTest()
			dto := builder.NewReservationBuilder().BuildCreateRequestDTO()
			s.mockCommands.On("Create", mock.Anything, dto).Return(nil, c.err)

			w := s.postJSON("/api/reservations", dto)
			s.Equal(c.wantStatus, w.Code)
		})
	}
}

func (s *ReservationHandlerSuite) TestCreateReservationRejectsMissingFields() {
	w := s.postJSON("/api/reservations", map[string]any{"client_id": 1})

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockCommands.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ReservationHandlerSuite) postJSON(path string, payload any) *httptest.ResponseRecorder {
	b, err := json.Marshal(payload)
	s.Require().NoError(err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	s.engine.ServeHTTP(w, req)
	return w
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerSuite))
}
