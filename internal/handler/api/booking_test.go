//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/httptest"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	identity := middleware.RequireIdentity()
	s.router.POST("/bookings", identity, s.handler.CreateBooking)
	s.router.GET("/bookings", identity, s.handler.ListBookings)
	s.router.GET("/bookings/owner", identity, s.handler.ListOwnerBookings)
	s.router.GET("/bookings/:id", identity, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id", identity, s.handler.ResolveBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func bookingView(id uuid.UUID, status string) *queries.BookingView {
	start := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:     id,
		Start:  start,
		End:    start.Add(48 * time.Hour),
		Status: status,
		Item:   queries.ItemRef{ID: uuid.New(), Name: "drill"},
		Booker: queries.UserRef{ID: uuid.New(), Name: "maxim"},
	}
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	start := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	reqBody := reqdto.CreateBookingRequest{
		ItemID: uuid.New(),
		Start:  start,
		End:    start.Add(24 * time.Hour),
	}

	s.Run("success: returns 201 Created with the booking view", func() {
		returnView := bookingView(uuid.New(), "WAITING")
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput(), s.userID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.userID.String())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("WAITING", response.Status)
		s.Equal(returnView.Item.Name, response.Item.Name)
	})

	s.Run("error: 400 Bad Request when identity header is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Sharer-User-Id header required")
	})

	s.Run("error: 400 Bad Request when identity header is not a UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid X-Sharer-User-Id header")
	})

	s.Run("error: 400 Bad Request for a body missing required fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"start": start}, s.userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown booker",
				commandsError:  shared.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "unknown item",
				commandsError:  shared.ErrItemNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "item not available",
				commandsError:  shared.ErrItemNotAvailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Item is not available",
			},
			{
				name:           "invalid period",
				commandsError:  shared.ErrValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking period",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.userID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestResolveBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestResolveBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: approves a booking", func() {
		s.mockCommands.EXPECT().Resolve(gomock.Any(), bookingID, s.userID, true).
			Return(bookingView(bookingID, "APPROVED"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, s.userID.String())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("APPROVED", response.Status)
	})

	s.Run("success: rejects a booking", func() {
		s.mockCommands.EXPECT().Resolve(gomock.Any(), bookingID, s.userID, false).
			Return(bookingView(bookingID, "REJECTED"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=false", nil, s.userID.String())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("REJECTED", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid booking UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/invalid-uuid?approved=true", nil, s.userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 400 Bad Request when approved is missing or malformed", func() {
		for _, query := range []string{"", "?approved=banana"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+query, nil, s.userID.String())
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Query parameter 'approved' must be true or false")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  shared.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "not the item owner",
				commandsError:  shared.ErrNotOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "already approved",
				commandsError:  booking.ErrAlreadyApproved,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Booking is already approved",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Resolve(gomock.Any(), bookingID, s.userID, true).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, s.userID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, s.userID).
			Return(bookingView(bookingID, "APPROVED"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.userID.String())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, s.userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 Not Found when the caller is not a participant", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, s.userID).
			Return(nil, shared.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: defaults to state ALL with from=0 size=20", func() {
		items := []*queries.BookingView{bookingView(uuid.New(), "WAITING"), bookingView(uuid.New(), "APPROVED")}
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), s.userID, "ALL", 0, 20).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, s.userID.String())

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: passes state and paging through verbatim", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), s.userID, "current", 7, 5).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=current&from=7&size=5", nil, s.userID.String())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: owner endpoint uses the owner listing", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.userID, "ALL", 0, 20).
			Return([]*queries.BookingView{bookingView(uuid.New(), "WAITING")}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner", nil, s.userID.String())

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 Bad Request with the offending state literal in the body", func() {
		stateErr := errs.Mark(errs.New("Unknown state: BOGUS"), shared.ErrUnknownState)
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), s.userID, "BOGUS", 0, 20).
			Return(nil, stateErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=BOGUS", nil, s.userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown state: BOGUS")
	})

	s.Run("error: 400 Bad Request for non-numeric paging", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=abc", nil, s.userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid paging parameters")
	})

	s.Run("error: 400 Bad Request for negative paging", func() {
		pageErr := errs.Mark(errs.New("page offset must not be less than zero: -1"), shared.ErrInvalidPage)
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), s.userID, "ALL", -1, 20).
			Return(nil, pageErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=-1", nil, s.userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "page offset must not be less than zero")
	})

	s.Run("error: 404 Not Found for an unknown caller", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), s.userID, "ALL", 0, 20).
			Return(nil, shared.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, s.userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
