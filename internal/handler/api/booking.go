package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book an item for a period; the booking starts in WAITING status
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id not set in context"), "Internal server error")
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), req.ToInput(), userID)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, shared.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		case errors.Is(err, shared.ErrItemNotAvailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available")
		case errors.Is(err, shared.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking period")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Resolve booking
// @Description Approve or reject a waiting booking; only the item owner may decide
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Item owner ID"
// @Param id path string true "Booking ID"
// @Param approved query bool true "Approval decision"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) ResolveBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id not set in context"), "Internal server error")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter 'approved' must be true or false")
		return
	}

	view, err := h.bookingCommands.Resolve(c.Request.Context(), bookingID, userID, approved)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, shared.ErrNotOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied")
		case errors.Is(err, booking.ErrAlreadyApproved):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking is already approved")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get booking by ID; visible only to the booker or the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id not set in context"), "Internal server error")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, shared.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings as booker
// @Description List the caller's bookings filtered by state category
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Booker ID"
// @Param state query string false "ALL | WAITING | REJECTED | CURRENT | PAST | FUTURE" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	h.list(c, h.bookingQueries.ListByBooker)
}

// @Summary List bookings as owner
// @Description List bookings of the caller's items filtered by state category
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Owner ID"
// @Param state query string false "ALL | WAITING | REJECTED | CURRENT | PAST | FUTURE" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/owner [get]
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	h.list(c, h.bookingQueries.ListByOwner)
}

func (h *BookingHandler) list(
	c *gin.Context,
	find func(ctx context.Context, userID uuid.UUID, state string, from, size int) ([]*queries.BookingView, error),
) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id not set in context"), "Internal server error")
		return
	}

	from, size, err := parsePaging(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters")
		return
	}

	state := c.DefaultQuery("state", "ALL")

	views, err := find(c.Request.Context(), userID, state, from, size)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, shared.ErrUnknownState):
			// The offending literal must survive to the client.
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		case errors.Is(err, shared.ErrInvalidPage):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
