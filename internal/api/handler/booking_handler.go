package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shuvo-art/Sheba-Task/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create handles POST /api/bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	schedule, err := parseScheduleDateTime(req.ScheduleDateTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid date")
	}

	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	booking, err := h.bookings.CreateBooking(c.Request().Context(), ports.CreateBookingInput{
		CustomerName:     req.CustomerName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		ServiceID:        req.ServiceID,
		ScheduleDateTime: schedule,
	}, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, successResponse{Success: true, Data: booking})
}

// Get handles GET /api/bookings/:id — owner-only booking status.
//
// @Summary      Get a booking's status
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Booking id"
// @Success      200 {object}  successResponse
// @Failure      400 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid booking ID")
	}

	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	detail, err := h.bookings.GetBookingStatus(c.Request().Context(), id, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true, Data: detail})
}

// List handles GET /api/bookings — all bookings with projections (admin only).
//
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object}  successResponse
// @Failure      403 {object}  errorResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.bookings.GetAllBookings(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true, Data: bookings})
}

// parseScheduleDateTime accepts RFC 3339 date-times, with or without an
// explicit offset.
func parseScheduleDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
