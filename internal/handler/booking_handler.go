package handler

import (
	"net/http"
	"strconv"

	"github.com/confhall/registration-api/internal/apperr"
	"github.com/confhall/registration-api/internal/dto"
	"github.com/confhall/registration-api/internal/middleware"
	"github.com/confhall/registration-api/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/booking", auth)
	g.GET("", h.GetBookings)
	g.POST("", h.CreateBooking)
	g.PUT("/:bookingId", h.UpdateBooking)
}

func (h *BookingHandler) GetBookings(c echo.Context) error {
	bookings, err := h.svc.GetBookings(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), middleware.UserID(c), req.RoomID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	// A malformed booking id maps to 403, not 400, on this route.
	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		return apperr.Forbidden("id invalido")
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.UpdateBooking(c.Request().Context(), middleware.UserID(c), req.RoomID, uint(bookingID))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
