package handler

import (
	"net/http"
	"strconv"

	"github.com/confhall/registration-api/internal/apperr"
	"github.com/confhall/registration-api/internal/middleware"
	"github.com/confhall/registration-api/internal/service"
	"github.com/labstack/echo/v4"
)

type HotelHandler struct {
	svc service.HotelService
}

func NewHotelHandler(svc service.HotelService) *HotelHandler {
	return &HotelHandler{svc: svc}
}

func (h *HotelHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/hotels", auth)
	g.GET("", h.GetHotels)
	g.GET("/:hotelId", h.GetHotelRooms)
}

func (h *HotelHandler) GetHotels(c echo.Context) error {
	hotels, err := h.svc.GetHotels(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotels)
}

func (h *HotelHandler) GetHotelRooms(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		return apperr.BadRequest("id invalido")
	}

	hotel, err := h.svc.GetHotelRooms(c.Request().Context(), middleware.UserID(c), uint(hotelID))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotel)
}
