package handler

import (
	"net/http"

	"github.com/confhall/registration-api/internal/dto"
	"github.com/confhall/registration-api/internal/middleware"
	"github.com/confhall/registration-api/internal/service"
	"github.com/labstack/echo/v4"
)

type TicketHandler struct {
	svc service.TicketService
}

func NewTicketHandler(svc service.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

func (h *TicketHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/tickets", auth)
	g.GET("/types", h.GetTicketTypes)
	g.GET("", h.GetTicket)
	g.POST("", h.CreateTicket)
}

// GetTicketTypes answers 204 on any failure instead of an error body.
func (h *TicketHandler) GetTicketTypes(c echo.Context) error {
	types, err := h.svc.GetTicketTypes(c.Request().Context())
	if err != nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, types)
}

func (h *TicketHandler) GetTicket(c echo.Context) error {
	ticket, err := h.svc.GetTicket(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *TicketHandler) CreateTicket(c echo.Context) error {
	var req dto.CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	userID := middleware.UserID(c)
	ctx := c.Request().Context()

	if _, err := h.svc.CreateTicket(ctx, userID, req.TicketTypeID); err != nil {
		return err
	}

	// The response body is the user's first ticket, re-read after the write.
	ticket, err := h.svc.GetTicket(ctx, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}
