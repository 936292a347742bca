package handler

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/confhall/registration-api/internal/apperr"
	"github.com/confhall/registration-api/internal/dto"
	"github.com/confhall/registration-api/internal/middleware"
	"github.com/confhall/registration-api/internal/service"
	"github.com/labstack/echo/v4"
)

var expirationDatePattern = regexp.MustCompile(`^\d{2}-\d{2}$`)

type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/payments", auth)
	g.GET("", h.GetPayment)
	g.POST("/process", h.ProcessPayment)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	ticketID, err := strconv.ParseUint(c.QueryParam("ticketId"), 10, 64)
	if err != nil {
		return apperr.BadRequest("ticketId invalido")
	}

	payment, err := h.svc.GetPayment(c.Request().Context(), middleware.UserID(c), uint(ticketID))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validatePaymentRequest(req); err != nil {
		return err
	}

	payment, err := h.svc.ProcessPayment(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// validatePaymentRequest enforces the card schema before the service runs.
func validatePaymentRequest(req dto.PaymentRequest) error {
	card := req.CardData
	switch {
	case req.TicketID == 0:
		return echo.NewHTTPError(http.StatusBadRequest, "ticketId is required")
	case card.Issuer != "VISA" && card.Issuer != "MASTERCARD":
		return echo.NewHTTPError(http.StatusBadRequest, "card issuer must be VISA or MASTERCARD")
	case card.Number < 1000:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid card number")
	case card.Name == "":
		return echo.NewHTTPError(http.StatusBadRequest, "card name is required")
	case !expirationDatePattern.MatchString(card.ExpirationDate):
		return echo.NewHTTPError(http.StatusBadRequest, "expiration date must be MM-DD")
	case card.CVV < 1 || card.CVV > 999:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cvv")
	}
	return nil
}
