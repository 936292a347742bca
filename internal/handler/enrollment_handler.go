package handler

import (
	"net/http"

	"github.com/confhall/registration-api/internal/dto"
	"github.com/confhall/registration-api/internal/middleware"
	"github.com/confhall/registration-api/internal/service"
	"github.com/labstack/echo/v4"
)

type EnrollmentHandler struct {
	svc service.EnrollmentService
}

func NewEnrollmentHandler(svc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

func (h *EnrollmentHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/enrollments", auth)
	g.GET("", h.GetEnrollment)
	g.POST("", h.UpsertEnrollment)
}

func (h *EnrollmentHandler) GetEnrollment(c echo.Context) error {
	enrollment, err := h.svc.GetEnrollment(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollment)
}

func (h *EnrollmentHandler) UpsertEnrollment(c echo.Context) error {
	var req dto.EnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.CPF == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and cpf are required")
	}

	enrollment, err := h.svc.UpsertEnrollment(
		c.Request().Context(), middleware.UserID(c),
		req.Name, req.CPF, req.Phone, req.Birthday,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollment)
}
