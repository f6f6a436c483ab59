package reminder

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lembra/lembra/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/notifications", h.Notifications)
	api.GET("/dashboard", h.Dashboard)
}

func (h *Handler) Notifications(c echo.Context) error {
	owner := auth.OwnerIDFromContext(c.Request().Context())
	feed, err := h.svc.Feed(c.Request().Context(), owner)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, feed)
}

func (h *Handler) Dashboard(c echo.Context) error {
	owner := auth.OwnerIDFromContext(c.Request().Context())
	sum, err := h.svc.Summary(c.Request().Context(), owner)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sum)
}
