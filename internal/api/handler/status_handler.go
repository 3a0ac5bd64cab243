package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightpixel/website-api/internal/core/ports"
)

// StatusHandler records and lists client status checks.
type StatusHandler struct {
	service ports.StatusService
}

func NewStatusHandler(service ports.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

type createStatusRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

// Create handles POST /api/status.
//
// @Summary      Record a status check
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        body  body      createStatusRequest  true  "Client name"
// @Success      200   {object}  domain.StatusCheck
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/status [post]
func (h *StatusHandler) Create(c echo.Context) error {
	var req createStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	check, err := h.service.Create(c.Request().Context(), req.ClientName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, check)
}

// List handles GET /api/status — all checks, newest first.
//
// @Summary      List status checks
// @Tags         status
// @Produce      json
// @Success      200  {array}   domain.StatusCheck
// @Failure      500  {object}  map[string]string
// @Router       /api/status [get]
func (h *StatusHandler) List(c echo.Context) error {
	checks, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checks)
}
