package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightpixel/website-api/internal/api/metrics"
	"github.com/brightpixel/website-api/internal/core/ports"
)

// ContentHandler serves and edits the website-content document.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

type updateContentRequest struct {
	Section string `json:"section" validate:"required"`
	Data    any    `json:"data" validate:"required"`
}

// Get handles GET /api/content — the public content document.
//
// @Summary      Get website content
// @Tags         content
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  map[string]string
// @Router       /api/content [get]
func (h *ContentHandler) Get(c echo.Context) error {
	doc, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// UpdateSection handles PUT /api/admin/content — replace one named section.
//
// @Summary      Update a content section
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateContentRequest  true  "Section name and data"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/admin/content [put]
func (h *ContentHandler) UpdateSection(c echo.Context) error {
	var req updateContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateSection(c.Request().Context(), req.Section, req.Data); err != nil {
		return err
	}

	metrics.ContentUpdatesTotal.WithLabelValues(req.Section).Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Content updated successfully"})
}
