package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightpixel/website-api/internal/api/metrics"
	"github.com/brightpixel/website-api/internal/core/domain"
	"github.com/brightpixel/website-api/internal/core/ports"
)

// ContactHandler handles the public contact form and the admin views over it.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type submitContactRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	ServiceInterest string `json:"service_interest" validate:"required"`
	Budget          string `json:"budget" validate:"required"`
	Message         string `json:"message" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Submit handles POST /api/contact — the public contact form.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      submitContactRequest  true  "Contact details"
// @Success      200   {object}  domain.ContactSubmission
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req submitContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	submission, err := h.service.Submit(c.Request().Context(), ports.SubmitContactInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		ServiceInterest: req.ServiceInterest,
		Budget:          req.Budget,
		Message:         req.Message,
		RemoteAddr:      c.RealIP(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrRateLimited) {
			metrics.ContactRateLimitedTotal.Inc()
		}
		return err
	}

	metrics.ContactSubmissionsTotal.Inc()

	return c.JSON(http.StatusOK, submission)
}

// List handles GET /api/admin/contacts — all submissions, newest first.
//
// @Summary      List contact submissions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ContactSubmission
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/admin/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	submissions, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, submissions)
}

// Delete handles DELETE /api/admin/contacts/:id.
//
// @Summary      Delete a contact submission
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Submission id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ContactDeletesTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Contact deleted successfully"})
}
