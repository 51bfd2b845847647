package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/proposaldesk/intake-api/internal/api/metrics"
	"github.com/proposaldesk/intake-api/internal/core/domain"
	"github.com/proposaldesk/intake-api/internal/core/ports"
)

type TestimonialHandler struct {
	service ports.TestimonialService
}

func NewTestimonialHandler(service ports.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

// Create stores a free-form testimonial awaiting moderation.
//
// @Summary      Submit a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Testimonial fields"
// @Success      200   {object}  domain.InsertResult
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /testimonial [post]
func (h *TestimonialHandler) Create(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidPayload})
	}

	res, err := h.service.Create(c.Request().Context(), fields)
	if err != nil {
		return err
	}
	metrics.TestimonialActionsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, res)
}

// Pending lists testimonials awaiting approval.
//
// @Summary      List pending testimonials
// @Tags         testimonials
// @Produce      json
// @Param        email  path      string  true  "Requesting admin's email"
// @Success      200    {array}   object
// @Failure      403    {object}  map[string]string
// @Failure      500    {object}  messageResponse
// @Router       /testimonialapprove/{email} [get]
func (h *TestimonialHandler) Pending(c echo.Context) error {
	// An undecodable email resolves to no requester and is refused with 403.
	email, _ := emailParam(c)

	items, err := h.service.ListPending(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testimonialList(items))
}

// Approve marks a testimonial approved and returns every testimonial.
//
// @Summary      Approve a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        body  body      moderationRequest  true  "Testimonial id and requesting admin"
// @Success      200   {array}   object
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /testimonialapprove [put]
func (h *TestimonialHandler) Approve(c echo.Context) error {
	req := bindModeration(c)

	items, err := h.service.Approve(c.Request().Context(), req.ID, req.UserEmail)
	if err != nil {
		return err
	}
	metrics.TestimonialActionsTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, testimonialList(items))
}

// Delete removes a testimonial and returns the remaining ones.
//
// @Summary      Delete a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        body  body      moderationRequest  true  "Testimonial id and requesting admin"
// @Success      200   {array}   object
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /testimonialapprove [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	req := bindModeration(c)

	items, err := h.service.Delete(c.Request().Context(), req.ID, req.UserEmail)
	if err != nil {
		return err
	}
	metrics.TestimonialActionsTotal.WithLabelValues("deleted").Inc()
	return c.JSON(http.StatusOK, testimonialList(items))
}

// bindModeration decodes the body leniently so the admin check always runs
// on whatever requester email was sent. A body that is not a JSON object
// yields no requester and is refused with 403. A non-string id is passed on
// in its printed form and fails id parsing like any malformed id.
func bindModeration(c echo.Context) moderationRequest {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return moderationRequest{}
	}

	var req moderationRequest
	req.UserEmail, _ = fields["user_email"].(string)
	switch id := fields["id"].(type) {
	case string:
		req.ID = id
	case nil:
	default:
		req.ID = fmt.Sprint(id)
	}
	return req
}

func testimonialList(items []domain.Testimonial) []domain.Testimonial {
	if items == nil {
		return []domain.Testimonial{}
	}
	return items
}
