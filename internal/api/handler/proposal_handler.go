package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/proposaldesk/intake-api/internal/api/metrics"
	"github.com/proposaldesk/intake-api/internal/api/middleware"
	"github.com/proposaldesk/intake-api/internal/core/domain"
	"github.com/proposaldesk/intake-api/internal/core/ports"
)

type ProposalHandler struct {
	service ports.ProposalService
}

func NewProposalHandler(service ports.ProposalService) *ProposalHandler {
	return &ProposalHandler{service: service}
}

// Create stores a proposal. The optional file has already been written by
// the upload middleware.
//
// @Summary      Submit a proposal
// @Tags         proposals
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  false  "Submitter name"
// @Param        email        formData  string  false  "Submitter email"
// @Param        phoneNumber  formData  string  false  "Submitter phone"
// @Param        category     formData  string  false  "Proposal category"
// @Param        details      formData  string  false  "Proposal details"
// @Param        file         formData  file    false  "Attachment"
// @Success      200          {object}  proposalCreatedResponse
// @Failure      500          {object}  messageResponse
// @Router       /makeproposal [post]
func (h *ProposalHandler) Create(c echo.Context) error {
	in := ports.CreateProposalInput{
		Name:        c.FormValue("name"),
		Email:       c.FormValue("email"),
		PhoneNumber: c.FormValue("phoneNumber"),
		Category:    c.FormValue("category"),
		Details:     c.FormValue("details"),
	}
	if f := middleware.UploadedFile(c); f != nil {
		in.FilePath = f.RelativePath
	}

	p, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.ProposalsCreatedTotal.WithLabelValues(strconv.FormatBool(p.FilePath != nil)).Inc()
	return c.JSON(http.StatusOK, proposalCreatedResponse{Success: true, Data: p})
}

// ListByEmail returns the proposals submitted under an email.
//
// @Summary      List proposals of a submitter
// @Tags         proposals
// @Produce      json
// @Param        email  path      string  true  "Submitter email"
// @Success      200    {array}   domain.Proposal
// @Failure      400    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /makeproposal/{email} [get]
func (h *ProposalHandler) ListByEmail(c echo.Context) error {
	email, ok := emailParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidEmail})
	}

	items, err := h.service.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, proposalList(items))
}

// ListAll returns every proposal to an admin.
//
// @Summary      List all proposals
// @Tags         proposals
// @Produce      json
// @Param        email  query     string  true  "Requesting admin's email"
// @Success      200    {array}   domain.Proposal
// @Failure      403    {object}  map[string]string
// @Failure      500    {object}  messageResponse
// @Router       /makeproposal [get]
func (h *ProposalHandler) ListAll(c echo.Context) error {
	items, err := h.service.ListAll(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, proposalList(items))
}

func proposalList(items []*domain.Proposal) []*domain.Proposal {
	if items == nil {
		return []*domain.Proposal{}
	}
	return items
}
