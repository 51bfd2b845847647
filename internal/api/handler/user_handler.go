package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/proposaldesk/intake-api/internal/core/domain"
	"github.com/proposaldesk/intake-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create inserts a user record.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      domain.User  true  "User record"
// @Success      200   {object}  domain.InsertResult
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var user domain.User
	if err := c.Bind(&user); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidPayload})
	}

	res, err := h.service.Create(c.Request().Context(), &user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Upsert sets the submitted fields on the user matching the body's email.
//
// @Summary      Create or update a user by email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      domain.User  true  "User fields; email selects the record"
// @Success      200   {object}  domain.UpdateResult
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /users [put]
func (h *UserHandler) Upsert(c echo.Context) error {
	var user domain.User
	if err := c.Bind(&user); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidPayload})
	}

	res, err := h.service.Upsert(c.Request().Context(), &user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// AdminFlag reports whether the user holds the admin role.
//
// @Summary      Get the admin flag of a user
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  adminFlagResponse
// @Failure      400    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /users/{email} [get]
func (h *UserHandler) AdminFlag(c echo.Context) error {
	email, ok := emailParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidEmail})
	}

	admin, err := h.service.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminFlagResponse{Admin: admin})
}

// Phone returns the stored phone number.
//
// @Summary      Get the phone number of a user
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  phoneResponse
// @Failure      400    {object}  messageResponse
// @Failure      404    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /users/phone/{email} [get]
func (h *UserHandler) Phone(c echo.Context) error {
	email, ok := emailParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidEmail})
	}

	phone, err := h.service.Phone(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, phoneResponse{PhoneNumber: phone})
}

// UpdateProfile sets the non-empty profile fields.
//
// @Summary      Update a user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path      string          true  "User email"
// @Param        body   body      profileRequest  true  "Profile fields; empty values are ignored"
// @Success      200    {object}  messageResponse
// @Failure      400    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /users/{email} [post]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	email, ok := emailParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidEmail})
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidPayload})
	}

	out, err := h.service.UpdateProfile(c.Request().Context(), email, domain.ProfileUpdate{
		DisplayName: req.DisplayName,
		PhoneNumber: req.PhoneNumber,
		Country:     req.Country,
	})
	if err != nil {
		return err
	}

	msg := msgProfileNoChange
	if out.Changed {
		msg = msgProfileUpdated
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}
