package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers. The same
// handler backs both API surfaces; only the gates in front differ.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

func userIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrMalformedRequest.WithDetail("The user id must be an integer.")
	}

	return id, nil
}

// Create registers a new user.
func (h *UserHandler) Create(c echo.Context) error {
	var input CreateUserRequest
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:     input.Name,
		Email:    input.Email,
		Login:    input.Login,
		Password: input.Password,
		Type:     entity.UserType(input.Type),
		Address:  input.Address.toEntity(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("User created", slog.Int64("user_id", user.ID))

	return c.JSON(http.StatusCreated, userResponseFrom(user))
}

// List returns every user.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, userResponsesFrom(users))
}

// GetByID returns one user by numeric id.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	user, err := h.uc.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, userResponseFrom(user))
}

// SearchByName returns the users whose name contains the given fragment.
func (h *UserHandler) SearchByName(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return domainerrors.ErrMissingParameter.WithDetail("The 'name' query parameter is required.")
	}

	users, err := h.uc.SearchByName(c.Request().Context(), name)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, userResponsesFrom(users))
}

// SearchByLogin returns the single user with the given login.
func (h *UserHandler) SearchByLogin(c echo.Context) error {
	login := c.QueryParam("login")
	if login == "" {
		return domainerrors.ErrMissingParameter.WithDetail("The 'login' query parameter is required.")
	}

	user, err := h.uc.FindByLogin(c.Request().Context(), login)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, userResponseFrom(user))
}

// SearchByEmail returns the single user with the given email.
func (h *UserHandler) SearchByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return domainerrors.ErrMissingParameter.WithDetail("The 'email' query parameter is required.")
	}

	user, err := h.uc.FindByEmail(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, userResponseFrom(user))
}

// Update replaces the mutable profile fields of a user.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	var input UpdateUserRequest
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, &usecase.UpdateUserInput{
		Name:    input.Name,
		Address: input.Address.toEntity(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, userResponseFrom(user))
}

// ChangePassword rotates a user's password after verifying the current one.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	var input ChangePasswordRequest
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), id, input.CurrentPassword, input.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("User deleted", slog.Int64("user_id", id))

	return c.NoContent(http.StatusNoContent)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
