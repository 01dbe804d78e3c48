// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"identity/internal/delivery/http/response"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	msgAccountCreated = "User Created Successfully"
	msgLoginSucceeded = "Login successful"
)

type createAccountRequest struct {
	Name     string       `json:"name" validate:"required"`
	Email    string       `json:"email" validate:"required"`
	Location string       `json:"location"`
	Contact  contactValue `json:"contact"`
	Password string       `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// updateAccountRequest only binds the mutable profile fields; anything else in
// the body, such as a password, is ignored.
type updateAccountRequest struct {
	Name     *string       `json:"name"`
	Location *string       `json:"location"`
	Contact  *contactValue `json:"contact"`
}

// accountView is the rendered form of an account. It has no password field.
type accountView struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Location  string    `json:"location,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newAccountView(account *entity.Account) accountView {
	return accountView{
		Name:      account.Name,
		Email:     account.Email,
		Location:  account.Location,
		Contact:   account.Contact,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles account registration.
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), &usecase.CreateAccountInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Location: req.Location,
		Contact:  string(req.Contact),
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newAccountView(output.Account), msgAccountCreated)
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Token(c, output.Token, msgLoginSucceeded)
}

// List returns every visible account.
func (h *AccountHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]accountView, 0, len(output.Accounts))
	for _, account := range output.Accounts {
		views = append(views, newAccountView(account))
	}

	return c.JSON(http.StatusOK, views)
}

// Update applies a partial update to the account named by the :email path parameter.
func (h *AccountHandler) Update(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	output, err := h.uc.Update(c.Request().Context(), email, entity.AccountPatch{
		Name:     req.Name,
		Location: req.Location,
		Contact:  (*string)(req.Contact),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Updated(c, output.Matched, output.Modified)
}

// Remove deletes the account named by the :email path parameter.
func (h *AccountHandler) Remove(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Remove(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Deleted(c, output.Deleted)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func emailParam(c echo.Context) (string, error) {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil || strings.TrimSpace(email) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("email path parameter is required")
	}

	return strings.TrimSpace(email), nil
}
