package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vibank/account-system/internal/api/metrics"
	"github.com/vibank/account-system/internal/core/domain"
	"github.com/vibank/account-system/internal/core/ports"
)

type AuthHandler struct {
	accounts ports.AccountService
}

func NewAuthHandler(accounts ports.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  userEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Msg: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Msg: err.Error()})
	}

	user, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Msg: "User already exists"})
		case errors.Is(err, domain.ErrMissingCredentials):
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Msg: "Name, email and password are required"})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, envelope(user.Public()))
}

// Login verifies customer credentials.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Msg: "Invalid request payload"})
	}

	user, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			return c.JSON(http.StatusBadRequest, errorResponse{Msg: "Please provide both email and password"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Msg: "Invalid Credentials"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, envelope(user.Public()))
}

// LoginByName resolves an agent by name. No password is checked — this
// is the internal agents' identity-assertion shortcut, not a
// security-equivalent login path.
//
// @Summary      Agent login by name
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginByNameRequest  true  "Agent name"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/login-by-name [post]
func (h *AuthHandler) LoginByName(c echo.Context) error {
	var req loginByNameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Msg: "Invalid request payload"})
	}

	agent, err := h.accounts.LoginByName(c.Request().Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingAgentName):
			return c.JSON(http.StatusBadRequest, errorResponse{Msg: "Agent name is required."})
		case errors.Is(err, domain.ErrAgentNotFound):
			metrics.AgentLookupsTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Msg: fmt.Sprintf("Agent '%s' not found.", req.Name)})
		}
		metrics.AgentLookupsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.AgentLookupsTotal.WithLabelValues("found").Inc()
	return c.JSON(http.StatusOK, envelope(agent.Public()))
}
