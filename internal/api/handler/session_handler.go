package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/api/metrics"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

// SessionHandler exposes the process-wide session manager.
type SessionHandler struct {
	session ports.Session
}

func NewSessionHandler(session ports.Session) *SessionHandler {
	return &SessionHandler{session: session}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Phone     string `json:"phone"`
}

type profileUpdateRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	State         string       `json:"state"`
	User          *domain.User `json:"user,omitempty"`
}

func (h *SessionHandler) snapshot() sessionResponse {
	return sessionResponse{
		Authenticated: h.session.IsAuthenticated(),
		State:         string(h.session.State()),
		User:          h.session.CurrentUser(),
	}
}

// Login handles POST /v1/auth/login.
//
// @Summary      Log in against the remote auth API
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if _, err := h.session.Login(c.Request().Context(), req.Email, req.Password); err != nil {
		metrics.SessionOpsTotal.WithLabelValues("login", "error").Inc()
		return err
	}

	metrics.SessionOpsTotal.WithLabelValues("login", "ok").Inc()
	return c.JSON(http.StatusOK, h.snapshot())
}

// Register handles POST /v1/auth/register. Success implies login.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	_, err := h.session.Register(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		metrics.SessionOpsTotal.WithLabelValues("register", "error").Inc()
		return err
	}

	metrics.SessionOpsTotal.WithLabelValues("register", "ok").Inc()
	return c.JSON(http.StatusCreated, h.snapshot())
}

// Logout handles POST /v1/auth/logout. Always succeeds locally.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())
	metrics.SessionOpsTotal.WithLabelValues("logout", "ok").Inc()
	return c.JSON(http.StatusOK, h.snapshot())
}

// Me handles GET /v1/auth/me.
//
// @Summary      Current session state
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/auth/me [get]
func (h *SessionHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, h.snapshot())
}

// UpdateProfile handles PATCH /v1/auth/profile: a local-only merge into the
// cached user. The remote API is not called.
//
// @Summary      Update the cached profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      profileUpdateRequest  true  "Partial profile edit"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/profile [patch]
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	_, err := h.session.UpdateProfile(c.Request().Context(), domain.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, h.snapshot())
}
