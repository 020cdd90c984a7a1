package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

type fixedSession struct {
	user *domain.User
}

func (f *fixedSession) Restore(context.Context) {}
func (f *fixedSession) Login(context.Context, string, string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}
func (f *fixedSession) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}
func (f *fixedSession) Logout(context.Context) {}
func (f *fixedSession) UpdateProfile(context.Context, domain.ProfileUpdate) (*domain.User, error) {
	return nil, domain.ErrNotAuthenticated
}
func (f *fixedSession) State() ports.SessionState {
	if f.user != nil {
		return ports.SessionAuthenticated
	}
	return ports.SessionUnauthenticated
}
func (f *fixedSession) IsAuthenticated() bool     { return f.user != nil }
func (f *fixedSession) CurrentUser() *domain.User { return f.user }
func (f *fixedSession) Token() string             { return "" }

func TestRequireSession(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("unauthenticated is rejected", func(t *testing.T) {
		mw := RequireSession(&fixedSession{})
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/orders", nil), rec)

		err := mw(next)(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusUnauthorized {
			t.Fatalf("expected a 401 HTTPError, got %v", err)
		}
	})

	t.Run("authenticated passes through", func(t *testing.T) {
		mw := RequireSession(&fixedSession{user: &domain.User{ID: "u_1"}})
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/orders", nil), rec)

		if err := mw(next)(c); err != nil {
			t.Fatalf("expected pass-through, got %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("next handler not reached: %d", rec.Code)
		}
	})
}
