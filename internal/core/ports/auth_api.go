package ports

import (
	"context"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
)

// RegisterInput carries the registration payload for the remote auth API.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// AuthResult is the remote API's answer to a successful login or register.
type AuthResult struct {
	AccessToken string
	User        domain.User
}

// AuthAPI is the remote authentication service. Failures carry the server's
// message and are surfaced to the caller unchanged.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
}
