package remote

import (
	"context"
	"strings"

	"github.com/guonaihong/gout"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

// AuthClient talks to the remote authentication API.
type AuthClient struct {
	base string
}

// NewAuthClient builds a client for the API rooted at baseURL.
func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{base: strings.TrimRight(baseURL, "/")}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
}

type authEnvelope struct {
	AccessToken string      `json:"accessToken"`
	User        domain.User `json:"user"`
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	var env authEnvelope
	err := exchange(ctx,
		gout.POST(c.base+"/auth/login").SetJSON(loginRequest{Email: email, Password: password}),
		&env,
	)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{AccessToken: env.AccessToken, User: env.User}, nil
}

func (c *AuthClient) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	var env authEnvelope
	err := exchange(ctx,
		gout.POST(c.base+"/auth/register").SetJSON(registerRequest{
			Email:     input.Email,
			Password:  input.Password,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Phone:     input.Phone,
		}),
		&env,
	)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{AccessToken: env.AccessToken, User: env.User}, nil
}

func (c *AuthClient) Logout(ctx context.Context, token string) error {
	return exchange(ctx,
		gout.POST(c.base+"/auth/logout").SetHeader(bearer(token)),
		nil,
	)
}
