package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

var fixtureSigningKey = []byte("test-signing-key")

// byMethod approximates the Go 1.22+ "METHOD /path" ServeMux patterns on
// older toolchains: dispatch on request method, 405 otherwise.
func byMethod(handlers map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// authFixture is an httptest-backed stand-in for the remote auth API. It
// keeps one bcrypt-hashed account and mints HS256 tokens, close enough to
// the real service to exercise the client end to end.
type authFixture struct {
	email    string
	passHash []byte
	user     domain.User

	logoutTokens []string
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw12345678"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash fixture password: %v", err)
	}
	return &authFixture{
		email:    "ada@example.com",
		passHash: hash,
		user: domain.User{
			ID:        "u_1",
			Email:     "ada@example.com",
			FirstName: "Ada",
			LastName:  "Obi",
			Role:      "customer",
			IsActive:  true,
		},
	}
}

func (f *authFixture) mintToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": f.user.ID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(fixtureSigningKey)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func (f *authFixture) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", byMethod(map[string]http.HandlerFunc{http.MethodPost: func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if req.Email != f.email || bcrypt.CompareHashAndPassword(f.passHash, []byte(req.Password)) != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"accessToken": f.mintToken(t),
			"user":        f.user,
		})
	}}))

	mux.HandleFunc("/auth/register", byMethod(map[string]http.HandlerFunc{http.MethodPost: func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email     string `json:"email"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if req.Email == f.email {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"error": "Email already registered"})
			return
		}
		user := domain.User{ID: "u_2", Email: req.Email, FirstName: req.FirstName, LastName: req.LastName, Role: "customer"}
		json.NewEncoder(w).Encode(map[string]any{
			"accessToken": f.mintToken(t),
			"user":        user,
		})
	}}))

	mux.HandleFunc("/auth/logout", byMethod(map[string]http.HandlerFunc{http.MethodPost: func(w http.ResponseWriter, r *http.Request) {
		f.logoutTokens = append(f.logoutTokens, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthClient_Login(t *testing.T) {
	fixture := newAuthFixture(t)
	srv := fixture.server(t)
	client := NewAuthClient(srv.URL)

	res, err := client.Login(context.Background(), "ada@example.com", "pw12345678")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.AccessToken == "" {
		t.Fatalf("expected an access token")
	}
	if res.User != fixture.user {
		t.Fatalf("user mismatch: %+v", res.User)
	}

	// The minted token must verify against the fixture key.
	parsed, err := jwt.Parse(res.AccessToken, func(*jwt.Token) (any, error) {
		return fixtureSigningKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
}

func TestAuthClient_LoginRejected(t *testing.T) {
	fixture := newAuthFixture(t)
	srv := fixture.server(t)
	client := NewAuthClient(srv.URL)

	_, err := client.Login(context.Background(), "ada@example.com", "wrong")
	if err == nil {
		t.Fatalf("expected an error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Invalid email or password" {
		t.Fatalf("server message must surface unchanged, got %q", apiErr.Message)
	}
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("IsStatus should match")
	}
}

func TestAuthClient_Register(t *testing.T) {
	srv := newAuthFixture(t).server(t)
	client := NewAuthClient(srv.URL)

	res, err := client.Register(context.Background(), ports.RegisterInput{
		Email:     "new@example.com",
		Password:  "pw12345678",
		FirstName: "New",
		LastName:  "Person",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if res.User.Email != "new@example.com" || res.AccessToken == "" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestAuthClient_RegisterConflictUsesErrorField(t *testing.T) {
	srv := newAuthFixture(t).server(t)
	client := NewAuthClient(srv.URL)

	_, err := client.Register(context.Background(), ports.RegisterInput{
		Email:    "ada@example.com",
		Password: "pw12345678",
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 APIError, got %v", err)
	}
	if apiErr.Message != "Email already registered" {
		t.Fatalf("message should come from the error field, got %q", apiErr.Message)
	}
}

func TestAuthClient_LogoutSendsBearer(t *testing.T) {
	fixture := newAuthFixture(t)
	srv := fixture.server(t)
	client := NewAuthClient(srv.URL)

	if err := client.Logout(context.Background(), "tok_abc"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(fixture.logoutTokens) != 1 || fixture.logoutTokens[0] != "Bearer tok_abc" {
		t.Fatalf("bearer header not sent: %v", fixture.logoutTokens)
	}
}

func TestErrorFromBody_FallbackMessage(t *testing.T) {
	err := errorFromBody(http.StatusBadGateway, []byte("<html>upstream broke</html>"))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError")
	}
	if !strings.Contains(apiErr.Message, "502") {
		t.Fatalf("fallback should name the status, got %q", apiErr.Message)
	}
}

var _ ports.AuthAPI = (*AuthClient)(nil)
