package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/infrastructure/kvstore"
)

// stubAuthAPI implements ports.AuthAPI with overridable behaviour.
type stubAuthAPI struct {
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
	logoutFn   func(ctx context.Context, token string) error
	logouts    int
}

func (s *stubAuthAPI) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthAPI) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthAPI) Logout(ctx context.Context, token string) error {
	s.logouts++
	if s.logoutFn != nil {
		return s.logoutFn(ctx, token)
	}
	return nil
}

func testUser() domain.User {
	return domain.User{
		ID:            "u_1",
		Email:         "ada@example.com",
		FirstName:     "Ada",
		LastName:      "Obi",
		Role:          "customer",
		IsActive:      true,
		EmailVerified: true,
	}
}

func seedSession(t *testing.T, store *kvstore.Memory, token string, user domain.User) {
	t.Helper()
	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if err := store.Set(context.Background(), "auth_token", token); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	if err := store.Set(context.Background(), "auth_user", string(raw)); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestSession_InitialStateIsRestoring(t *testing.T) {
	s := NewSession(&stubAuthAPI{}, kvstore.NewMemory(), zerolog.Nop())
	if s.State() != ports.SessionRestoring {
		t.Fatalf("expected restoring, got %s", s.State())
	}
}

func TestSession_RestoreFromCache(t *testing.T) {
	store := kvstore.NewMemory()
	user := testUser()
	seedSession(t, store, "tok_abc", user)

	s := NewSession(&stubAuthAPI{}, store, zerolog.Nop())
	s.Restore(context.Background())

	if !s.IsAuthenticated() {
		t.Fatalf("expected authenticated after restore")
	}
	if s.State() != ports.SessionAuthenticated {
		t.Fatalf("unexpected state: %s", s.State())
	}
	got := s.CurrentUser()
	if got == nil || *got != user {
		t.Fatalf("restore must yield the exact cached user: %+v", got)
	}
	if s.Token() != "tok_abc" {
		t.Fatalf("unexpected token: %s", s.Token())
	}
}

func TestSession_RestoreWithNoToken(t *testing.T) {
	store := kvstore.NewMemory()

	s := NewSession(&stubAuthAPI{}, store, zerolog.Nop())
	s.Restore(context.Background())

	if s.IsAuthenticated() {
		t.Fatalf("expected unauthenticated")
	}
	if s.State() != ports.SessionUnauthenticated {
		t.Fatalf("unexpected state: %s", s.State())
	}
}

func TestSession_RestoreWipesPartialCache(t *testing.T) {
	store := kvstore.NewMemory()
	// token present, user missing
	if err := store.Set(context.Background(), "auth_token", "tok_only"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewSession(&stubAuthAPI{}, store, zerolog.Nop())
	s.Restore(context.Background())

	if s.IsAuthenticated() {
		t.Fatalf("partial cache must not authenticate")
	}
	if store.Len() != 0 {
		t.Fatalf("partial cache must be wiped, %d keys left", store.Len())
	}
}

func TestSession_RestoreWipesUnparsableUser(t *testing.T) {
	store := kvstore.NewMemory()
	_ = store.Set(context.Background(), "auth_token", "tok_abc")
	_ = store.Set(context.Background(), "auth_user", "{broken")

	s := NewSession(&stubAuthAPI{}, store, zerolog.Nop())
	s.Restore(context.Background())

	if s.IsAuthenticated() || store.Len() != 0 {
		t.Fatalf("unparsable user must wipe the cache")
	}
}

func TestSession_RestoreRunsOnce(t *testing.T) {
	store := kvstore.NewMemory()
	s := NewSession(&stubAuthAPI{}, store, zerolog.Nop())
	s.Restore(context.Background())

	// A later seed must not resurrect the session through a second restore.
	seedSession(t, store, "tok_late", testUser())
	s.Restore(context.Background())

	if s.IsAuthenticated() {
		t.Fatalf("restore must run at most once")
	}
}

func TestSession_LoginPersistsTokenAndUser(t *testing.T) {
	store := kvstore.NewMemory()
	user := testUser()
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "ada@example.com" || password != "pw12345678" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.AuthResult{AccessToken: "tok_new", User: user}, nil
		},
	}

	s := NewSession(api, store, zerolog.Nop())
	s.Restore(context.Background())

	got, err := s.Login(context.Background(), "ada@example.com", "pw12345678")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got == nil || got.Email != user.Email {
		t.Fatalf("unexpected user: %+v", got)
	}
	if !s.IsAuthenticated() || s.Token() != "tok_new" {
		t.Fatalf("session not established")
	}

	tok, err := store.Get(context.Background(), "auth_token")
	if err != nil || tok != "tok_new" {
		t.Fatalf("token not persisted: %q %v", tok, err)
	}
	raw, err := store.Get(context.Background(), "auth_user")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	var cached domain.User
	if err := json.Unmarshal([]byte(raw), &cached); err != nil || cached != user {
		t.Fatalf("persisted user mismatch: %+v %v", cached, err)
	}
}

func TestSession_LoginFailureLeavesStateUntouched(t *testing.T) {
	store := kvstore.NewMemory()
	wantErr := errors.New("invalid credentials")
	api := &stubAuthAPI{
		loginFn: func(context.Context, string, string) (*ports.AuthResult, error) {
			return nil, wantErr
		},
	}

	s := NewSession(api, store, zerolog.Nop())
	s.Restore(context.Background())

	if _, err := s.Login(context.Background(), "ada@example.com", "bad"); !errors.Is(err, wantErr) {
		t.Fatalf("expected the remote error unchanged, got %v", err)
	}
	if s.IsAuthenticated() || store.Len() != 0 {
		t.Fatalf("failed login must not mutate local state")
	}
}

func TestSession_LoginRejectsBlankCredentials(t *testing.T) {
	s := NewSession(&stubAuthAPI{}, kvstore.NewMemory(), zerolog.Nop())
	if _, err := s.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSession_RegisterImpliesLogin(t *testing.T) {
	store := kvstore.NewMemory()
	user := testUser()
	api := &stubAuthAPI{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
			if input.Email != user.Email {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{AccessToken: "tok_reg", User: user}, nil
		},
	}

	s := NewSession(api, store, zerolog.Nop())
	s.Restore(context.Background())

	if _, err := s.Register(context.Background(), ports.RegisterInput{
		Email:     user.Email,
		Password:  "pw12345678",
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if !s.IsAuthenticated() || s.Token() != "tok_reg" {
		t.Fatalf("register must authenticate immediately")
	}
}

func TestSession_LogoutAlwaysClearsLocally(t *testing.T) {
	store := kvstore.NewMemory()
	seedSession(t, store, "tok_abc", testUser())
	api := &stubAuthAPI{
		logoutFn: func(context.Context, string) error {
			return errors.New("network down")
		},
	}

	s := NewSession(api, store, zerolog.Nop())
	s.Restore(context.Background())
	if !s.IsAuthenticated() {
		t.Fatalf("precondition failed")
	}

	s.Logout(context.Background())

	if api.logouts != 1 {
		t.Fatalf("remote logout should be attempted once")
	}
	if s.IsAuthenticated() {
		t.Fatalf("logout must clear the session even when the remote call fails")
	}
	if store.Len() != 0 {
		t.Fatalf("logout must clear storage, %d keys left", store.Len())
	}
}

func TestSession_UpdateProfileMergesOnlySetFields(t *testing.T) {
	store := kvstore.NewMemory()
	user := testUser()
	seedSession(t, store, "tok_abc", user)

	s := NewSession(&stubAuthAPI{}, store, zerolog.Nop())
	s.Restore(context.Background())

	first := "Adaeze"
	updated, err := s.UpdateProfile(context.Background(), domain.ProfileUpdate{FirstName: &first})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.FirstName != "Adaeze" {
		t.Fatalf("firstName not updated: %+v", updated)
	}
	if updated.Email != user.Email || updated.Role != user.Role || updated.LastName != user.LastName {
		t.Fatalf("unrelated fields must stay untouched: %+v", updated)
	}

	raw, err := store.Get(context.Background(), "auth_user")
	if err != nil {
		t.Fatalf("persisted user missing: %v", err)
	}
	var cached domain.User
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		t.Fatalf("decode cached user: %v", err)
	}
	if cached.FirstName != "Adaeze" || cached.Email != user.Email {
		t.Fatalf("persisted record mismatch: %+v", cached)
	}
}

func TestSession_UpdateProfileRequiresSession(t *testing.T) {
	s := NewSession(&stubAuthAPI{}, kvstore.NewMemory(), zerolog.Nop())
	s.Restore(context.Background())

	first := "X"
	if _, err := s.UpdateProfile(context.Background(), domain.ProfileUpdate{FirstName: &first}); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestSession_CurrentUserReturnsCopy(t *testing.T) {
	store := kvstore.NewMemory()
	seedSession(t, store, "tok_abc", testUser())
	s := NewSession(&stubAuthAPI{}, store, zerolog.Nop())
	s.Restore(context.Background())

	u := s.CurrentUser()
	u.FirstName = "mutated"
	if s.CurrentUser().FirstName == "mutated" {
		t.Fatalf("CurrentUser must return a copy")
	}
}

var _ ports.Session = (*SessionService)(nil)
