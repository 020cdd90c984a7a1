package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// SessionService owns the authenticated identity: login/register/logout
// against the remote auth API with the token and user profile cached in the
// key-value store, restored once at startup.
//
// Restore is trust-on-read: a cached token and user are believed without a
// network round-trip. Storage write failures after a successful remote call
// are absorbed; the in-memory session is still established. Two racing
// logins are not coordinated, the last storage write wins.
type SessionService struct {
	api   ports.AuthAPI
	store ports.KeyValueStore
	log   zerolog.Logger

	restoreOnce sync.Once

	mu    sync.Mutex
	state ports.SessionState
	user  *domain.User
	token string
}

func NewSession(api ports.AuthAPI, store ports.KeyValueStore, log zerolog.Logger) *SessionService {
	return &SessionService{
		api:   api,
		store: store,
		log:   log,
		state: ports.SessionRestoring,
	}
}

// Restore loads the cached session from storage. Runs at most once; it
// never fails the caller. Anything short of a clean token+user pair wipes
// both keys and lands in unauthenticated.
func (s *SessionService) Restore(ctx context.Context) {
	s.restoreOnce.Do(func() {
		token, errT := s.store.Get(ctx, tokenKey)
		rawUser, errU := s.store.Get(ctx, userKey)

		if errT != nil || errU != nil || token == "" {
			s.wipe(ctx)
			return
		}

		var user domain.User
		if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
			s.log.Warn().Err(err).Msg("unparsable cached user, clearing session")
			s.wipe(ctx)
			return
		}

		s.logTokenExpiry(token)

		s.mu.Lock()
		s.token = token
		s.user = &user
		s.state = ports.SessionAuthenticated
		s.mu.Unlock()

		s.log.Info().Str("email", user.Email).Msg("session restored from cache")
	})
}

// Login authenticates against the remote API. On failure nothing local is
// mutated and the error propagates unchanged.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.establish(ctx, res)
	s.log.Info().Str("email", res.User.Email).Msg("logged in")
	return s.CurrentUser(), nil
}

// Register creates an account on the remote API. Success implies login.
func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	res, err := s.api.Register(ctx, input)
	if err != nil {
		return nil, err
	}

	s.establish(ctx, res)
	s.log.Info().Str("email", res.User.Email).Msg("registered and logged in")
	return s.CurrentUser(), nil
}

// Logout calls the remote endpoint best-effort and unconditionally clears
// the local session. Local invalidation is guaranteed regardless of the
// network outcome.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token != "" {
		if err := s.api.Logout(ctx, token); err != nil {
			s.log.Warn().Err(err).Msg("remote logout failed, clearing local session anyway")
		}
	}

	s.wipe(ctx)
	s.log.Info().Msg("logged out")
}

// UpdateProfile merges a partial edit into the cached user and re-persists
// it. The remote API is not called; callers needing server persistence do
// that separately before calling this.
func (s *SessionService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return nil, domain.ErrNotAuthenticated
	}
	if update.FirstName != nil {
		s.user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		s.user.LastName = *update.LastName
	}
	if update.Phone != nil {
		s.user.Phone = *update.Phone
	}
	updated := *s.user
	s.mu.Unlock()

	s.persistUser(ctx, updated)
	return &updated, nil
}

func (s *SessionService) State() ports.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *SessionService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// CurrentUser returns a copy of the cached user, or nil.
func (s *SessionService) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// establish adopts a successful auth result: in-memory first, then the two
// storage writes (token before user, sequential within this call).
func (s *SessionService) establish(ctx context.Context, res *ports.AuthResult) {
	user := res.User

	s.mu.Lock()
	s.token = res.AccessToken
	s.user = &user
	s.state = ports.SessionAuthenticated
	s.mu.Unlock()

	if err := s.store.Set(ctx, tokenKey, res.AccessToken); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache auth token")
	}
	s.persistUser(ctx, user)
}

func (s *SessionService) persistUser(ctx context.Context, user domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode user for cache")
		return
	}
	if err := s.store.Set(ctx, userKey, string(raw)); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache user")
	}
}

// wipe clears both storage keys and the in-memory session. Storage errors
// are absorbed; the in-memory invalidation always happens.
func (s *SessionService) wipe(ctx context.Context) {
	for _, key := range []string{tokenKey, userKey} {
		if err := s.store.Remove(ctx, key); err != nil && !errors.Is(err, ports.ErrKeyNotFound) {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to clear session key")
		}
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.state = ports.SessionUnauthenticated
	s.mu.Unlock()
}

// logTokenExpiry peeks at the token's exp claim without verifying the
// signature. Purely informational: restore trusts the cache either way.
func (s *SessionService) logTokenExpiry(token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return // opaque token, nothing to report
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	if exp.Before(time.Now()) {
		s.log.Warn().Time("expired_at", exp.Time).Msg("cached token looks expired, server will reject it")
	}
}
