package ports

import (
	"context"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
)

// SessionState is the lifecycle phase of the session manager.
type SessionState string

const (
	SessionRestoring       SessionState = "restoring"
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionAuthenticated   SessionState = "authenticated"
)

// Session owns the authenticated identity for the process lifetime. It is
// constructed once at startup, restored from durable storage, and never torn
// down.
type Session interface {
	// Restore loads the cached token and user from storage. It runs at most
	// once; later calls are no-ops. It never fails the caller: any storage
	// or parse problem wipes the cache and lands in unauthenticated.
	Restore(ctx context.Context)

	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Logout calls the remote endpoint best-effort and unconditionally
	// clears the local session.
	Logout(ctx context.Context)
	// UpdateProfile merges a partial edit into the cached user and
	// re-persists it. It does not call the remote API.
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error)

	State() SessionState
	IsAuthenticated() bool
	CurrentUser() *domain.User
	Token() string
}
