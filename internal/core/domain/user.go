package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotAuthenticated = errors.New("not authenticated")

// User mirrors the remote API's user record. It is cached locally after
// login/register; the remote API is authoritative only at that moment, and
// afterwards the cache is trusted until explicit logout.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone,omitempty"`
	Role          string `json:"role"`
	IsActive      bool   `json:"isActive"`
	EmailVerified bool   `json:"emailVerified"`
}

// ProfileUpdate carries a partial user edit. Nil fields are left untouched
// by the merge.
type ProfileUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// Session pairs the opaque bearer token with the user it authenticates.
// It exists from a successful login/register (or a cache restore) until
// explicit logout.
type Session struct {
	Token string
	User  *User
}

// Authenticated reports whether the session carries a user.
func (s Session) Authenticated() bool {
	return s.User != nil
}
