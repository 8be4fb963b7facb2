package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// State tags the outcome of resolving a bearer credential.
type State int

const (
	// no valid credential was presented; caller is tracked by IP only
	Anonymous State = iota
	// a valid Supabase access token resolved to a user
	Identified
	// the auth subsystem is not configured, credentials cannot be checked
	Unavailable
)

// Identity is the result of credential resolution for a request.
type Identity struct {
	State  State
	UserID string
	Email  string
}

// reports whether the request carries a verified user
func (i Identity) Authenticated() bool {
	return i.State == Identified
}

// represents the claims inside a Supabase access token
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier validates Supabase access tokens. When unconfigured, every
// resolution yields Unavailable.
type Verifier struct {
	secret     string
	configured bool
}
