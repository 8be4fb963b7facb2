package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// creates a verifier for Supabase access tokens. An empty secret yields an
// unconfigured verifier: resolution then always reports Unavailable.
func NewVerifier(jwtSecret string) *Verifier {
	return &Verifier{
		secret:     jwtSecret,
		configured: jwtSecret != "",
	}
}

// reports whether token verification is possible
func (v *Verifier) Configured() bool {
	return v.configured
}

// validates a Supabase access token and returns its claims
func (v *Verifier) ValidateToken(tokenString string) (*Claims, error) {
	if !v.configured {
		return nil, fmt.Errorf("auth not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(v.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if claims.Subject == "" {
			return nil, fmt.Errorf("token has no subject")
		}

		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Resolve turns an Authorization header value into a tagged Identity.
// Invalid, expired or missing credentials resolve to Anonymous, never an
// error; routes decide how to react to each tag.
func (v *Verifier) Resolve(authHeader string) Identity {
	if !v.configured {
		return Identity{State: Unavailable}
	}

	token, ok := bearerToken(authHeader)
	if !ok {
		return Identity{State: Anonymous}
	}

	claims, err := v.ValidateToken(token)
	if err != nil {
		return Identity{State: Anonymous}
	}

	return Identity{
		State:  Identified,
		UserID: claims.Subject,
		Email:  claims.Email,
	}
}

// extracts the token from a "Bearer <token>" header value
func bearerToken(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}
