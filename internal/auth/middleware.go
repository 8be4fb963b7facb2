package auth

import (
	"github.com/adonai-ai/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// resolves the caller's identity without ever blocking the request.
// Both anonymous and authenticated callers pass through.
func OptionalMiddleware(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := v.Resolve(c.GetHeader("Authorization"))
		setIdentity(c, identity)
		c.Next()
	}
}

// requires a verified user: 401 on missing or invalid credentials,
// 503 when the auth subsystem is not configured at all.
func RequiredMiddleware(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := v.Resolve(c.GetHeader("Authorization"))

		switch identity.State {
		case Identified:
			setIdentity(c, identity)
			c.Next()

		case Unavailable:
			errors.AuthUnavailable(c)
			c.Abort()

		default:
			errors.Unauthorized(c, "invalid or expired session, please sign in again")
			c.Abort()
		}
	}
}

func setIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)

	if identity.Authenticated() {
		c.Set("user_id", identity.UserID)
		c.Set("user_email", identity.Email)
	}
}

// extracts the resolved identity from the request context
func IdentityFrom(c *gin.Context) Identity {
	if v, exists := c.Get(identityKey); exists {
		if identity, ok := v.(Identity); ok {
			return identity
		}
	}

	return Identity{State: Anonymous}
}

// extracts user_id from context after RequiredMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")

	if !exists {
		return "", false
	}

	return userID.(string), true
}
