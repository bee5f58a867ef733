package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shift-scheduler/internal/auth"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// AuthMiddleware validates the bearer token and resolves the user it names.
// Unknown or inactive users are rejected even with a valid signature.
func AuthMiddleware(tokens *auth.Tokens, users user.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid_token")
			return
		}

		u, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				abortUnauthorized(c, "unknown_user")
				return
			}
			httperr.Respond(c, err)
			c.Abort()
			return
		}
		if !u.IsActive {
			abortUnauthorized(c, "inactive_user")
			return
		}

		// The stored role wins over the one in the token.
		c.Set(ContextUserID, u.ID)
		c.Set(ContextUserRole, u.Role)

		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok || !actor.HasRole(roles...) {
			httperr.Forbidden(c, "insufficient_role", "You are not allowed to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}

func ActorFrom(c *gin.Context) (user.Actor, bool) {
	id, ok1 := c.Get(ContextUserID)
	role, ok2 := c.Get(ContextUserRole)
	if !ok1 || !ok2 {
		return user.Actor{}, false
	}

	uid, ok1 := id.(uint)
	r, ok2 := role.(models.Role)
	if !ok1 || !ok2 {
		return user.Actor{}, false
	}
	return user.Actor{ID: uid, Role: r}, true
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Authentication required")
	c.Abort()
}
