package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in gin and request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	// userIDKey is the key used to store the authenticated user's ID.
	userIDKey = contextKey("userID")
	// loggerCtxKey is the key used to store the request-scoped logger.
	loggerCtxKey = contextKey("logger")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	// check in the request context as well
	return UserIDFromCtx(c.Request.Context())
}

// UserIDFromCtx retrieves the authenticated user ID from a standard context.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
