package middleware

import (
	"net/http"
	"strconv"

	domainerr "github.com/sketchmotion/credit-engine/internal/domain/error"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key the authenticated user ID is stored under
const userIDKey = "userID"

// Auth extracts the authenticated user from the X-User-ID header set by
// the upstream auth gateway. Requests without a valid ID are rejected.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("X-User-ID")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				Message: "Missing authentication",
			})
			return
		}

		userID, err := strconv.ParseUint(header, 10, 64)
		if err != nil || userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				Message: "Invalid authentication",
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// AdminAuth guards the admin credit endpoints with a static bearer token
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" || c.GetHeader("X-Admin-Token") != token {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Forbidden",
			})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user ID stored by the Auth middleware
func UserID(c *gin.Context) uint64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}
