package middleware

import (
	"errors"
	"net/http"

	"shareit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SharerHeader carries the caller's identity. The gateway in front of this
// service is trusted to have authenticated the user already.
const SharerHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

// RequireIdentity rejects requests without a parseable sharer header and
// stores the user id in the gin context for handlers.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest,
				errors.New("missing sharer header"), "X-Sharer-User-Id header required")
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid X-Sharer-User-Id header")
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
