package middleware

import (
	"net/http"

	"promptcraft-backend/internal/services"
	"promptcraft-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// SessionKey is the context key the gate stores the resolved session under.
const SessionKey = "session"

// SessionGate guards the creation and browsing views behind the shared
// password gate. It resolves the bearer token into an explicit session
// object on the request context; there are no per-user accounts or roles.
func SessionGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
			c.Abort()
			return
		}

		isDenylisted, err := services.IsDenylisted(tokenString)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check token status"))
			c.Abort()
			return
		}
		if isDenylisted {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Token has been revoked"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(SessionKey, services.SessionFromClaims(claims))
		c.Next()
	}
}

// SessionFrom extracts the session set by SessionGate, nil when absent.
func SessionFrom(c *gin.Context) *services.Session {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil
	}
	session, ok := value.(*services.Session)
	if !ok {
		return nil
	}
	return session
}
