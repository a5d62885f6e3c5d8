package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BasketSessionCookie names the cookie that scopes a basket to one
// browsing session.
const BasketSessionCookie = "basket_session"

// BasketSession guarantees every request carries a basket session ID,
// issuing a fresh one when the cookie is absent.
func BasketSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(BasketSessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(BasketSessionCookie, sessionID, 7*24*3600, "/", "", false, true)
		}
		c.Set("basket_session", sessionID)
		c.Next()
	}
}
