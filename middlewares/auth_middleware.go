package middlewares

import (
	"net/http"

	"deskfit/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "deskfit_session"

// AuthMiddleware resolves the session cookie into a user id and stores
// it in the request context as "userID". Requests without a valid
// session are sent back to the login page.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		userID, err := utils.ParseSessionToken(tokenString)
		if err != nil {
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
