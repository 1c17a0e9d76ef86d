package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionUserKey is the session key holding the logged-in user's id.
const SessionUserKey = "userID"

// SessionAuth gates server-rendered pages on a cookie session. Unauthenticated
// requests are redirected to the login page rather than answered with JSON.
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(SessionUserKey).(string)
		if !ok || userID == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// SessionLogin records the user id in the session.
func SessionLogin(c *gin.Context, userID string) error {
	session := sessions.Default(c)
	session.Set(SessionUserKey, userID)
	return session.Save()
}

// SessionLogout clears the session.
func SessionLogout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}
