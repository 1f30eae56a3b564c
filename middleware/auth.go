package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"veyra-io/estates-web/configs"
)

// AdminAuth gates the admin console. A request needs a valid, unrevoked
// session cookie; anything else is bounced to the login page.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := configs.ExtractToken(c)
		if tokenString == "" {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		email, err := configs.ValidateSessionToken(tokenString)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		if !configs.IsSessionLive(c.Request.Context(), tokenString) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Set("admin_email", email)
		c.Next()
	}
}

func GenerateSecureToken(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return ""
	}

	return hex.EncodeToString(b)
}
