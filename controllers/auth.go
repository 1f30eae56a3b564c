package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"veyra-io/estates-web/configs"
	"veyra-io/estates-web/helper"
)

// AdminLoginPage renders the sign-in form for the console.
func AdminLoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin_login.html", gin.H{})
	}
}

// AdminLogin checks the submitted credentials against the provisioned admin
// account and issues a session cookie.
func AdminLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		adminEmail := configs.LoadEnvFor("ADMIN_EMAIL")
		adminHash := configs.LoadEnvFor("ADMIN_PASSWORD_HASH")
		if adminEmail == "" || adminHash == "" {
			helper.ShowErrorPage(c, http.StatusInternalServerError,
				errors.New("admin credentials are not provisioned"), "The console is not configured")
			return
		}

		if email != adminEmail || configs.CheckPassword(adminHash, password) != nil {
			c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
				"Error": "Invalid email or password",
				"Email": email,
			})
			return
		}

		token, err := configs.GenerateSessionToken(email)
		if err != nil {
			helper.ShowErrorPage(c, http.StatusInternalServerError, err, "Could not start a session")
			return
		}

		c.SetCookie(configs.SessionCookie, token, int(configs.SessionTTL.Seconds()), "/", "", false, true)
		c.Redirect(http.StatusFound, "/admin/properties")
	}
}

// AdminLogout revokes the current session and clears the cookie.
func AdminLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := configs.ExtractToken(c); token != "" {
			if err := configs.RevokeSession(c.Request.Context(), token, configs.SessionTTL); err != nil {
				helper.ShowErrorPage(c, http.StatusInternalServerError, err, "Could not sign out cleanly")
				return
			}
		}

		c.SetCookie(configs.SessionCookie, "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	}
}
