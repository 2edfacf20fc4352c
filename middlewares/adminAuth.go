package middlewares

import (
	"net/http"

	"civicreport-be/utils"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards every admin-only route. Without a valid session
// token the request never reaches its handler: page views are redirected
// to the login form, mutating actions additionally get an "Unauthorized"
// notice.
func RequireAdmin(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(utils.AdminCookieName)
		if err != nil || tokenString == "" {
			rejectUnauthenticated(c)
			return
		}

		if err := utils.ParseAdminToken(secret, tokenString); err != nil {
			rejectUnauthenticated(c)
			return
		}

		c.Next()
	}
}

func rejectUnauthenticated(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		utils.SetFlash(c, "danger", "Unauthorized")
	}
	c.Redirect(http.StatusFound, "/admin/login")
	c.Abort()
}
