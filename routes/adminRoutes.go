package routes

import (
	"civicreport-be/controllers"
	"civicreport-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AdminRoutes sets up the admin routes
func AdminRoutes(r *gin.Engine, ac *controllers.AdminController, secret []byte) {
	r.GET("/admin/login", ac.ShowLogin)
	r.POST("/admin/login", ac.Login)
	r.GET("/admin/logout", ac.Logout)

	admin := r.Group("/admin", middlewares.RequireAdmin(secret))
	{
		admin.GET("", ac.Dashboard)
		admin.POST("/update/:id", ac.UpdateStatus)
	}
}
