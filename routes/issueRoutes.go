package routes

import (
	"civicreport-be/controllers"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the public reporting routes
func IssueRoutes(r *gin.Engine, ic *controllers.IssueController) {
	r.GET("/", ic.ShowForm)
	r.POST("/report", ic.ReportIssue)
	r.GET("/uploads/:filename", ic.ServeUpload)
}
