package routes

import (
	"fmt"
	"html/template"
	"net/http"

	"civicreport-be/config"
	"civicreport-be/controllers"
	"civicreport-be/storage"
	"civicreport-be/templates"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the full HTTP surface onto a gin engine.
func NewRouter(cfg config.Config, store *storage.Store) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(templates.FS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	ac, err := controllers.NewAdminController(store, cfg)
	if err != nil {
		return nil, err
	}
	ic := controllers.NewIssueController(store, cfg.UploadDir)

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	IssueRoutes(r, ic)
	AdminRoutes(r, ac, []byte(cfg.SessionSecret))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	return r, nil
}
