package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"civicreport-be/config"
	"civicreport-be/storage"
	"civicreport-be/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AdminController serves the operator surface: login, logout, the issue
// dashboard and status updates. There is a single administrator whose
// credentials come from configuration; the password is held only as a
// bcrypt hash after startup.
type AdminController struct {
	store         *storage.Store
	adminUser     string
	adminPassHash []byte
	secret        []byte
}

func NewAdminController(store *storage.Store, cfg config.Config) (*AdminController, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPass), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AdminController{
		store:         store,
		adminUser:     cfg.AdminUser,
		adminPassHash: hash,
		secret:        []byte(cfg.SessionSecret),
	}, nil
}

// ShowLogin renders the admin login form.
func (ac *AdminController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Flash": utils.PopFlash(c),
	})
}

// Login checks the submitted credentials. A match sets the signed session
// token cookie and redirects to the dashboard; a mismatch re-renders the
// login form with a notice.
func (ac *AdminController) Login(c *gin.Context) {
	user := c.PostForm("user")
	pass := c.PostForm("pass")

	if user == ac.adminUser && bcrypt.CompareHashAndPassword(ac.adminPassHash, []byte(pass)) == nil {
		token, err := utils.GenerateAdminToken(ac.secret)
		if err != nil {
			log.WithError(err).Error("Failed to generate admin token")
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		c.SetCookie(utils.AdminCookieName, token, int(utils.AdminTokenTTL.Seconds()), "/", "", false, true)
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Flash": &utils.Flash{Level: "danger", Message: "Invalid username or password"},
	})
}

// Logout clears the session token unconditionally and returns to the
// login form.
func (ac *AdminController) Logout(c *gin.Context) {
	c.SetCookie(utils.AdminCookieName, "", -1, "/", "", false, true)
	utils.SetFlash(c, "info", "Logged out")
	c.Redirect(http.StatusFound, "/admin/login")
}

// Dashboard lists every reported issue, newest first.
func (ac *AdminController) Dashboard(c *gin.Context) {
	issues, err := ac.store.ListAll(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list issues")
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Flash":  utils.PopFlash(c),
		"Issues": issues,
	})
}

// UpdateStatus sets one issue's status to whatever string was submitted.
// No enumeration is enforced, and an id that matches no row still reports
// success.
func (ac *AdminController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SetFlash(c, "danger", "Invalid issue id")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	status := c.DefaultPostForm("status", "open")

	if err := ac.store.UpdateStatus(c.Request.Context(), id, status); err != nil {
		log.WithError(err).Error("Failed to update issue status")
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	utils.SetFlash(c, "success", "Status updated")
	c.Redirect(http.StatusFound, "/admin")
}
