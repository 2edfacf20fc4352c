package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"civicreport-be/models"
	"civicreport-be/storage"
	"civicreport-be/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// IssueController serves the public reporting surface: the submission
// form, report intake and stored photo delivery.
type IssueController struct {
	store     *storage.Store
	uploadDir string
}

func NewIssueController(store *storage.Store, uploadDir string) *IssueController {
	return &IssueController{store: store, uploadDir: uploadDir}
}

// ShowForm renders the citizen submission form.
func (ic *IssueController) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Flash": utils.PopFlash(c),
	})
}

// ReportIssue handles a citizen submission. Validation failures abort the
// whole submission: no row is inserted and, except for a photo already
// written before a storage failure, no file is kept.
func (ic *IssueController) ReportIssue(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	issueType := strings.TrimSpace(c.PostForm("issue_type"))
	description := strings.TrimSpace(c.PostForm("description"))
	location := strings.TrimSpace(c.PostForm("location"))

	if email == "" || issueType == "" {
		utils.SetFlash(c, "danger", "Email and issue type required!")
		c.Redirect(http.StatusFound, "/")
		return
	}

	latitude, err := parseCoordinate(c.PostForm("latitude"))
	if err != nil {
		utils.SetFlash(c, "danger", "Latitude and longitude must be numbers")
		c.Redirect(http.StatusFound, "/")
		return
	}
	longitude, err := parseCoordinate(c.PostForm("longitude"))
	if err != nil {
		utils.SetFlash(c, "danger", "Latitude and longitude must be numbers")
		c.Redirect(http.StatusFound, "/")
		return
	}

	var imagePath *string
	if file, err := c.FormFile("photo"); err == nil {
		stored, err := utils.StoreUpload(file, ic.uploadDir)
		if errors.Is(err, utils.ErrFileType) {
			utils.SetFlash(c, "danger", "File type not allowed. Use png/jpg/jpeg/gif")
			c.Redirect(http.StatusFound, "/")
			return
		}
		if err != nil {
			log.WithError(err).Error("Failed to store uploaded photo")
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		if stored != "" {
			imagePath = &stored
		}
	}

	issue := models.Issue{
		Email:       email,
		IssueType:   issueType,
		Description: description,
		ImagePath:   imagePath,
		Location:    location,
		Latitude:    latitude,
		Longitude:   longitude,
		Status:      models.StatusOpen,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := ic.store.Insert(c.Request.Context(), issue); err != nil {
		// A photo stored above is left behind; file write and row insert
		// are not transactionally linked.
		log.WithError(err).Error("Failed to insert issue")
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	utils.SetFlash(c, "success", "Issue reported successfully! Thank you.")
	c.Redirect(http.StatusFound, "/")
}

// ServeUpload delivers a previously stored photo by its exact stored name.
func (ic *IssueController) ServeUpload(c *gin.Context) {
	name := c.Param("filename")
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(filepath.Join(ic.uploadDir, name))
}

// parseCoordinate turns optional form text into a nullable coordinate.
// Empty input is absent, not zero.
func parseCoordinate(text string) (*float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
