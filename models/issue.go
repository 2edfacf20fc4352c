package models

import "fmt"

// StatusOpen is the status every new issue starts in. The field itself is
// free-form text: the admin surface may overwrite it with any value.
const StatusOpen = "open"

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID          int64    `json:"id"`
	Email       string   `json:"email"`
	IssueType   string   `json:"issueType"`
	Description string   `json:"description"`
	ImagePath   *string  `json:"imagePath,omitempty"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
}

// ImageName returns the stored upload filename, or "" when the report
// carries no photo.
func (i Issue) ImageName() string {
	if i.ImagePath == nil {
		return ""
	}
	return *i.ImagePath
}

// Coordinates renders "lat, lon" for display, or "" when either half is
// missing.
func (i Issue) Coordinates() string {
	if i.Latitude == nil || i.Longitude == nil {
		return ""
	}
	return fmt.Sprintf("%g, %g", *i.Latitude, *i.Longitude)
}
