package utils

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// flashCookieName carries a single pending notice between a redirect and
// the next rendered page.
const flashCookieName = "notice"

// Flash is a one-shot, severity-tagged notice shown on the next page.
type Flash struct {
	Level   string
	Message string
}

// SetFlash queues a notice for the next rendered page.
func SetFlash(c *gin.Context, level, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(level + "|" + message))
	c.SetCookie(flashCookieName, value, 300, "/", "", false, true)
}

// PopFlash returns the pending notice, if any, and clears it so it is
// shown exactly once.
func PopFlash(c *gin.Context) *Flash {
	value, err := c.Cookie(flashCookieName)
	if err != nil || value == "" {
		return nil
	}

	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}

	level, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return nil
	}
	return &Flash{Level: level, Message: message}
}

// ReadFlashCookie extracts the notice from a raw cookie list. Intended for
// asserting flash behavior from outside a request context.
func ReadFlashCookie(cookies []*http.Cookie) *Flash {
	for _, cookie := range cookies {
		if cookie.Name != flashCookieName || cookie.Value == "" {
			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
		if err != nil {
			return nil
		}
		level, message, found := strings.Cut(string(decoded), "|")
		if !found {
			return nil
		}
		return &Flash{Level: level, Message: message}
	}
	return nil
}
