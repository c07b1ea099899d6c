package render

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Flash categories
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

const (
	flashCookie = "flash"
	flashKey    = "render.flashes"
	flashMaxAge = 60
)

// Flash is a one-time notice shown on the next page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// AddFlash queues a notice for the next rendered page.
func AddFlash(c *gin.Context, category, message string) {
	c.Set(flashKey, append(pendingFlashes(c), Flash{Category: category, Message: message}))
}

// AddFlashes queues one notice per message.
func AddFlashes(c *gin.Context, category string, messages []string) {
	for _, m := range messages {
		AddFlash(c, category, m)
	}
}

func pendingFlashes(c *gin.Context) []Flash {
	if v, ok := c.Get(flashKey); ok {
		if f, ok := v.([]Flash); ok {
			return f
		}
	}
	return []Flash{}
}

// takeFlashes returns flashes carried by the cookie followed by queued ones and clears both.
func takeFlashes(c *gin.Context) []Flash {
	var flashes []Flash
	if raw, err := c.Cookie(flashCookie); err == nil && raw != "" {
		flashes = decodeFlashes(raw)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}
	flashes = append(flashes, pendingFlashes(c)...)
	c.Set(flashKey, []Flash{})
	if flashes == nil {
		flashes = []Flash{}
	}
	return flashes
}

func writeFlashCookie(c *gin.Context, flashes []Flash) {
	if len(flashes) == 0 {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, encodeFlashes(flashes), flashMaxAge, "/", "", false, true)
}

func encodeFlashes(flashes []Flash) string {
	b, _ := json.Marshal(flashes)
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodeFlashes(raw string) []Flash {
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(b, &flashes); err != nil {
		return nil
	}
	return flashes
}
