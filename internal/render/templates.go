package render

import (
	"embed"
	"html/template"
	"net/url"
	"strconv"
	"time"

	"github.com/sadhna1118/job-portal-website/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Funcs are the helpers available to page templates.
var Funcs = template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"formatDate": func(t time.Time) string {
		return t.Format("Jan 02, 2006")
	},
	"statusClass": func(s model.ApplicationStatus) string {
		switch s {
		case model.ApplicationStatusAccepted:
			return "success"
		case model.ApplicationStatusRejected:
			return "danger"
		case model.ApplicationStatusReviewed:
			return "info"
		default:
			return "warning"
		}
	},
	"pageURL": func(path string, query url.Values, page int) template.URL {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(page))
		return template.URL(path + "?" + q.Encode())
	},
}

// LoadTemplates parses every embedded page template.
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}
