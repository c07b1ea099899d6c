package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/sadhna1118/job-portal-website/internal/auth"
	"github.com/sadhna1118/job-portal-website/internal/config"
	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/storage"
	"github.com/sadhna1118/job-portal-website/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var teardown func(context.Context, ...testcontainers.TerminateOption) error
	teardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
	os.Exit(code)
}

func newTestServer(t *testing.T, rate uint) (*MyServer, http.Handler) {
	s := &MyServer{
		Config: &config.Config{
			Port:               8080,
			MaxUploadBytes:     1 << 20,
			RateLimitPerSecond: rate,
			AllowOrigin:        "http://localhost:3000",
		},
		DB:       testDB,
		Storage:  storage.NewLocalClient(t.TempDir()),
		Sessions: auth.NewTestSessionManager(t),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	h, err := s.RegisterRoutes()
	require.NoError(t, err)
	return s, h
}

func get(h http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndMetrics(t *testing.T) {
	_, h := newTestServer(t, 5)

	rec := get(h, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"up"`)

	// the previous request is recorded by the request logger
	rec = get(h, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `jobportal_http_requests_total{method="GET",route="/health",status="200"}`)
}

func TestPagesRender(t *testing.T) {
	_, h := newTestServer(t, 5)

	for _, path := range []string{"/", "/jobs", "/login", "/register", fmt.Sprintf("/job/%d", database.TestJob1.ID)} {
		rec := get(h, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html", path)
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"), path)
	}

	rec := get(h, "/no/such/page", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProtectedRoutesRedirectToLogin(t *testing.T) {
	_, h := newTestServer(t, 5)

	for _, path := range []string{"/dashboard", "/my-applications", "/saved-jobs", "/recruiter/job/new", "/admin/dashboard"} {
		rec := get(h, path, nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/login?next="+url.QueryEscape(path), rec.Header().Get("Location"), path)
	}
}

func TestRoleGroups(t *testing.T) {
	s, h := newTestServer(t, 5)

	tests := []struct {
		name    string
		email   string
		allowed []string
		denied  []string
	}{
		{
			name:    "job seeker",
			email:   database.TestSeeker1.Email,
			allowed: []string{"/job-seeker/dashboard", "/my-applications", "/saved-jobs"},
			denied:  []string{"/recruiter/dashboard", "/recruiter/job/new", "/admin/users"},
		},
		{
			name:    "recruiter",
			email:   database.TestRecruiter1.Email,
			allowed: []string{"/recruiter/dashboard", "/recruiter/job/new"},
			denied:  []string{"/my-applications", "/saved-jobs", "/admin/jobs"},
		},
		{
			name:    "admin",
			email:   database.TestAdminUser.Email,
			allowed: []string{"/admin/dashboard", "/admin/users", "/admin/jobs"},
			denied:  []string{"/job-seeker/dashboard", "/recruiter/dashboard"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := auth.GetAccessToken(t, testDB, s.Sessions, tt.email, database.TestSeedPassword)
			require.NoError(t, err)
			header := http.Header{
				"Accept": {"application/json"},
				"Cookie": {testutil.SessionCookie + "=" + token},
			}
			for _, path := range tt.allowed {
				assert.Equal(t, http.StatusOK, get(h, path, header).Code, path)
			}
			for _, path := range tt.denied {
				rec := get(h, path, header)
				assert.Equal(t, http.StatusSeeOther, rec.Code, path)
				assert.Equal(t, "/dashboard", rec.Header().Get("Location"), path)
			}
		})
	}
}

func TestLoginRateLimited(t *testing.T) {
	_, h := newTestServer(t, 1)

	codes := []int{}
	for range 3 {
		rec, _ := testutil.MakeFormRequest(url.Values{
			"email":    {"nobody@example.com"},
			"password": {"wrong-password"},
		}, "", h.(*gin.Engine), "/login", http.MethodPost)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}

func TestCORS(t *testing.T) {
	_, h := newTestServer(t, 5)

	req := httptest.NewRequest(http.MethodOptions, "/jobs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
