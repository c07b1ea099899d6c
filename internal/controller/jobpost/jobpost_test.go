package jobpost

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/sadhna1118/job-portal-website/internal/auth"
	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/middleware"
	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/render"
	"github.com/sadhna1118/job-portal-website/internal/storage"
	"github.com/sadhna1118/job-portal-website/internal/testutil"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
	os.Exit(code)
}

func setupRouter(t *testing.T, store storage.Client) (*gin.Engine, *auth.SessionManager) {
	sessions := auth.NewTestSessionManager(t)
	jc := NewJobPostController(testDB, store)

	r := gin.New()
	r.Use(middleware.OptionalAuth(testDB, sessions))
	r.GET("/jobs", jc.GetPosts)
	r.GET("/job/:id", jc.GetPostByID)

	rec := r.Group("/recruiter",
		middleware.RequireAuth(testDB, sessions),
		middleware.CheckRole(model.RoleRecruiter))
	rec.GET("/job/new", jc.NewPostPage)
	rec.POST("/job/new", middleware.UnitOfWork(testDB), jc.CreateJobPostHandler)
	rec.GET("/job/:id/edit", jc.EditPostPage)
	rec.POST("/job/:id/edit", middleware.UnitOfWork(testDB), jc.EditJobPost)
	rec.POST("/job/:id/delete", middleware.UnitOfWork(testDB), jc.DeleteJobPost)
	return r, sessions
}

func login(t *testing.T, sessions *auth.SessionManager, user model.User) string {
	token, err := auth.GetAccessToken(t, testDB, sessions, user.Email, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

func jobTitles(resp map[string]interface{}) []string {
	var titles []string
	jobs, _ := resp["jobs"].([]interface{})
	for _, j := range jobs {
		titles = append(titles, j.(map[string]interface{})["title"].(string))
	}
	return titles
}

func createJob(t *testing.T, recruiter model.User, title string) model.Job {
	job := model.Job{
		RecruiterID: recruiter.ID,
		EditableJobInfo: model.EditableJobInfo{
			Title:       title,
			Company:     "Scratch Co",
			Location:    "Nowhere",
			JobType:     "contract",
			Description: "Temporary posting.",
		},
		Status: model.JobStatusClosed,
	}
	require.NoError(t, testDB.Create(&job).Error)
	t.Cleanup(func() { _, _ = database.DeleteJob(testDB.DB, job.ID) })
	return job
}

func TestGetPosts_noFilter(t *testing.T) {
	r, _ := setupRouter(t, nil)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/jobs", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{
		database.TestJob4.Title,
		database.TestJob3.Title,
		database.TestJob2.Title,
		database.TestJob1.Title,
	}, jobTitles(resp), "only active jobs, newest first")
	assert.Equal(t, float64(4), resp["total"])
	assert.Equal(t, float64(1), resp["page"])
	assert.Equal(t, false, resp["has_next"])
	assert.Empty(t, resp["saved_job_ids"])
}

func TestGetPosts_filters(t *testing.T) {
	r, _ := setupRouter(t, nil)

	tests := []struct {
		query string
		want  []string
	}{
		{"search=Engineer", []string{database.TestJob3.Title, database.TestJob1.Title}},
		{"search=technova", []string{database.TestJob2.Title, database.TestJob1.Title}},
		{"location=bangkok", []string{database.TestJob4.Title, database.TestJob1.Title}},
		{"type=contract", []string{database.TestJob3.Title}},
		{"type=all&experience=Mid", []string{database.TestJob2.Title}},
		{"min_salary=100000", []string{database.TestJob1.Title}},
		{"min_salary=abc", []string{database.TestJob4.Title, database.TestJob3.Title, database.TestJob2.Title, database.TestJob1.Title}},
		{"search=nothing-matches-this", nil},
	}
	for _, tt := range tests {
		rec, resp := testutil.MakeJSONRequest(nil, "", r, "/jobs?"+tt.query, http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code, tt.query)
		assert.Equal(t, tt.want, jobTitles(resp), tt.query)
	}
}

func TestGetPosts_pastLastPage(t *testing.T) {
	r, _ := setupRouter(t, nil)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/jobs?page=2", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, jobTitles(resp))
	assert.Equal(t, float64(2), resp["page"])
	assert.Equal(t, float64(4), resp["total"])
	assert.Equal(t, true, resp["has_prev"])
}

func TestGetPosts_savedMarkers(t *testing.T) {
	r, sessions := setupRouter(t, nil)

	_, err := database.ToggleSave(testDB.DB, database.TestSeeker1.ID, database.TestJob3.ID)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = database.ToggleSave(testDB.DB, database.TestSeeker1.ID, database.TestJob3.ID) })

	rec, resp := testutil.MakeJSONRequest(nil, login(t, sessions, database.TestSeeker1), r, "/jobs", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{float64(database.TestJob3.ID)}, resp["saved_job_ids"])
}

func TestGetPostByID_success(t *testing.T) {
	r, _ := setupRouter(t, nil)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/job/%d", database.TestJob1.ID), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	detail := resp["detail"].(map[string]interface{})
	job := detail["job"].(map[string]interface{})
	assert.Equal(t, float64(database.TestJob1.ID), job["id"])
	assert.Equal(t, database.TestJob1.Title, job["title"])
	assert.Equal(t, database.TestRecruiter1.Username, job["recruiter"].(map[string]interface{})["username"])
	assert.Equal(t, false, detail["has_applied"])

	similar := detail["similar_jobs"].([]interface{})
	require.Len(t, similar, 1, "same company, active, not itself")
	assert.Equal(t, database.TestJob2.Title, similar[0].(map[string]interface{})["title"])
}

func TestGetPostByID_closedJobStillVisible(t *testing.T) {
	r, _ := setupRouter(t, nil)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/job/%d", database.TestClosedJob.ID), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	job := resp["detail"].(map[string]interface{})["job"].(map[string]interface{})
	assert.Equal(t, "closed", job["status"])
}

func TestGetPostByID_notFound(t *testing.T) {
	r, _ := setupRouter(t, nil)

	for _, path := range []string{"/job/999999", "/job/abc"} {
		rec, _ := testutil.MakeJSONRequest(nil, "", r, path, http.MethodGet)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestGetPostByID_html(t *testing.T) {
	r, _ := setupRouter(t, nil)
	tmpl, err := render.LoadTemplates()
	require.NoError(t, err)
	r.SetHTMLTemplate(tmpl)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/job/%d", database.TestJob1.ID), nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), database.TestJob1.Title)
	assert.Contains(t, rec.Body.String(), "Login to apply")
}

func TestCreateJobPost_success(t *testing.T) {
	r, sessions := setupRouter(t, nil)
	token := login(t, sessions, database.TestRecruiter2)

	form := url.Values{
		"title":       {"  Platform Engineer "},
		"company":     {"DataForge"},
		"location":    {"Remote"},
		"job_type":    {"full-time"},
		"experience":  {"Senior"},
		"salary":      {"90,000-110,000"},
		"skills":      {"Go, Terraform"},
		"description": {"Run the platform."},
	}
	rec, resp := testutil.MakeFormRequest(form, token, r, "/recruiter/job/new", http.MethodPost)
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	assert.Equal(t, auth.RecruiterDashboard, rec.Header().Get("Location"))
	assert.Equal(t, []string{"Job posted successfully!"}, testutil.FlashMessages(resp))

	id := uint(resp["job"].(map[string]interface{})["id"].(float64))
	t.Cleanup(func() { _, _ = database.DeleteJob(testDB.DB, id) })

	job, err := database.GetJob(testDB.DB, id)
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", job.Title)
	assert.Equal(t, database.TestRecruiter2.ID, job.RecruiterID)
	assert.Equal(t, model.JobStatusActive, job.Status)
	require.NotNil(t, job.SalaryMax)
	assert.Equal(t, 110000, *job.SalaryMax)
}

func TestCreateJobPost_validation(t *testing.T) {
	r, sessions := setupRouter(t, nil)
	token := login(t, sessions, database.TestRecruiter2)

	var before int64
	require.NoError(t, testDB.Model(&model.Job{}).Count(&before).Error)

	rec, resp := testutil.MakeFormRequest(url.Values{"company": {"X"}}, token, r, "/recruiter/job/new", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{
		utilities.MsgTitleRequired,
		utilities.MsgLocationRequired,
		utilities.MsgDescriptionNeeded,
	}, testutil.FlashMessages(resp))
	assert.Equal(t, "X", resp["form"].(map[string]interface{})["company"])

	var after int64
	require.NoError(t, testDB.Model(&model.Job{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestCreateJobPost_wrongRole(t *testing.T) {
	r, sessions := setupRouter(t, nil)

	rec, resp := testutil.MakeFormRequest(url.Values{}, login(t, sessions, database.TestSeeker1), r, "/recruiter/job/new", http.MethodPost)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	assert.Equal(t, []string{utilities.ErrForbidden.Error()}, testutil.FlashMessages(resp))
}

func TestEditJobPost_owner(t *testing.T) {
	r, sessions := setupRouter(t, nil)
	job := createJob(t, database.TestRecruiter1, "Old title")
	token := login(t, sessions, database.TestRecruiter1)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"title":       "New title",
		"company":     "Scratch Co",
		"location":    "Anywhere",
		"description": "Updated.",
		"salary":      "",
		"status":      "active",
	}, token, r, fmt.Sprintf("/recruiter/job/%d/edit", job.ID), http.MethodPost)
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"Job updated successfully!"}, testutil.FlashMessages(resp))

	got, err := database.GetJob(testDB.DB, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, "Anywhere", got.Location)
	assert.Equal(t, model.JobStatusActive, got.Status)
	assert.Nil(t, got.Salary)
	assert.Equal(t, database.TestRecruiter1.ID, got.RecruiterID)
}

func TestEditJobPost_invalidStatus(t *testing.T) {
	r, sessions := setupRouter(t, nil)
	job := createJob(t, database.TestRecruiter1, "Keep me")

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"title":       "Changed",
		"company":     "Scratch Co",
		"location":    "Anywhere",
		"description": "Updated.",
		"status":      "paused",
	}, login(t, sessions, database.TestRecruiter1), r, fmt.Sprintf("/recruiter/job/%d/edit", job.ID), http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{utilities.MsgJobStatusInvalid}, testutil.FlashMessages(resp))

	got, err := database.GetJob(testDB.DB, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keep me", got.Title, "nothing is written")
}

func TestOtherRecruiterIsForbidden(t *testing.T) {
	r, sessions := setupRouter(t, nil)
	token := login(t, sessions, database.TestRecruiter2)
	id := database.TestJob1.ID

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, fmt.Sprintf("/recruiter/job/%d/edit", id)},
		{http.MethodPost, fmt.Sprintf("/recruiter/job/%d/edit", id)},
		{http.MethodPost, fmt.Sprintf("/recruiter/job/%d/delete", id)},
	}
	for _, req := range requests {
		rec, resp := testutil.MakeJSONRequest(gin.H{"title": "Hijacked"}, token, r, req.path, req.method)
		assert.Equal(t, http.StatusSeeOther, rec.Code, req.path)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"), req.path)
		assert.Equal(t, []string{utilities.ErrForbidden.Error()}, testutil.FlashMessages(resp), req.path)
	}

	job, err := database.GetJob(testDB.DB, id)
	require.NoError(t, err)
	assert.Equal(t, database.TestJob1.Title, job.Title)
}

func TestDeleteJobPost_cascadesAndRemovesResumes(t *testing.T) {
	store := storage.NewLocalClient(t.TempDir())
	r, sessions := setupRouter(t, store)
	job := createJob(t, database.TestRecruiter1, "Doomed")

	resume := "resumes/test_doomed.pdf"
	require.NoError(t, store.UploadFile(context.Background(), resume, strings.NewReader("pdf")))
	doomed := model.Application{JobID: job.ID, UserID: database.TestSeeker1.ID, CoverLetter: "Hi", ResumeURL: &resume}
	require.NoError(t, testDB.Create(&doomed).Error)

	other := model.Application{JobID: database.TestJob2.ID, UserID: database.TestSeeker2.ID, CoverLetter: "Hello"}
	require.NoError(t, testDB.Create(&other).Error)
	t.Cleanup(func() { testDB.Delete(&model.Application{}, other.ID) })

	rec, resp := testutil.MakeJSONRequest(nil, login(t, sessions, database.TestRecruiter1), r, fmt.Sprintf("/recruiter/job/%d/delete", job.ID), http.MethodPost)
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"Job deleted successfully!"}, testutil.FlashMessages(resp))

	_, err := database.GetJob(testDB.DB, job.ID)
	assert.ErrorIs(t, err, utilities.ErrNotFound)
	_, err = database.GetApplication(testDB.DB, doomed.ID)
	assert.ErrorIs(t, err, utilities.ErrNotFound)
	_, err = database.GetApplication(testDB.DB, other.ID)
	assert.NoError(t, err, "applications to other jobs are untouched")

	_, _, err = store.DownloadFile(context.Background(), resume)
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}
