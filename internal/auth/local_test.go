package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

var testDB *database.DBinstanceStruct
var testTeardown func(context.Context, ...testcontainers.TerminateOption) error

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	var err error
	testTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := testTeardown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "teardown error: %v\n", err)
	}
	os.Exit(code)
}

// withUnitOfWork runs h inside a transaction the way the UnitOfWork middleware does.
func withUnitOfWork(t *testing.T, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		uow, err := testDB.NewUnitOfWork(c.Request.Context())
		require.NoError(t, err)
		defer func() { _ = uow.Rollback() }()
		database.SetUnitOfWork(c, uow)
		h(c)
	}
}

func flashMessages(resp map[string]interface{}) []string {
	var out []string
	list, _ := resp["flashes"].([]interface{})
	for _, f := range list {
		if m, ok := f.(map[string]interface{}); ok {
			out = append(out, fmt.Sprint(m["message"]))
		}
	}
	return out
}

func validRegistration(suffix string) map[string]string {
	return map[string]string{
		"username":         "user_" + suffix,
		"email":            suffix + "@Example.com",
		"password":         "secret1",
		"confirm_password": "secret1",
		"full_name":        "User " + suffix,
		"phone":            "0800000000",
		"role":             "job_seeker",
	}
}

func TestRegisterValidationCollectsAllErrors(t *testing.T) {
	in := RegisterInput{Username: "ab", Email: "nope", Password: "123", ConfirmPassword: "1234", Role: "admin"}
	err := in.Validate()
	require.Error(t, err)

	var verrs utilities.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.ElementsMatch(t, []string{
		utilities.MsgUsernameTooShort,
		utilities.MsgEmailInvalid,
		utilities.MsgPasswordTooShort,
		utilities.MsgPasswordsMismatch,
		utilities.MsgFullNameRequired,
		utilities.MsgRoleInvalid,
	}, verrs.Messages())

	ok := RegisterInput{Username: "bob", Email: "b@x.com", Password: "secret1", ConfirmPassword: "secret1", FullName: "Bob", Role: "recruiter"}
	assert.NoError(t, ok.Validate())
}

func TestRegisterAndLogin(t *testing.T) {
	sessions := NewTestSessionManager(t)
	handler := NewLocalAuthHandler(testDB, sessions)
	payload := validRegistration("alice")

	rec, resp, err := utilities.SimulateAPICall(withUnitOfWork(t, handler.Register), "/register", http.MethodPost, payload, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, rec.Code, "body: %s", rec.Body.String())
	assert.Equal(t, "/login", resp["redirect"])
	assert.Contains(t, flashMessages(resp), "Registration successful! Please login.")

	var stored model.User
	require.NoError(t, testDB.Where("username = ?", "user_alice").First(&stored).Error)
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.Equal(t, model.RoleJobSeeker, stored.Role)
	assert.NotEqual(t, "secret1", stored.PasswordHash)

	// email is matched case-insensitively
	token, err := GetAccessToken(t, testDB, sessions, "ALICE@example.com", "secret1")
	require.NoError(t, err)

	claims, err := sessions.Parse(token)
	require.NoError(t, err)
	id, err := UserID(claims)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, id)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	handler := NewLocalAuthHandler(testDB, NewTestSessionManager(t))
	payload := validRegistration("dup_email")
	payload["email"] = database.TestSeeker1.Email

	var before int64
	require.NoError(t, testDB.Model(&model.User{}).Count(&before).Error)

	rec, resp, err := utilities.SimulateAPICall(withUnitOfWork(t, handler.Register), "/register", http.MethodPost, payload, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Email already registered"}, flashMessages(resp))

	var after int64
	require.NoError(t, testDB.Model(&model.User{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	handler := NewLocalAuthHandler(testDB, NewTestSessionManager(t))
	payload := validRegistration("dup_name")
	payload["username"] = database.TestSeeker1.Username

	rec, resp, err := utilities.SimulateAPICall(withUnitOfWork(t, handler.Register), "/register", http.MethodPost, payload, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Username already taken"}, flashMessages(resp))
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	handler := NewLocalAuthHandler(testDB, NewTestSessionManager(t))
	payload := validRegistration("sneaky")
	payload["role"] = "admin"

	rec, resp, err := utilities.SimulateAPICall(withUnitOfWork(t, handler.Register), "/register", http.MethodPost, payload, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{utilities.MsgRoleInvalid}, flashMessages(resp))

	form, _ := resp["form"].(map[string]interface{})
	assert.Empty(t, form["password"], "password must not be echoed back")
}

func TestLoginSuccessRedirectsToNext(t *testing.T) {
	handler := NewLocalAuthHandler(testDB, NewTestSessionManager(t))
	payload := map[string]string{
		"email":    database.TestRecruiter1.Email,
		"password": database.TestSeedPassword,
	}

	rec, resp, err := utilities.SimulateAPICall(handler.Login, "/login?next=/recruiter/job/new", http.MethodPost, payload, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, rec.Code, "body: %s", rec.Body.String())
	assert.Equal(t, "/recruiter/job/new", resp["redirect"])
	assert.Contains(t, flashMessages(resp), "Welcome back, Rita Recruiter!")
	assert.NotEmpty(t, resp["access_token"])

	var sessionCookie bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookie && ck.Value != "" {
			sessionCookie = true
		}
	}
	assert.True(t, sessionCookie)
}

func TestLoginIgnoresForeignNext(t *testing.T) {
	handler := NewLocalAuthHandler(testDB, NewTestSessionManager(t))
	payload := map[string]string{
		"email":    database.TestSeeker1.Email,
		"password": database.TestSeedPassword,
	}

	rec, resp, err := utilities.SimulateAPICall(handler.Login, "/login?next=//evil.example", http.MethodPost, payload, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", resp["redirect"])
}

func TestLoginFailuresAreOpaque(t *testing.T) {
	handler := NewLocalAuthHandler(testDB, NewTestSessionManager(t))

	for name, payload := range map[string]map[string]string{
		"wrong password": {"email": database.TestSeeker1.Email, "password": "WrongPass999!"},
		"unknown email":  {"email": "nobody@example.com", "password": database.TestSeedPassword},
	} {
		t.Run(name, func(t *testing.T) {
			rec, resp, err := utilities.SimulateAPICall(handler.Login, "/login", http.MethodPost, payload, nil)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, []string{"Invalid email or password"}, flashMessages(resp))
			assert.NotContains(t, resp, "access_token")
		})
	}
}

func TestLoginMissingFields(t *testing.T) {
	handler := NewLocalAuthHandler(testDB, NewTestSessionManager(t))
	rec, resp, err := utilities.SimulateAPICall(handler.Login, "/login", http.MethodPost, map[string]string{"email": ""}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{utilities.MsgCredentialsNeeded}, flashMessages(resp))
}

func TestLoginPageRedirectsAuthenticatedUser(t *testing.T) {
	handler := NewLocalAuthHandler(testDB, NewTestSessionManager(t))
	rec, resp, err := utilities.SimulateAPICall(handler.LoginPage, "/login", http.MethodGet, nil, database.TestSeeker1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", resp["redirect"])
}

func TestLogoutRevokesSession(t *testing.T) {
	sessions := NewTestSessionManager(t)
	handler := NewLocalAuthHandler(testDB, sessions)

	token, err := GetAccessToken(t, testDB, sessions, database.TestSeeker2.Email, database.TestSeedPassword)
	require.NoError(t, err)
	claims, err := sessions.Parse(token)
	require.NoError(t, err)

	logout := func(c *gin.Context) {
		c.Set(ClaimsKey, claims)
		handler.Logout(c)
	}
	rec, resp, err := utilities.SimulateAPICall(logout, "/logout", http.MethodGet, nil, database.TestSeeker2)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", resp["redirect"])

	_, err = sessions.Parse(token)
	assert.ErrorIs(t, err, ErrSessionRevoked)
}

func TestLogoutMissingClaims(t *testing.T) {
	handler := NewLocalAuthHandler(testDB, NewTestSessionManager(t))
	rec, resp, err := utilities.SimulateAPICall(handler.Logout, "/logout", http.MethodGet, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token claims", resp["error"])
}
