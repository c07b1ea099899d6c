package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/render"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// ClaimsKey is the context key of the verified session claims
const ClaimsKey = "claims"

// LocalAuthHandler serves login, registration and logout.
type LocalAuthHandler struct {
	DB       *database.DBinstanceStruct
	Sessions *SessionManager
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler.
func NewLocalAuthHandler(db *database.DBinstanceStruct, sessions *SessionManager) *LocalAuthHandler {
	return &LocalAuthHandler{
		DB:       db,
		Sessions: sessions,
	}
}

type loginInfo struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Remember bool   `form:"remember" json:"remember"`
	Next     string `form:"next" json:"next"`
}

// RegistrableRoles are offered on the registration form
var RegistrableRoles = []model.Role{model.RoleJobSeeker, model.RoleRecruiter}

func redirectIfLoggedIn(c *gin.Context) bool {
	if _, err := utilities.ExtractUser(c); err == nil {
		render.Redirect(c, render.DashboardRoute)
		return true
	}
	return false
}

// LoginPage renders the login form
// @Summary Login form
// @Tags Auth
// @Produce html,json
// @Param next query string false "Local path to return to after login"
// @Success 200 {object} map[string]interface{}
// @Success 303 "Already logged in, redirect to /dashboard"
// @Router /login [get]
func (h *LocalAuthHandler) LoginPage(c *gin.Context) {
	if redirectIfLoggedIn(c) {
		return
	}
	render.Page(c, http.StatusOK, "login.html", gin.H{
		"title": "Login",
		"email": "",
		"next":  SafeNext(c.Query("next")),
	})
}

// Login checks email and password and starts a session
// @Summary Login with email and password
// @Description On success the session cookie is set and the client is sent to next or /dashboard.
// @Description A failed attempt re-renders the form with one opaque message.
// @Tags Auth
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param Info body loginInfo true "Credentials"
// @Success 303 {object} map[string]interface{} "Session created, access_token returned to JSON clients"
// @Success 200 {object} map[string]interface{} "Form re-rendered with an error notice"
// @Failure 429 {object} utilities.ErrorResponse "Too many attempts"
// @Router /login [post]
func (h *LocalAuthHandler) Login(c *gin.Context) {
	if redirectIfLoggedIn(c) {
		return
	}

	var info loginInfo
	if err := c.ShouldBind(&info); err != nil {
		info = loginInfo{}
	}
	next := SafeNext(c.Query("next"))
	if next == "" {
		next = SafeNext(info.Next)
	}

	user, err := Authenticate(h.DB.DB, info.Email, info.Password)
	if err != nil {
		var verrs utilities.ValidationErrors
		if !errors.As(err, &verrs) && !errors.Is(err, utilities.ErrInvalidCredentials) {
			render.ServerError(c, err)
			return
		}
		LogAuthAttempt(slog.LevelWarn, "Login", StatusFail, info.Email, utilities.UserMessage(err))
		render.AddFlash(c, render.FlashError, utilities.UserMessage(err))
		render.Page(c, http.StatusOK, "login.html", gin.H{
			"title": "Login",
			"email": info.Email,
			"next":  next,
		})
		return
	}

	token, _, err := h.Sessions.Issue(user.ID, info.Remember)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	h.Sessions.SetCookie(c, token, info.Remember)
	LogAuthAttempt(slog.LevelInfo, "Login", StatusSuccess, fmt.Sprint(user.ID), "")

	if next == "" {
		next = render.DashboardRoute
	}
	render.AddFlash(c, render.FlashSuccess, fmt.Sprintf("Welcome back, %s!", user.DisplayName()))
	render.RedirectWith(c, next, gin.H{
		"user":         user,
		"access_token": token,
	})
}

// RegisterPage renders the registration form
// @Summary Registration form
// @Tags Auth
// @Produce html,json
// @Success 200 {object} map[string]interface{}
// @Router /register [get]
func (h *LocalAuthHandler) RegisterPage(c *gin.Context) {
	if redirectIfLoggedIn(c) {
		return
	}
	render.Page(c, http.StatusOK, "register.html", gin.H{
		"title": "Register",
		"form":  RegisterInput{Role: string(model.RoleJobSeeker)},
		"roles": RegistrableRoles,
	})
}

// Register creates a job seeker or recruiter account
// @Summary Register a new account
// @Description Every violated rule is reported at once. Email and username must be unused.
// @Tags Auth
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param Info body RegisterInput true "role can be only 'job_seeker' or 'recruiter'"
// @Success 303 {object} map[string]interface{} "Account created, redirect to /login"
// @Success 200 {object} map[string]interface{} "Form re-rendered with errors"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /register [post]
func (h *LocalAuthHandler) Register(c *gin.Context) {
	if redirectIfLoggedIn(c) {
		return
	}
	uow, err := database.GetUnitOfWork(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}

	var in RegisterInput
	if err := c.ShouldBind(&in); err != nil {
		in = RegisterInput{}
	}

	user, err := Register(uow.Tx(), in)
	var verrs utilities.ValidationErrors
	switch {
	case errors.As(err, &verrs), errors.Is(err, utilities.ErrConflict):
		LogAuthAttempt(slog.LevelWarn, "Register", StatusFail, in.Email, utilities.UserMessage(err))
		if len(verrs) > 0 {
			render.AddFlashes(c, render.FlashError, verrs.Messages())
		} else {
			render.AddFlash(c, render.FlashError, utilities.UserMessage(err))
		}
		in.Password, in.ConfirmPassword = "", ""
		render.Page(c, http.StatusOK, "register.html", gin.H{
			"title": "Register",
			"form":  in,
			"roles": RegistrableRoles,
		})
		return
	case err != nil:
		render.ServerError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		render.ServerError(c, err)
		return
	}
	LogAuthAttempt(slog.LevelInfo, "Register", StatusSuccess, fmt.Sprint(user.ID), string(user.Role))

	render.AddFlash(c, render.FlashSuccess, "Registration successful! Please login.")
	render.RedirectWith(c, "/login", gin.H{"user": user})
}

// Logout revokes the current session
// @Summary Logout
// @Tags Auth
// @Produce html,json
// @Success 303 "Session revoked, redirect to /"
// @Router /logout [get]
func (h *LocalAuthHandler) Logout(c *gin.Context) {
	claims, err := extractClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.Sessions.Revoke(claims); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to logout"})
		return
	}
	h.Sessions.ClearCookie(c)
	LogAuthAttempt(slog.LevelInfo, "Logout", StatusSuccess, claims.Subject, "")

	render.Redirect(c, "/")
}

func extractClaims(c *gin.Context) (*jwt.RegisteredClaims, error) {
	claims, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	realClaims, okCast := claims.(*jwt.RegisteredClaims)
	if !okCast {
		return nil, fmt.Errorf("invalid token claims type")
	}
	return realClaims, nil
}
