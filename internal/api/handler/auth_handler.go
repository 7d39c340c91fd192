package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/primelabel/labelview/internal/api/middleware"
	"github.com/primelabel/labelview/internal/core/domain"
	"github.com/primelabel/labelview/internal/core/ports"
	"github.com/primelabel/labelview/internal/session"
)

// AuthHandler serves the login, signup, logout, and OAuth callback routes.
type AuthHandler struct {
	auth         ports.AuthService
	gateway      ports.AuthGateway
	sessions     *session.Manager
	frontendBase string
	supportEmail string
	log          zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, gateway ports.AuthGateway, sessions *session.Manager, frontendBase, supportEmail string, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		gateway:      gateway,
		sessions:     sessions,
		frontendBase: frontendBase,
		supportEmail: supportEmail,
		log:          log,
	}
}

type loginRequest struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type loginPage struct {
	Page
	Email     string
	Error     string
	Notice    string
	GoogleURL string
}

func (h *AuthHandler) callbackURL() string {
	return h.frontendBase + "/oauth/callback"
}

// ShowLogin renders the login form. GET /login.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	page := loginPage{
		Page:      newPage(c, "Login", h.supportEmail),
		GoogleURL: h.gateway.GoogleAuthURL(h.callbackURL()),
	}
	if c.QueryParam("created") != "" {
		page.Notice = "Account created, you can sign in now"
	}
	return c.Render(http.StatusOK, "login.html", page)
}

// Login authenticates against the upstream and signs the session in.
// POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	page := loginPage{
		Page:      newPage(c, "Login", h.supportEmail),
		Email:     req.Email,
		GoogleURL: h.gateway.GoogleAuthURL(h.callbackURL()),
	}

	if err := c.Validate(&req); err != nil {
		page.Error = err.Error()
		return c.Render(http.StatusOK, "login.html", page)
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		page.Error = domain.UserMessage(err, "Invalid email or password")
		return c.Render(http.StatusOK, "login.html", page)
	}

	sess := middleware.CurrentSession(c)
	sess.Login(token, user)
	if err := h.sessions.Save(c, sess); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/lookup")
}

type signupRequest struct {
	FirstName string `form:"first_name" validate:"required"`
	LastName  string `form:"last_name"  validate:"required"`
	Email     string `form:"email"      validate:"required,email"`
	Password  string `form:"password"   validate:"required,min=8"`
}

type signupPage struct {
	Page
	FirstName string
	LastName  string
	Email     string
	Error     string
}

// ShowSignup renders the signup form. GET /signup.
func (h *AuthHandler) ShowSignup(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", signupPage{Page: newPage(c, "Sign Up", h.supportEmail)})
}

// Signup registers a new account upstream. POST /signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	page := signupPage{
		Page:      newPage(c, "Sign Up", h.supportEmail),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	if err := c.Validate(&req); err != nil {
		page.Error = err.Error()
		return c.Render(http.StatusOK, "signup.html", page)
	}

	err := h.auth.Signup(c.Request().Context(), ports.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		page.Error = domain.UserMessage(err, "Signup failed")
		return c.Render(http.StatusOK, "signup.html", page)
	}

	return c.Redirect(http.StatusFound, "/login?created=1")
}

// Logout clears the session and returns to the login entry point.
// GET /logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if err := h.sessions.Clear(c, sess); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/login")
}

// OAuthCallback finishes third-party sign-in. The upstream redirects here
// with ?token=... on success or ?error=...&message=... on failure.
// GET /oauth/callback.
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	if oauthErr := c.QueryParam("error"); oauthErr != "" {
		msg := c.QueryParam("message")
		if msg == "" {
			msg = "Sign-in was cancelled or failed"
		}
		h.log.Warn().Str("oauth_error", oauthErr).Msg("oauth callback returned an error")
		return h.renderCallbackError(c, msg)
	}

	token := c.QueryParam("token")
	if token == "" {
		return c.Redirect(http.StatusFound, "/login")
	}

	user, err := h.auth.CompleteOAuth(c.Request().Context(), token)
	if err != nil {
		return h.renderCallbackError(c, domain.UserMessage(err, "Could not complete sign-in"))
	}

	sess := middleware.CurrentSession(c)
	sess.Login(token, user)
	if err := h.sessions.Save(c, sess); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/lookup")
}

func (h *AuthHandler) renderCallbackError(c echo.Context, msg string) error {
	return c.Render(http.StatusOK, "oauth_error.html", struct {
		Page
		Message string
	}{
		Page:    newPage(c, "Sign-in failed", h.supportEmail),
		Message: msg,
	})
}
