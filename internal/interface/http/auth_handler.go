package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"authservice/internal/application"
	"authservice/internal/domain/repository"
	"authservice/internal/interface/middleware"
	"authservice/internal/session"
	"authservice/pkg/helpers"
	"authservice/pkg/response"
	"authservice/pkg/validation"
)

// Machine-readable error codes carried in the response envelope.
const (
	CodeMissingFields       = "MISSING_FIELDS"
	CodeInvalidUsername     = "INVALID_USERNAME"
	CodeInvalidPassword     = "INVALID_PASSWORD"
	CodeUsernameExists      = "USERNAME_EXISTS"
	CodeMissingCredentials  = "MISSING_CREDENTIALS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeNotAuthenticated    = "NOT_AUTHENTICATED"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeSessionDestroyError = "SESSION_DESTROY_ERROR"
)

// msgInternal is the only message storage or session failures may leak.
const msgInternal = "internal server error"

type AuthHandler struct {
	Svc      *application.AuthService
	Sessions session.Store
	Cookies  *helpers.Manager
	Logger   *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, sessions session.Store, cookies *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Sessions: sessions, Cookies: cookies, Logger: logger}
}

// userData is the outward shape of an account; the password hash never
// leaves the service.
func userData(id, username string) gin.H {
	return gin.H{"id": id, "username": username}
}

// bindBody decodes the JSON body into an untyped map so required-field
// validation can distinguish absent and null from falsy-but-present values.
// Malformed or empty bodies come back as an empty map.
func bindBody(c *gin.Context) map[string]any {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		return map[string]any{}
	}
	return body
}

// Register handles POST /auth/register. Validation fails fast in order:
// required fields, username shape, password length; then the store decides
// uniqueness.
func (h *AuthHandler) Register(c *gin.Context) {
	body := bindBody(c)

	if !validation.RequiredFields(body, []string{"username", "password"}) {
		response.Fail(c, http.StatusBadRequest, "username and password are required", CodeMissingFields)
		return
	}
	if !validation.Username(body["username"]) {
		response.Fail(c, http.StatusBadRequest, "username must be 3-20 characters of letters, numbers and underscores", CodeInvalidUsername)
		return
	}
	if !validation.Password(body["password"]) {
		response.Fail(c, http.StatusBadRequest, "password must be between 6 and 50 characters", CodeInvalidPassword)
		return
	}

	username := body["username"].(string)
	password := body["password"].(string)

	u, err := h.Svc.Register(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			response.Fail(c, http.StatusConflict, "username already exists", CodeUsernameExists)
			return
		}
		helpers.LogError(h.Logger, "registration failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Fail(c, http.StatusInternalServerError, msgInternal, CodeInternalError)
		return
	}

	response.OK(c, http.StatusCreated, "registration successful", userData(u.ID, u.Username))
}

// Login handles POST /auth/login. Unknown username and wrong password
// produce byte-identical responses.
func (h *AuthHandler) Login(c *gin.Context) {
	body := bindBody(c)

	if !validation.RequiredFields(body, []string{"username", "password"}) {
		response.Fail(c, http.StatusBadRequest, "username and password are required", CodeMissingCredentials)
		return
	}

	// Non-string values cannot match a stored username; the lookup below
	// fails the same way as any unknown username.
	username, _ := body["username"].(string)
	password, _ := body["password"].(string)

	u, err := h.Svc.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, "username or password is incorrect", CodeInvalidCredentials)
			return
		}
		helpers.LogError(h.Logger, "login failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Fail(c, http.StatusInternalServerError, msgInternal, CodeInternalError)
		return
	}

	token, err := h.Sessions.Create(c.Request.Context(), session.Principal{ID: u.ID, Username: u.Username})
	if err != nil {
		helpers.LogError(h.Logger, "session create failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Fail(c, http.StatusInternalServerError, msgInternal, CodeInternalError)
		return
	}
	h.Cookies.SetSession(c, token)

	response.OK(c, http.StatusOK, "login successful", userData(u.ID, u.Username))
}

// Logout handles POST /auth/logout. Idempotent: succeeding with no session,
// and on repeat calls, is expected.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := h.Cookies.Token(c)
	if token != "" {
		if err := h.Sessions.Destroy(c.Request.Context(), token); err != nil {
			helpers.LogError(h.Logger, "session destroy failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
			response.Fail(c, http.StatusInternalServerError, msgInternal, CodeSessionDestroyError)
			return
		}
	}
	h.Cookies.Clear(c)
	response.OK(c, http.StatusOK, "logout successful", nil)
}

// Me handles GET /auth/me: session introspection for the current principal.
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "not authenticated", CodeNotAuthenticated)
		return
	}
	u, err := h.Svc.Profile(c.Request.Context(), p.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The account vanished from under a live session.
			response.Fail(c, http.StatusUnauthorized, "not authenticated", CodeNotAuthenticated)
			return
		}
		helpers.LogError(h.Logger, "profile lookup failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Fail(c, http.StatusInternalServerError, msgInternal, CodeInternalError)
		return
	}
	response.OK(c, http.StatusOK, "authenticated", gin.H{
		"id":        u.ID,
		"username":  u.Username,
		"createdAt": u.CreatedAt,
	})
}
