package transport

import (
	"errors"

	"github.com/anjalishikhare80/event-management-system/internal/entity"
	"github.com/anjalishikhare80/event-management-system/internal/service"
	"github.com/anjalishikhare80/event-management-system/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	render(c, "signup.html", nil)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		session.Flash(c, "danger", "Username and password are required.")
		redirect(c, "/signup")
		return
	}

	if _, err := h.authService.Signup(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, entity.ErrUserExists):
			session.Flash(c, "danger", "Username already exists.")
		case errors.Is(err, entity.ErrInvalidCredentials):
			session.Flash(c, "danger", "Username and password are required.")
		default:
			logrus.WithError(err).Error("signup failed")
			session.Flash(c, "danger", "Signup failed, please try again.")
		}
		redirect(c, "/signup")
		return
	}

	session.Flash(c, "success", "Signup successful — please login.")
	redirect(c, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, "login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.authService.Login(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, entity.ErrInvalidCredentials) {
			logrus.WithError(err).Error("login failed")
		}
		session.Flash(c, "danger", "Invalid username or password.")
		redirect(c, "/login")
		return
	}

	if err := h.sessions.Issue(c, user); err != nil {
		logrus.WithError(err).Error("failed to issue session")
		session.Flash(c, "danger", "Login failed, please try again.")
		redirect(c, "/login")
		return
	}

	session.Flash(c, "success", "Welcome "+user.Username+"!")
	redirect(c, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	session.Flash(c, "info", "Logged out.")
	redirect(c, "/")
}
