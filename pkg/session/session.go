// Package session implements the cookie-backed session: an HS256-signed
// token carrying {user_id, username, role}, plus one-shot flash messages.
package session

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/anjalishikhare80/event-management-system/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSession = errors.New("no active session")

type Claims struct {
	UserID   int64       `json:"user_id"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret     []byte
	cookieName string
	expiration time.Duration
}

func NewManager(secret, cookieName string, expiration time.Duration) *Manager {
	if cookieName == "" {
		cookieName = "session"
	}
	if expiration <= 0 {
		expiration = 720 * time.Hour
	}
	return &Manager{
		secret:     []byte(secret),
		cookieName: cookieName,
		expiration: expiration,
	}
}

// Issue signs a session token for the user and sets it as a cookie.
func (m *Manager) Issue(c *gin.Context, user *entity.User) error {
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	c.SetCookie(m.cookieName, signed, int(m.expiration.Seconds()), "/", "", false, true)
	return nil
}

// Current returns the claims of the active session, or ErrNoSession.
func (m *Manager) Current(c *gin.Context) (*Claims, error) {
	raw, err := c.Cookie(m.cookieName)
	if err != nil || raw == "" {
		return nil, ErrNoSession
	}
	return m.Parse(raw)
}

func (m *Manager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}
	return claims, nil
}

// Clear drops the session cookie unconditionally.
func (m *Manager) Clear(c *gin.Context) {
	c.SetCookie(m.cookieName, "", -1, "/", "", false, true)
}

const flashCookie = "flash"

// Flash stores a one-shot notice shown on the next rendered page.
func Flash(c *gin.Context, category, message string) {
	value := url.QueryEscape(category + "|" + message)
	c.SetCookie(flashCookie, value, 60, "/", "", false, false)
}

// TakeFlash reads and clears the pending flash message, if any.
func TakeFlash(c *gin.Context) (category, message string, ok bool) {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return "", "", false
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, false)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", "", false
	}
	for i := 0; i < len(decoded); i++ {
		if decoded[i] == '|' {
			return decoded[:i], decoded[i+1:], true
		}
	}
	return "info", decoded, true
}
