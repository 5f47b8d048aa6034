package transport

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	repository "github.com/anjalishikhare80/event-management-system/internal/database/sqlite"
	"github.com/anjalishikhare80/event-management-system/internal/service"
	"github.com/anjalishikhare80/event-management-system/pkg/session"
	"github.com/anjalishikhare80/event-management-system/pkg/sqlite"
	"github.com/anjalishikhare80/event-management-system/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// Templates are loaded relative to the repository root.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := os.Chdir("../.."); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fixture struct {
	router *gin.Engine
	db     *sql.DB
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.RunMigrations(db))

	uploadDir := t.TempDir()

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	regRepo := repository.NewRegistrationRepository(db)

	sessions := session.NewManager("test-secret", "session", time.Hour)
	uploads := storage.NewFileStorage(uploadDir)

	authService := service.NewAuthService(userRepo)
	eventService := service.NewEventService(eventRepo)
	registrationService := service.NewRegistrationService(regRepo, eventRepo, uploads, t.TempDir())

	router := InitRoutes(
		sessions,
		NewAuthHandler(authService, sessions),
		NewEventHandler(eventService),
		NewRegistrationHandler(registrationService, eventService),
		NewParticipantHandler(registrationService, eventService),
		uploadDir,
		30*time.Second,
	)

	return &fixture{router: router, db: db}
}

func (f *fixture) do(t *testing.T, method, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("expected a session cookie")
	return nil
}

func (f *fixture) signupAndLogin(t *testing.T, username, password, role string) *http.Cookie {
	t.Helper()

	w := f.do(t, http.MethodPost, "/signup", url.Values{
		"username": {username}, "password": {password}, "role": {role},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = f.do(t, http.MethodPost, "/login", url.Values{
		"username": {username}, "password": {password},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	return sessionCookie(t, w)
}

func (f *fixture) eventID(t *testing.T, title string) int64 {
	t.Helper()

	var id int64
	require.NoError(t, f.db.QueryRow("SELECT id FROM events WHERE title = ?", title).Scan(&id))
	return id
}

func registerForm(t *testing.T, fields map[string]string, filename string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("payment_image", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestLoginInvalidCredentials(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/login", url.Values{
		"username": {"ghost"}, "password": {"nope"},
	}, nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	for _, cookie := range w.Result().Cookies() {
		assert.NotEqual(t, "session", cookie.Name)
	}
}

func TestDuplicateSignupRedirectsBack(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/signup", url.Values{
		"username": {"alice"}, "password": {"pw"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	w = f.do(t, http.MethodPost, "/signup", url.Values{
		"username": {"alice"}, "password": {"other"},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/signup", w.Header().Get("Location"))

	var count int
	require.NoError(t, f.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestCreateEventRequiresAdmin(t *testing.T) {
	f := newFixture(t)

	// anonymous
	w := f.do(t, http.MethodPost, "/create_event", url.Values{"title": {"Sneaky"}}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// participant session
	cookie := f.signupAndLogin(t, "bob", "pw", "participant")
	w = f.do(t, http.MethodPost, "/create_event", url.Values{"title": {"Sneaky"}}, []*http.Cookie{cookie})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var count int
	require.NoError(t, f.db.QueryRow("SELECT COUNT(*) FROM events").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestRegisterRejectsBadExtension(t *testing.T) {
	f := newFixture(t)

	admin := f.signupAndLogin(t, "admin", "pw", "admin")
	w := f.do(t, http.MethodPost, "/create_event", url.Values{"title": {"Hack Night"}}, []*http.Cookie{admin})
	require.Equal(t, http.StatusSeeOther, w.Code)
	eventID := f.eventID(t, "Hack Night")

	alice := f.signupAndLogin(t, "alice", "pw", "participant")

	body, contentType := registerForm(t, map[string]string{"full_name": "Alice Smith"}, "receipt.pdf")
	req := httptest.NewRequest(http.MethodPost, "/register_event/"+itoa(eventID), body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(alice)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)

	var count int
	require.NoError(t, f.db.QueryRow("SELECT COUNT(*) FROM registrations").Scan(&count))
	assert.Equal(t, 0, count)
}

// The full admin/participant round trip: event creation, registration with a
// valid payment proof, participant listing, CSV export.
func TestEventRegistrationScenario(t *testing.T) {
	f := newFixture(t)

	admin := f.signupAndLogin(t, "admin", "adminpw", "admin")

	w := f.do(t, http.MethodPost, "/create_event", url.Values{
		"title": {"Hack Night"},
		"date":  {"2024-05-01"},
		"fee":   {"0"},
	}, []*http.Cookie{admin})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
	eventID := f.eventID(t, "Hack Night")

	alice := f.signupAndLogin(t, "alice", "alicepw", "participant")

	body, contentType := registerForm(t, map[string]string{
		"full_name": "Alice Smith",
		"mobile":    "9999999999",
		"email":     "alice@example.com",
		"college":   "Springfield Tech",
		"year":      "3",
		"branch":    "CSE",
	}, "photo.png")
	req := httptest.NewRequest(http.MethodPost, "/register_event/"+itoa(eventID), body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(alice)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	// admin sees exactly one row for alice
	w = f.do(t, http.MethodGet, "/participants/"+itoa(eventID), nil, []*http.Cookie{admin})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.Contains(t, w.Body.String(), "Alice Smith")
	assert.Contains(t, w.Body.String(), "1 registered")
	assert.Equal(t, 1, strings.Count(w.Body.String(), "remove_participant"))

	// export yields header + one data row with alice's fields
	w = f.do(t, http.MethodGet, "/export_participants/"+itoa(eventID), nil, []*http.Cookie{admin})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "participants_event_")

	rows, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"full_name", "mobile", "email", "college", "year", "branch"}, rows[0])
	assert.Equal(t, []string{"Alice Smith", "9999999999", "alice@example.com", "Springfield Tech", "3", "CSE"}, rows[1])

	// remove alice and the listing is empty again
	var userID int64
	require.NoError(t, f.db.QueryRow("SELECT id FROM users WHERE username = ?", "alice").Scan(&userID))
	w = f.do(t, http.MethodGet, "/remove_participant/"+itoa(eventID)+"/"+itoa(userID), nil, []*http.Cookie{admin})
	require.Equal(t, http.StatusSeeOther, w.Code)

	var count int
	require.NoError(t, f.db.QueryRow("SELECT COUNT(*) FROM registrations").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestParticipantsRequiresAdmin(t *testing.T) {
	f := newFixture(t)

	alice := f.signupAndLogin(t, "alice", "pw", "participant")
	w := f.do(t, http.MethodGet, "/participants/1", nil, []*http.Cookie{alice})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
