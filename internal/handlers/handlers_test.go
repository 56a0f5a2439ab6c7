package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stormcreate/stormblog/internal/auth"
	"github.com/stormcreate/stormblog/internal/repository"
	"github.com/stormcreate/stormblog/internal/routes"
)

var testSecret = []byte("handlers-test-secret")

// newTestApp wires the full route table against an absent backend, the
// same degraded mode the server runs in when MONGO_URI is unset.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	routes.Register(app, routes.Deps{
		DB:        nil,
		Auth:      auth.NewService(repository.NewUserRepository(nil), testSecret),
		Secret:    testSecret,
		Admins:    map[string]struct{}{"admin@example.com": {}},
		UploadDir: t.TempDir(),
	})
	return app
}

func doReq(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func sessionCookie(t *testing.T, sess *auth.Session) *http.Cookie {
	t.Helper()
	token, err := auth.IssueToken(testSecret, sess)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func TestHomeRendersEmptyStateWithoutBackend(t *testing.T) {
	app := newTestApp(t)

	resp, body := doReq(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "No posts published yet.")
	assert.Contains(t, body, "No reviews yet. Be the first!")
}

func TestBlogRendersEmptyState(t *testing.T) {
	app := newTestApp(t)

	resp, body := doReq(t, app, httptest.NewRequest(http.MethodGet, "/blog?q=anything&page=3", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No posts found.")
}

func TestPostDetailAbsentPost(t *testing.T) {
	app := newTestApp(t)

	// A well-formed id that matches nothing renders the placeholder,
	// not an error page.
	resp, body := doReq(t, app, httptest.NewRequest(http.MethodGet, "/post?id=507f1f77bcf86cd799439011", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Post not found or deleted.")

	// So does a malformed one.
	resp, body = doReq(t, app, httptest.NewRequest(http.MethodGet, "/post?id=garbage", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Post not found or deleted.")
}

func TestVisitorCookieIsAssigned(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doReq(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == "stormblog_visitor" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "first visit sets the visitor cookie")
}

func TestCreateCommentValidation(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/507f1f77bcf86cd799439011/comments",
		strings.NewReader(`{"author":"","text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := doReq(t, app, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "author and text are required")

	req = httptest.NewRequest(http.MethodPost, "/api/posts/not-hex/comments",
		strings.NewReader(`{"author":"a","text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = doReq(t, app, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateCommentWithoutBackend(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/507f1f77bcf86cd799439011/comments",
		strings.NewReader(`{"author":"Ada","text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := doReq(t, app, req)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestLoginWithoutBackend(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := doReq(t, app, req)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestReviewRequiresSession(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reviews",
		strings.NewReader(`{"text":"great","rating":5}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := doReq(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestReviewWithSessionButNoBackend(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reviews",
		strings.NewReader(`{"text":"great","rating":5}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, &auth.Session{UserID: "507f1f77bcf86cd799439011", Email: "ada@example.com"}))
	resp, _ := doReq(t, app, req)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestAdminPageShowsLoginWhenAnonymous(t *testing.T) {
	app := newTestApp(t)

	resp, body := doReq(t, app, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Sign in")
	assert.NotContains(t, body, "New post")
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/posts",
		strings.NewReader(`{"title":"t","content":"c"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := doReq(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// A signed-in session whose email is not on the allowlist is
	// rejected with 403, not 401.
	req = httptest.NewRequest(http.MethodPost, "/api/admin/posts",
		strings.NewReader(`{"title":"t","content":"c"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, &auth.Session{UserID: "507f1f77bcf86cd799439011", Email: "user@example.com"}))
	resp, _ = doReq(t, app, req)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestThemeToggleSetsCookie(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	resp, _ := doReq(t, app, req)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var theme string
	for _, c := range resp.Cookies() {
		if c.Name == "stormblog_theme" {
			theme = c.Value
		}
	}
	assert.Equal(t, "dark", theme, "default light flips to dark")
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)

	resp, body := doReq(t, app, httptest.NewRequest(http.MethodGet, "/api/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}
