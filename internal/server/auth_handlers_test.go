package server

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/Adryeh/Portfolio-Creator/internal/middleware"
	"github.com/Adryeh/Portfolio-Creator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	_, app := setupTestServer(t)
	registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	resp := postForm(t, app, "/register", url.Values{
		"username":         {"alice"},
		"email":            {"other@example.com"},
		"password":         {"password123"},
		"confirm_password": {"password123"},
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeErrorResponse(t, resp)
	assert.Equal(t, models.CodeDuplicateUsername, body.Code)
}

func TestRegister_InvalidFormListsEveryField(t *testing.T) {
	_, app := setupTestServer(t)

	resp := postForm(t, app, "/register", url.Values{
		"username":         {"x"},
		"email":            {"broken"},
		"password":         {"one"},
		"confirm_password": {"two"},
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeErrorResponse(t, resp)
	assert.Equal(t, models.CodeValidation, body.Code)

	var fields []string
	for _, f := range body.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"username", "email", "confirm_password"}, fields)
}

func TestLogin_FailuresAreIdentical(t *testing.T) {
	_, app := setupTestServer(t)
	registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	wrongPass := postForm(t, app, "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"wrong"},
	}, nil)
	defer wrongPass.Body.Close()

	unknownEmail := postForm(t, app, "/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"whatever"},
	}, nil)
	defer unknownEmail.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, wrongPass.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.StatusCode)

	// Same status and same body: no hints about which emails are registered.
	assert.Equal(t, readBody(t, wrongPass), readBody(t, unknownEmail))
}

func TestLogin_NextParameterRoundTrip(t *testing.T) {
	_, app := setupTestServer(t)
	registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	// Anonymous request to a protected page captures the destination.
	resp := getWithCookie(t, app, "/account/achievements", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	location := resp.Header.Get("Location")
	require.Contains(t, location, "next=")

	// Logging in with that next field returns the user to the destination.
	resp = postForm(t, app, "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"password123"},
		"next":     {"/account/achievements"},
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/account/achievements", resp.Header.Get("Location"))
}

func TestLogin_NextWithEncodedCharactersSurvives(t *testing.T) {
	_, app := setupTestServer(t)
	registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	// The destination itself carries a percent-encoded space. The query
	// parameter is decoded exactly once, so the target must come back
	// byte for byte.
	target := "/portfolio?q=a%20b"
	resp := postForm(t, app, "/login?next="+url.QueryEscape(target), url.Values{
		"email":    {"alice@example.com"},
		"password": {"password123"},
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, target, resp.Header.Get("Location"))
}

func TestLogin_OpenRedirectRefused(t *testing.T) {
	_, app := setupTestServer(t)
	registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	resp := postForm(t, app, "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"password123"},
		"next":     {"https://evil.example.com/phish"},
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestLogin_RememberIssuesPersistentCookie(t *testing.T) {
	_, app := setupTestServer(t)
	registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	resp := postForm(t, app, "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"password123"},
		"remember": {"on"},
	}, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var found bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			found = true
			assert.False(t, cookie.Expires.IsZero(), "remembered session must outlive the browser")
		}
	}
	assert.True(t, found, "session cookie missing")
}

func TestLogin_MissingFieldsRejected(t *testing.T) {
	_, app := setupTestServer(t)

	resp := postForm(t, app, "/login", url.Values{}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeErrorResponse(t, resp)
	assert.Equal(t, models.CodeValidation, body.Code)
}

func TestLogout_ClearsSession(t *testing.T) {
	_, app := setupTestServer(t)
	cookie := registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	resp := getWithCookie(t, app, "/logout", cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must blank the session cookie")

	// The protected area is closed again without the cookie.
	resp = getWithCookie(t, app, "/account", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestRegisterForm_AuthenticatedUserSentHome(t *testing.T) {
	_, app := setupTestServer(t)
	cookie := registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	resp := getWithCookie(t, app, "/register", cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp = getWithCookie(t, app, "/login", cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}
