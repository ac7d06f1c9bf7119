package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/Adryeh/Portfolio-Creator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioLifecycle(t *testing.T) {
	_, app := setupTestServer(t)
	cookie := registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	// Without a portfolio, the portfolio page sends the user to creation.
	resp := getWithCookie(t, app, "/portfolio", cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/create_portfolio", resp.Header.Get("Location"))

	// Create.
	resp = postForm(t, app, "/create_portfolio", url.Values{
		"title":   {"My Work"},
		"content": {"things I built"},
		"school":  {"MIT"},
	}, cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/portfolio", resp.Header.Get("Location"))

	// Read back.
	resp = getWithCookie(t, app, "/portfolio", cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var portfolio models.Portfolio
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&portfolio))
	assert.Equal(t, "My Work", portfolio.Title)
	assert.Equal(t, "alice", portfolio.Author)
	assert.Equal(t, models.DefaultBackgroundColor, portfolio.BackgroundColor)
	assert.Equal(t, models.DefaultFontColor, portfolio.FontColor)

	// A second create is refused.
	resp = postForm(t, app, "/create_portfolio", url.Values{"title": {"Another"}}, cookie)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, models.CodeAlreadyExists, decodeErrorResponse(t, resp).Code)

	// Delete, then the portfolio page redirects to creation again.
	resp = postForm(t, app, "/port/delete", nil, cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp = getWithCookie(t, app, "/portfolio", cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/create_portfolio", resp.Header.Get("Location"))
}

func TestUpdatePortfolio_OmittedFieldsKeepValues(t *testing.T) {
	_, app := setupTestServer(t)
	cookie := registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	resp := postForm(t, app, "/create_portfolio", url.Values{
		"title":   {"Original"},
		"content": {"original content"},
		"school":  {"MIT"},
	}, cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// Only the title is in the form; everything else must survive.
	resp = postForm(t, app, "/portfolio/update", url.Values{
		"title": {"Renamed"},
	}, cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/portfolio", resp.Header.Get("Location"))

	resp = getWithCookie(t, app, "/portfolio", cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var portfolio models.Portfolio
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&portfolio))
	assert.Equal(t, "Renamed", portfolio.Title)
	assert.Equal(t, "original content", portfolio.Content)
	assert.Equal(t, "MIT", portfolio.School)
}

func TestUpdatePortfolio_ExplicitEmptyFieldClears(t *testing.T) {
	_, app := setupTestServer(t)
	cookie := registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	resp := postForm(t, app, "/create_portfolio", url.Values{
		"title":   {"Original"},
		"content": {"something"},
	}, cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = postForm(t, app, "/portfolio/update", url.Values{
		"content": {""},
	}, cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = getWithCookie(t, app, "/portfolio", cookie)
	defer resp.Body.Close()

	var portfolio models.Portfolio
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&portfolio))
	assert.Equal(t, "", portfolio.Content)
	assert.Equal(t, "Original", portfolio.Title)
}

func TestUpdatePortfolio_WithoutPortfolioRedirectsToCreate(t *testing.T) {
	_, app := setupTestServer(t)
	cookie := registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	resp := postForm(t, app, "/portfolio/update", url.Values{"title": {"Renamed"}}, cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/create_portfolio", resp.Header.Get("Location"))
}

func TestCreatePortfolio_MissingTitle(t *testing.T) {
	_, app := setupTestServer(t)
	cookie := registerAndLogin(t, app, "alice", "alice@example.com", "password123")

	resp := postForm(t, app, "/create_portfolio", url.Values{"content": {"no title"}}, cookie)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, models.CodeValidation, decodeErrorResponse(t, resp).Code)
}

func TestPortfoliosAreIsolatedPerUser(t *testing.T) {
	_, app := setupTestServer(t)
	aliceCookie := registerAndLogin(t, app, "alice", "alice@example.com", "password123")
	bobCookie := registerAndLogin(t, app, "bob", "bob@example.com", "password123")

	resp := postForm(t, app, "/create_portfolio", url.Values{"title": {"Alice's"}}, aliceCookie)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// One user owning a portfolio does not block another.
	resp = postForm(t, app, "/create_portfolio", url.Values{"title": {"Bob's"}}, bobCookie)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// Each sees only their own.
	resp = getWithCookie(t, app, "/portfolio", bobCookie)
	defer resp.Body.Close()
	var portfolio models.Portfolio
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&portfolio))
	assert.Equal(t, "Bob's", portfolio.Title)
	assert.Equal(t, "bob", portfolio.Author)
}
