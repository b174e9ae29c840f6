package web

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deadline-tracker/internal/config"
)

func credentialsForm(username, password string) url.Values {
	return url.Values{
		"username": {username},
		"password": {password},
	}
}

func login(t *testing.T, s *Server, username, password string) []*http.Cookie {
	t.Helper()
	resp := doPostForm(t, s, "/login", credentialsForm(username, password), nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestSharedMode_UnauthenticatedRedirectsToLogin(t *testing.T) {
	s := newTestServer(t, config.AuthModeShared)

	for _, path := range []string{"/", "/dashboard", "/subjects", "/done/1"} {
		resp := doGet(t, s, path, nil)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "path %s", path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), "path %s", path)
	}
}

func TestSharedMode_HealthAndLoginStayOpen(t *testing.T) {
	s := newTestServer(t, config.AuthModeShared)

	resp := doGet(t, s, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doGet(t, s, "/login", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSharedMode_WrongCredentials(t *testing.T) {
	s := newTestServer(t, config.AuthModeShared)

	resp := doPostForm(t, s, "/login", credentialsForm("admin", "wrong"), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doPostForm(t, s, "/login", credentialsForm("other", "secret-pass"), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSharedMode_LoginThenBrowse(t *testing.T) {
	s := newTestServer(t, config.AuthModeShared)

	cookies := login(t, s, "admin", "secret-pass")

	resp := doGet(t, s, "/", cookies)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	addTask(t, s, "t", "2026-03-12", cookies)
	list := listTasks(t, s, "/", cookies)
	assert.Len(t, list.Tasks, 1)
}

func TestSharedMode_Logout(t *testing.T) {
	s := newTestServer(t, config.AuthModeShared)

	cookies := login(t, s, "admin", "secret-pass")

	resp := doGet(t, s, "/logout", cookies)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp = doGet(t, s, "/", cookies)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestSharedMode_NoRegistration(t *testing.T) {
	s := newTestServer(t, config.AuthModeShared)

	resp := doPostForm(t, s, "/register", credentialsForm("alice", "password1"), nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUsersMode_RegisterAndLogin(t *testing.T) {
	s := newTestServer(t, config.AuthModeUsers)

	resp := doPostForm(t, s, "/register", credentialsForm("alice", "password1"), nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	cookies := login(t, s, "alice", "password1")
	resp = doGet(t, s, "/", cookies)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUsersMode_RegisterDuplicate(t *testing.T) {
	s := newTestServer(t, config.AuthModeUsers)

	resp := doPostForm(t, s, "/register", credentialsForm("alice", "password1"), nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = doPostForm(t, s, "/register", credentialsForm("alice", "different2"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ErrorResponse
	decodeJSON(t, resp, &body)
	assert.Contains(t, body.Message, "already taken")
}

func TestUsersMode_RegisterInvalidInput(t *testing.T) {
	s := newTestServer(t, config.AuthModeUsers)

	resp := doPostForm(t, s, "/register", credentialsForm("bad name!", "password1"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doPostForm(t, s, "/register", credentialsForm("alice", "short"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUsersMode_WrongCredentials(t *testing.T) {
	s := newTestServer(t, config.AuthModeUsers)

	resp := doPostForm(t, s, "/register", credentialsForm("alice", "password1"), nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = doPostForm(t, s, "/login", credentialsForm("alice", "wrong-pass"), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doPostForm(t, s, "/login", credentialsForm("nobody", "password1"), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUsersMode_TasksAreIsolatedPerUser(t *testing.T) {
	s := newTestServer(t, config.AuthModeUsers)

	for _, creds := range [][2]string{{"alice", "password1"}, {"bob", "password2"}} {
		resp := doPostForm(t, s, "/register", credentialsForm(creds[0], creds[1]), nil)
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	}

	aliceCookies := login(t, s, "alice", "password1")
	bobCookies := login(t, s, "bob", "password2")

	addTask(t, s, "alice task", "2026-03-12", aliceCookies)

	assert.Len(t, listTasks(t, s, "/", aliceCookies).Tasks, 1)
	assert.Empty(t, listTasks(t, s, "/", bobCookies).Tasks)
}

func TestUsersMode_ActingOnForeignTaskRedirectsSilently(t *testing.T) {
	s := newTestServer(t, config.AuthModeUsers)

	for _, creds := range [][2]string{{"alice", "password1"}, {"bob", "password2"}} {
		resp := doPostForm(t, s, "/register", credentialsForm(creds[0], creds[1]), nil)
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	}

	aliceCookies := login(t, s, "alice", "password1")
	bobCookies := login(t, s, "bob", "password2")

	addTask(t, s, "alice task", "2026-03-12", aliceCookies)

	// Acting on another owner's task never surfaces an error page
	resp := doGet(t, s, "/done/1", bobCookies)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp = doPostForm(t, s, "/delete/1", nil, bobCookies)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// The task is untouched
	list := listTasks(t, s, "/", aliceCookies)
	require.Len(t, list.Tasks, 1)
	assert.False(t, list.Tasks[0].IsDone)
}

func TestUsersMode_UnauthenticatedRedirects(t *testing.T) {
	s := newTestServer(t, config.AuthModeUsers)

	resp := doGet(t, s, "/dashboard", nil)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
