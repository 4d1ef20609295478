package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/usergate/internal/client/client/clienttest"
	"github.com/dmitrijs2005/usergate/internal/client/services"
	"github.com/dmitrijs2005/usergate/internal/client/session"
	"github.com/dmitrijs2005/usergate/internal/common"
	"github.com/dmitrijs2005/usergate/internal/logging"
)

type testEnv struct {
	router http.Handler
	gate   *services.Gate
	store  *session.MemoryStore
	fake   *clienttest.Fake
	csrf   *CSRF
}

// newEnv builds the full router over an in-memory store and a fake API.
// The gate is initialized unless loading is true.
func newEnv(t *testing.T, token string, loading bool) *testEnv {
	t.Helper()

	store := session.NewMemoryStore(token)
	fc := clienttest.New()
	log := logging.Discard()

	gate := services.NewGate(store, fc, log)
	if !loading {
		gate.Init(context.Background())
	}
	dir := services.NewDirectory(fc, log)
	csrf, err := NewCSRF("test-secret", time.Hour)
	require.NoError(t, err)

	h := NewHandler(gate, services.NewUserList(dir), dir, csrf, log, 1500*time.Millisecond)
	return &testEnv{router: NewRouter(h), gate: gate, store: store, fake: fc, csrf: csrf}
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// post submits form; a CSRF token is added unless form already has one.
func (e *testEnv) post(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	if form == nil {
		form = url.Values{}
	}
	if !form.Has(CSRFField) {
		tok, err := e.csrf.Issue()
		require.NoError(t, err)
		form.Set(CSRFField, tok)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestLoadingPhase(t *testing.T) {
	e := newEnv(t, "stored", true)

	for _, p := range []string{"/", "/login", "/dashboard", "/edit/2", "/nowhere"} {
		rec := e.get(t, p)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, p)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"), p)
		assert.Contains(t, rec.Body.String(), "Loading...", p)
	}

	e.gate.Init(context.Background())
	assert.Equal(t, http.StatusOK, e.get(t, "/dashboard").Code)
}

func TestRootAlwaysRedirectsToLogin(t *testing.T) {
	for _, token := range []string{"", "stored"} {
		e := newEnv(t, token, false)

		rec := e.get(t, "/")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, PathLogin, rec.Header().Get("Location"))
	}
}

func TestProtectedRoutesRedirectWhenUnauthenticated(t *testing.T) {
	e := newEnv(t, "", false)

	for _, p := range []string{"/dashboard", "/dashboard?page=2", "/edit/2", "/dashboard/users/2/delete"} {
		rec := e.get(t, p)
		assert.Equal(t, http.StatusFound, rec.Code, p)
		assert.Equal(t, PathLogin, rec.Header().Get("Location"), p)
	}

	rec := e.post(t, "/dashboard/users/2/delete", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	_, _, _, deletes := e.fake.Calls()
	assert.Zero(t, deletes)
}

func TestUnknownPathIsNotFound(t *testing.T) {
	e := newEnv(t, "stored", false)
	assert.Equal(t, http.StatusNotFound, e.get(t, "/settings").Code)
}

func TestRequestIDHeader(t *testing.T) {
	e := newEnv(t, "", false)
	rec := e.get(t, "/login")
	assert.Len(t, rec.Header().Get(requestIDHeader), 36)
}

func TestLoginForm(t *testing.T) {
	e := newEnv(t, "", false)

	rec := e.get(t, "/login")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="eve.holt@reqres.in"`)
	assert.Contains(t, body, `value="cityslicka"`)
	assert.Contains(t, body, `name="csrf_token"`)
}

func TestLoginSuccess(t *testing.T) {
	e := newEnv(t, "", false)

	rec := e.post(t, "/login", url.Values{"email": {clienttest.Email}, "password": {clienttest.Password}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, PathDashboard, rec.Header().Get("Location"))
	assert.True(t, e.gate.IsAuthenticated())

	tok, err := e.store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, clienttest.Token, tok)

	assert.Equal(t, http.StatusOK, e.get(t, "/dashboard").Code)
}

func TestLoginFailureShowsMessage(t *testing.T) {
	e := newEnv(t, "", false)

	tests := []struct {
		name     string
		password string
		fakeErr  error
		want     string
	}{
		{name: "server message", password: "", want: "Missing password"},
		{name: "wrong password", password: "nope", want: "user not found"},
		{name: "transport", password: clienttest.Password, fakeErr: common.ErrUnavailable, want: "Login failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.fake.SetErr(&e.fake.LoginErr, tt.fakeErr)

			rec := e.post(t, "/login", url.Values{"email": {clienttest.Email}, "password": {tt.password}})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.False(t, e.gate.IsAuthenticated())
		})
	}
}

func TestPostWithoutCSRFIsForbidden(t *testing.T) {
	e := newEnv(t, "", false)

	for _, tok := range []string{"", "garbage"} {
		rec := e.post(t, "/login", url.Values{
			"email":    {clienttest.Email},
			"password": {clienttest.Password},
			CSRFField:  {tok},
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	}
	login, _, _, _ := e.fake.Calls()
	assert.Zero(t, login)
	assert.False(t, e.gate.IsAuthenticated())
}

func TestLogout(t *testing.T) {
	e := newEnv(t, "stored", false)

	rec := e.post(t, "/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, PathLogin, rec.Header().Get("Location"))
	assert.False(t, e.gate.IsAuthenticated())

	tok, _ := e.store.Get(context.Background())
	assert.Empty(t, tok)

	assert.Equal(t, http.StatusFound, e.get(t, "/dashboard").Code)
}

func TestDashboardPagingAndSearch(t *testing.T) {
	e := newEnv(t, "stored", false)

	body := e.get(t, "/dashboard").Body.String()
	assert.Contains(t, body, "George Bluth")
	assert.NotContains(t, body, "Michael Lawson")
	assert.Contains(t, body, `href="/dashboard?page=2"`)

	body = e.get(t, "/dashboard?page=2").Body.String()
	assert.Contains(t, body, "Michael Lawson")
	assert.Contains(t, body, `href="/dashboard?page=2" class="active"`)

	body = e.get(t, "/dashboard?q=george").Body.String()
	assert.Contains(t, body, "George Edwards")
	assert.NotContains(t, body, "Rachel Howell")

	// The term survives a page change.
	body = e.get(t, "/dashboard?page=1").Body.String()
	assert.Contains(t, body, "George Bluth")
	assert.NotContains(t, body, "Janet Weaver")
	assert.Contains(t, body, `value="george"`)

	body = e.get(t, "/dashboard?q=zzz").Body.String()
	assert.Contains(t, body, "No users found")

	_, lists, _, _ := e.fake.Calls()
	assert.Equal(t, 3, lists)
}

func TestDashboardListFailureKeepsPrevious(t *testing.T) {
	e := newEnv(t, "stored", false)

	e.get(t, "/dashboard")
	e.fake.SetErr(&e.fake.ListErr, common.ErrLoadFailed)

	rec := e.get(t, "/dashboard?page=2")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "George Bluth")
}

func TestDashboardFirstLoadFailureShowsEmptyState(t *testing.T) {
	e := newEnv(t, "stored", false)
	e.fake.SetErr(&e.fake.ListErr, common.ErrLoadFailed)

	rec := e.get(t, "/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "Loading users...")
	assert.Contains(t, body, "No users found")
	assert.Contains(t, body, `href="/dashboard?page=1"`)

	e.fake.SetErr(&e.fake.ListErr, nil)
	assert.Contains(t, e.get(t, "/dashboard").Body.String(), "George Bluth")
}

func TestLinksAreNotWrappedAroundButtons(t *testing.T) {
	e := newEnv(t, "stored", false)

	for _, path := range []string{"/dashboard", "/edit/2", "/dashboard/users/2/delete"} {
		body := e.get(t, path).Body.String()
		assert.Contains(t, body, `class="button`, path)
		assert.NotRegexp(t, `<a [^>]*>\s*<button`, body, path)
	}
}

func TestDeleteFlow(t *testing.T) {
	e := newEnv(t, "stored", false)
	e.get(t, "/dashboard")

	rec := e.get(t, "/dashboard/users/2/delete")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Are you sure you want to delete Janet Weaver's profile?")

	rec = e.post(t, "/dashboard/users/2/delete", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, PathDashboard, rec.Header().Get("Location"))

	body := e.get(t, "/dashboard").Body.String()
	assert.NotContains(t, body, `id="user-2"`)
	assert.Contains(t, body, `id="user-1"`)
	assert.Contains(t, body, `id="user-3"`)

	// Confirmation for a record no longer listed goes back to the list.
	rec = e.get(t, "/dashboard/users/2/delete")
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestDeleteFailureIsIgnored(t *testing.T) {
	e := newEnv(t, "stored", false)
	e.get(t, "/dashboard")
	e.fake.SetErr(&e.fake.DeleteErr, common.ErrDeleteIgnored)

	rec := e.post(t, "/dashboard/users/2/delete", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, e.get(t, "/dashboard").Body.String(), `id="user-2"`)
}

func TestEditForm(t *testing.T) {
	e := newEnv(t, "stored", false)

	rec := e.get(t, "/edit/2")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="Janet"`)
	assert.Contains(t, body, `value="janet.weaver@reqres.in"`)
	assert.Contains(t, body, "https://reqres.in/img/faces/2-image.jpg")

	rec = e.get(t, "/edit/99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load user data")

	assert.Equal(t, http.StatusNotFound, e.get(t, "/edit/abc").Code)
}

func TestEditSaveSuccess(t *testing.T) {
	e := newEnv(t, "stored", false)

	rec := e.post(t, "/edit/2", url.Values{
		"first_name": {"Janet"},
		"last_name":  {"Weaver-Smith"},
		"email":      {"janet@reqres.in"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Profile updated successfully!")
	assert.Contains(t, body, "url=/dashboard?page=1")
	assert.Contains(t, body, "1500")
	assert.Equal(t, "Weaver-Smith", e.fake.LastUpdate.LastName)
}

func TestEditSaveFailureStaysOnPage(t *testing.T) {
	e := newEnv(t, "stored", false)
	e.fake.SetErr(&e.fake.UpdateErr, common.ErrUpdateFailed)

	rec := e.post(t, "/edit/2", url.Values{
		"first_name": {"Janet"},
		"last_name":  {"Weaver"},
		"email":      {"janet.new@reqres.in"},
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Failed to update user")
	assert.Contains(t, body, `value="janet.new@reqres.in"`)
	assert.NotContains(t, body, "Profile updated successfully!")
	assert.NotContains(t, body, "http-equiv")
}

func TestEditSaveInvalidForm(t *testing.T) {
	e := newEnv(t, "stored", false)

	rec := e.post(t, "/edit/2", url.Values{
		"first_name": {"Janet"},
		"last_name":  {"Weaver"},
		"email":      {"not-an-email"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email must be a valid email address")

	_, _, updates, _ := e.fake.Calls()
	assert.Zero(t, updates)
}
