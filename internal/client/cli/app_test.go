package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/usergate/internal/client/client/clienttest"
	"github.com/dmitrijs2005/usergate/internal/client/services"
	"github.com/dmitrijs2005/usergate/internal/client/session"
	"github.com/dmitrijs2005/usergate/internal/common"
	"github.com/dmitrijs2005/usergate/internal/logging"
)

type testApp struct {
	*App
	gate  *services.Gate
	store *session.MemoryStore
	fake  *clienttest.Fake
	out   *bytes.Buffer
}

// newTestApp builds an App over an in-memory store and a fake API; input
// feeds the prompts.
func newTestApp(t *testing.T, token, input string) *testApp {
	t.Helper()

	store := session.NewMemoryStore(token)
	fc := clienttest.New()
	log := logging.Discard()

	gate := services.NewGate(store, fc, log)
	gate.Init(context.Background())
	dir := services.NewDirectory(fc, log)

	var out bytes.Buffer
	a := newApp(gate, services.NewUserList(dir), dir, strings.NewReader(input), &out, log)
	return &testApp{App: a, gate: gate, store: store, fake: fc, out: &out}
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func TestLogin_Defaults(t *testing.T) {
	a := newTestApp(t, "", "\n")
	stubPassword(t, "")

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.gate.IsAuthenticated())
	assert.Contains(t, a.out.String(), "Login successful")

	tok, _ := a.store.Get(context.Background())
	assert.Equal(t, clienttest.Token, tok)
}

func TestLogin_Failure(t *testing.T) {
	a := newTestApp(t, "", "someone@reqres.in\n")
	stubPassword(t, "wrong")

	err := a.Login(context.Background())
	assert.ErrorIs(t, err, common.ErrAuthenticationFailed)
	assert.False(t, a.gate.IsAuthenticated())
	assert.Contains(t, a.out.String(), "user not found")
}

func TestLogout(t *testing.T) {
	a := newTestApp(t, "stored", "")
	ctx := context.Background()
	require.NoError(t, a.List(ctx))

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.gate.IsAuthenticated())
	assert.False(t, a.list.Snapshot().Loaded)
}

func TestListPageSearch(t *testing.T) {
	a := newTestApp(t, "stored", "")
	ctx := context.Background()

	require.NoError(t, a.List(ctx))
	out := a.out.String()
	assert.Contains(t, out, "George Bluth")
	assert.Contains(t, out, "page 1 of 2")

	a.out.Reset()
	require.NoError(t, a.Page(ctx, "2"))
	assert.Contains(t, a.out.String(), "Michael Lawson")

	a.out.Reset()
	require.NoError(t, a.Search(ctx, "george"))
	out = a.out.String()
	assert.Contains(t, out, "George Edwards")
	assert.NotContains(t, out, "Rachel Howell")
	assert.Contains(t, out, `search "george"`)

	a.out.Reset()
	require.NoError(t, a.Search(ctx, "zzz"))
	assert.Contains(t, a.out.String(), "No users found")

	assert.ErrorIs(t, a.Page(ctx, "zero"), common.ErrInvalidInput)
}

func TestList_FirstLoadFailure(t *testing.T) {
	a := newTestApp(t, "stored", "")
	a.fake.SetErr(&a.fake.ListErr, common.ErrLoadFailed)

	require.NoError(t, a.List(context.Background()))
	out := a.out.String()
	assert.NotContains(t, out, "No users loaded")
	assert.Contains(t, out, "No users found")
	assert.Contains(t, out, "page 1 of 1")
}

func TestShow(t *testing.T) {
	a := newTestApp(t, "stored", "")
	ctx := context.Background()

	require.NoError(t, a.Show(ctx, "2"))
	assert.Contains(t, a.out.String(), "janet.weaver@reqres.in")

	a.out.Reset()
	assert.ErrorIs(t, a.Show(ctx, "99"), common.ErrNotFound)
	assert.Contains(t, a.out.String(), services.MsgLoadUserFailed)

	assert.Error(t, a.Show(ctx, ""))
}

func TestEdit(t *testing.T) {
	a := newTestApp(t, "stored", "\nWeaver-Smith\n\n")

	require.NoError(t, a.Edit(context.Background(), "2"))
	assert.Equal(t, "Janet", a.fake.LastUpdate.FirstName)
	assert.Equal(t, "Weaver-Smith", a.fake.LastUpdate.LastName)
	assert.Equal(t, "janet.weaver@reqres.in", a.fake.LastUpdate.Email)
	assert.Contains(t, a.out.String(), services.MsgUpdated)
}

func TestEdit_Failures(t *testing.T) {
	a := newTestApp(t, "stored", "\n\nbroken\n\n\n\n")
	ctx := context.Background()

	err := a.Edit(ctx, "2")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Contains(t, a.out.String(), "Email must be a valid email address")

	a.out.Reset()
	a.fake.SetErr(&a.fake.UpdateErr, common.ErrUpdateFailed)
	err = a.Edit(ctx, "2")
	assert.ErrorIs(t, err, common.ErrUpdateFailed)
	assert.Contains(t, a.out.String(), services.MsgUpdateFailed)
}

func TestDelete(t *testing.T) {
	a := newTestApp(t, "stored", "n\ny\n")
	ctx := context.Background()
	require.NoError(t, a.List(ctx))

	require.NoError(t, a.Delete(ctx, "2"))
	_, found := a.list.Find(2)
	assert.True(t, found, "declined delete must keep the user")

	require.NoError(t, a.Delete(ctx, "2"))
	_, found = a.list.Find(2)
	assert.False(t, found)
	assert.Contains(t, a.out.String(), "Janet Weaver's profile")
	assert.Contains(t, a.out.String(), "Deleted")

	assert.ErrorIs(t, a.Delete(ctx, "2"), common.ErrNotFound)
}

func TestDelete_FailureIsSilent(t *testing.T) {
	a := newTestApp(t, "stored", "y\n")
	ctx := context.Background()
	require.NoError(t, a.List(ctx))
	a.fake.SetErr(&a.fake.DeleteErr, common.ErrDeleteIgnored)

	require.NoError(t, a.Delete(ctx, "2"))
	_, found := a.list.Find(2)
	assert.True(t, found)
	assert.NotContains(t, a.out.String(), "Deleted")
}

func TestStatusAndRun(t *testing.T) {
	captureOutput(t)
	a := newTestApp(t, "stored", "list\nstatus\nexit\n")
	a.init = a.gate.Init

	a.Run(context.Background())

	out := a.out.String()
	assert.Contains(t, out, "Welcome to usergate")
	assert.Contains(t, out, "session: authenticated")
	assert.Contains(t, out, "page 1 of 2, 6 shown")
}
