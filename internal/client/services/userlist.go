package services

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/usergate/internal/client/models"
)

// ListView is a snapshot of the dashboard list state.
type ListView struct {
	Page       int
	TotalPages int
	Term       string
	// Loaded reports fetched data; Settled reports that a fetch has
	// completed, successfully or not.
	Loaded  bool
	Settled bool
	// All is the fetched page; Users is All filtered by Term.
	All   []models.User
	Users []models.User
}

// Pages enumerates 1..TotalPages for page navigation.
func (v ListView) Pages() []int {
	out := make([]int, max(v.TotalPages, 0))
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Pager is the part of Directory the list needs.
type Pager interface {
	Page(ctx context.Context, page int) (*models.UserPage, error)
	Delete(ctx context.Context, id int) bool
}

var _ Pager = (*Directory)(nil)

// UserList holds the process-wide dashboard state. Remote calls run without
// the lock held; each result is applied only after its own response.
type UserList struct {
	dir Pager

	mu         sync.Mutex
	page       int
	totalPages int
	loaded     bool
	settled    bool
	term       string
	all        []models.User
	filtered   []models.User
}

func NewUserList(dir Pager) *UserList {
	return &UserList{dir: dir, page: 1, totalPages: 1}
}

// Load moves the cursor to page and fetches it. On failure the previous
// records and total page count stay in place; before any data that is an
// empty list with a single page. A response for a page the
// cursor has since moved away from is dropped.
func (l *UserList) Load(ctx context.Context, page int) ListView {
	if page < 1 {
		page = 1
	}

	l.mu.Lock()
	l.page = page
	l.mu.Unlock()

	p, err := l.dir.Page(ctx, page)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.settled = true
	if err == nil && l.page == page {
		l.all = slices.Clone(p.Data)
		l.totalPages = p.TotalPages
		l.loaded = true
		l.filtered = FilterUsers(l.all, l.term)
	}
	return l.snapshotLocked()
}

// EnsureLoaded fetches the current page only when nothing has been loaded.
func (l *UserList) EnsureLoaded(ctx context.Context) ListView {
	l.mu.Lock()
	loaded, page := l.loaded, l.page
	if loaded {
		defer l.mu.Unlock()
		return l.snapshotLocked()
	}
	l.mu.Unlock()
	return l.Load(ctx, page)
}

// SetTerm re-filters the fetched records without a remote call.
func (l *UserList) SetTerm(term string) ListView {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.term = term
	l.filtered = FilterUsers(l.all, term)
	return l.snapshotLocked()
}

// Delete calls the remote delete and, only when it succeeds, removes the
// record from the fetched and filtered lists.
func (l *UserList) Delete(ctx context.Context, id int) bool {
	if !l.dir.Delete(ctx, id) {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	byID := func(u models.User) bool { return u.ID == id }
	l.all = slices.DeleteFunc(l.all, byID)
	l.filtered = slices.DeleteFunc(l.filtered, byID)
	return true
}

// Find returns a record from the fetched page.
func (l *UserList) Find(id int) (models.User, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.IndexFunc(l.all, func(u models.User) bool { return u.ID == id })
	if i < 0 {
		return models.User{}, false
	}
	return l.all[i], true
}

func (l *UserList) Snapshot() ListView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Reset forgets everything, e.g. after logout.
func (l *UserList) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.page, l.totalPages, l.loaded, l.settled, l.term = 1, 1, false, false, ""
	l.all, l.filtered = nil, nil
}

func (l *UserList) snapshotLocked() ListView {
	return ListView{
		Page:       l.page,
		TotalPages: l.totalPages,
		Term:       l.term,
		Loaded:     l.loaded,
		Settled:    l.settled,
		All:        slices.Clone(l.all),
		Users:      slices.Clone(l.filtered),
	}
}
