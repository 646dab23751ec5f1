package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/blogsphere/blogsphere-cli/internal/client/models"
	"github.com/blogsphere/blogsphere-cli/internal/client/session"
	"github.com/blogsphere/blogsphere-cli/internal/common"
	"github.com/blogsphere/blogsphere-cli/internal/logging"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// ------------ fakes ------------

type fakeCatalog struct {
	posts   []models.Post
	byID    map[string]*models.Post
	created *models.PostDraft
	updated map[string]models.PostDraft
}

func (f *fakeCatalog) FetchAll(ctx context.Context) ([]models.Post, error) { return f.posts, nil }

func (f *fakeCatalog) FetchOne(ctx context.Context, id string) (*models.Post, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeCatalog) Create(ctx context.Context, draft models.PostDraft, author *models.User) (*models.Post, error) {
	f.created = &draft
	return &models.Post{ID: "new-1", Title: draft.Title}, nil
}

func (f *fakeCatalog) Update(ctx context.Context, id string, draft models.PostDraft, author *models.User) error {
	if f.updated == nil {
		f.updated = map[string]models.PostDraft{}
	}
	f.updated[id] = draft
	return nil
}

type fakeWishlist struct {
	entries   []models.WishlistEntry
	loadCalls int
	toggled   []string
}

func (f *fakeWishlist) Load(ctx context.Context) error { f.loadCalls++; return nil }
func (f *fakeWishlist) Entries() []models.WishlistEntry {
	return f.entries
}
func (f *fakeWishlist) IsWishlisted(blogID string) bool {
	for _, e := range f.entries {
		if e.BlogID == blogID {
			return true
		}
	}
	return false
}
func (f *fakeWishlist) Toggle(ctx context.Context, post models.Post) (bool, error) {
	f.toggled = append(f.toggled, post.ID)
	return !f.IsWishlisted(post.ID), nil
}
func (f *fakeWishlist) Wait() {}

type fakeComments struct {
	remote    []models.Comment
	submitted []string
	submitErr error
}

func (f *fakeComments) Load(ctx context.Context, blogID string) ([]models.Comment, error) {
	return f.remote, nil
}

func (f *fakeComments) Submit(ctx context.Context, post models.Post, text string) (*models.Comment, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, text)
	return &models.Comment{ID: "c1", BlogID: post.ID, Text: text}, nil
}

type fakeProvider struct {
	user *models.User
	err  error
}

func (f *fakeProvider) SignIn(ctx context.Context, email string, password []byte) (*models.User, oauth2.TokenSource, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.user, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok"}), nil
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(_ context.Context, msg string) {
	n.successes = append(n.successes, msg)
}
func (n *recordingNotifier) Error(_ context.Context, msg string) {
	n.errors = append(n.errors, msg)
}

func newTestApp(t *testing.T, signedIn bool) (*App, *bytes.Buffer, *recordingNotifier) {
	t.Helper()
	sess := session.New()
	if signedIn {
		sess.SignIn(&models.User{Email: "ana@example.com", DisplayName: "Ana"}, nil)
	}
	var out bytes.Buffer
	n := &recordingNotifier{}
	a := &App{
		sess:     sess,
		provider: &fakeProvider{},
		catalog:  &fakeCatalog{},
		wishlist: &fakeWishlist{},
		comments: &fakeComments{},
		notifier: n,
		log:      logging.NewDiscardLogger(),
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      &out,
	}
	return a, &out, n
}

// ------------ tests ------------

func TestListBlogs_FilterByCategoryAndQuery(t *testing.T) {
	a, out, _ := newTestApp(t, false)
	a.catalog = &fakeCatalog{posts: []models.Post{
		{ID: "1", Category: "Technology", Title: "Go Basics"},
		{ID: "2", Category: "Travel", Title: "Rome Guide"},
	}}

	require.NoError(t, a.listBlogs(context.Background(), []string{"Technology", "go"}))
	require.Contains(t, out.String(), "Go Basics")
	require.NotContains(t, out.String(), "Rome Guide")
}

func TestListBlogs_NoMatch(t *testing.T) {
	a, out, _ := newTestApp(t, false)
	a.catalog = &fakeCatalog{posts: []models.Post{
		{ID: "1", Category: "Technology", Title: "Go Basics"},
	}}

	require.NoError(t, a.listBlogs(context.Background(), []string{"", "zzz"}))
	require.Contains(t, out.String(), "No blogs found.")
}

func TestListBlogs_MarksWishlistedPosts(t *testing.T) {
	a, out, _ := newTestApp(t, true)
	a.catalog = &fakeCatalog{posts: []models.Post{
		{ID: "1", Category: "Technology", Title: "Go Basics"},
		{ID: "2", Category: "Travel", Title: "Rome Guide"},
	}}
	a.wishlist = &fakeWishlist{entries: []models.WishlistEntry{{BlogID: "1"}}}

	require.NoError(t, a.listBlogs(context.Background(), nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "♥"), "wishlisted post carries a mark: %q", lines[0])
	require.False(t, strings.HasPrefix(lines[1], "♥"))
}

func TestToggleWishlist_FetchesPostThenToggles(t *testing.T) {
	a, out, _ := newTestApp(t, true)
	a.catalog = &fakeCatalog{byID: map[string]*models.Post{
		"5": {ID: "5", Title: "X"},
	}}
	wl := &fakeWishlist{}
	a.wishlist = wl

	require.NoError(t, a.toggleWishlist(context.Background(), "5"))
	require.Equal(t, []string{"5"}, wl.toggled)
	require.Contains(t, out.String(), "♥ X")
}

func TestToggleWishlist_UnknownBlog(t *testing.T) {
	a, _, n := newTestApp(t, true)

	err := a.toggleWishlist(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NotEmpty(t, n.errors)
}

func TestShowWishlist_Empty(t *testing.T) {
	a, out, _ := newTestApp(t, true)

	require.NoError(t, a.showWishlist(context.Background()))
	require.Contains(t, out.String(), "Your wishlist is empty.")
}

func TestAddComment_SelfCommentMessage(t *testing.T) {
	a, out, _ := newTestApp(t, true)
	a.catalog = &fakeCatalog{byID: map[string]*models.Post{
		"5": {ID: "5", Title: "X", AuthorEmail: "ana@example.com"},
	}}
	a.comments = &fakeComments{submitErr: common.ErrForbidden}
	a.reader = bufio.NewReader(strings.NewReader("nice\n\n"))

	err := a.addComment(context.Background(), "5")
	require.ErrorIs(t, err, common.ErrForbidden)
	require.Contains(t, out.String(), "You cannot comment on your own blog.")
}

func TestAddComment_Posts(t *testing.T) {
	a, _, n := newTestApp(t, true)
	a.catalog = &fakeCatalog{byID: map[string]*models.Post{
		"5": {ID: "5", Title: "X", AuthorEmail: "bob@example.com"},
	}}
	fc := &fakeComments{}
	a.comments = fc
	a.reader = bufio.NewReader(strings.NewReader("great read\n\n"))

	require.NoError(t, a.addComment(context.Background(), "5"))
	require.Equal(t, []string{"great read"}, fc.submitted)
	require.NotEmpty(t, n.successes)
}

func TestLogin_LoadsWishlist(t *testing.T) {
	a, _, n := newTestApp(t, false)
	a.provider = &fakeProvider{user: &models.User{Email: "ana@example.com"}}
	wl := &fakeWishlist{}
	a.wishlist = wl

	oldText, oldPw := getSimpleText, getPassword
	defer func() { getSimpleText, getPassword = oldText, oldPw }()
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return "ana@example.com", nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return []byte("pw"), nil
	}

	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isLoggedIn())
	require.Equal(t, 1, wl.loadCalls)
	require.NotEmpty(t, n.successes)
}

func TestLogout_ClearsSession(t *testing.T) {
	a, out, _ := newTestApp(t, true)

	require.NoError(t, a.Logout(context.Background()))
	require.False(t, a.isLoggedIn())
	require.Contains(t, out.String(), "Signed out.")
}
