package catalog

import (
	"context"
	"testing"

	"github.com/blogsphere/blogsphere-cli/internal/client/models"
	"github.com/blogsphere/blogsphere-cli/internal/common"
	"github.com/blogsphere/blogsphere-cli/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	posts     []models.Post
	byID      map[string]*models.Post
	createdID string
	created   *models.Post
	updated   map[string]models.PostDraft
}

func (f *fakeClient) FetchAllBlogs(ctx context.Context) ([]models.Post, error) {
	return f.posts, nil
}

func (f *fakeClient) FetchBlog(ctx context.Context, id string) (*models.Post, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeClient) CreateBlog(ctx context.Context, post *models.Post) (string, error) {
	f.created = post
	return f.createdID, nil
}

func (f *fakeClient) UpdateBlog(ctx context.Context, id string, draft *models.PostDraft) (int64, error) {
	if f.updated == nil {
		f.updated = map[string]models.PostDraft{}
	}
	f.updated[id] = *draft
	return 1, nil
}

func (f *fakeClient) FetchWishlist(ctx context.Context, userEmail string) ([]models.WishlistEntry, error) {
	return nil, nil
}
func (f *fakeClient) CreateWishlistEntry(ctx context.Context, blogID, userEmail string, blogData models.Post) (string, error) {
	return "", nil
}
func (f *fakeClient) DeleteWishlistEntry(ctx context.Context, entryID string) error { return nil }
func (f *fakeClient) FetchComments(ctx context.Context, blogID string) ([]models.Comment, error) {
	return nil, nil
}
func (f *fakeClient) CreateComment(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	return c, nil
}

func TestFetchOne_NotFound(t *testing.T) {
	s := NewService(&fakeClient{}, logging.NewDiscardLogger())

	_, err := s.FetchOne(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreate_FillsAuthorFromSession(t *testing.T) {
	client := &fakeClient{createdID: "abc"}
	s := NewService(client, logging.NewDiscardLogger())
	author := &models.User{Email: "ana@example.com", DisplayName: "Ana"}

	post, err := s.Create(context.Background(), models.PostDraft{
		Title: "Go Basics", Category: "Technology", LongDesc: "all about go",
	}, author)
	require.NoError(t, err)
	require.Equal(t, "abc", post.ID)
	require.Equal(t, "ana@example.com", client.created.AuthorEmail)
	require.Equal(t, "Ana", client.created.AuthorName)
}

func TestCreate_RequiresAuthAndFields(t *testing.T) {
	s := NewService(&fakeClient{}, logging.NewDiscardLogger())

	_, err := s.Create(context.Background(), models.PostDraft{Title: "x", LongDesc: "y"}, nil)
	require.ErrorIs(t, err, common.ErrUnauthenticated)

	author := &models.User{Email: "ana@example.com"}
	_, err = s.Create(context.Background(), models.PostDraft{Title: "  ", LongDesc: "y"}, author)
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Create(context.Background(), models.PostDraft{Title: "x", LongDesc: ""}, author)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestUpdate_OwnerOnly(t *testing.T) {
	client := &fakeClient{byID: map[string]*models.Post{
		"1": {ID: "1", Title: "Go Basics", LongDesc: "d", AuthorEmail: "ana@example.com"},
	}}
	s := NewService(client, logging.NewDiscardLogger())

	err := s.Update(context.Background(), "1", models.PostDraft{Title: "t", LongDesc: "d"},
		&models.User{Email: "bob@example.com"})
	require.ErrorIs(t, err, common.ErrForbidden)
	require.Empty(t, client.updated, "no update call for non-owner")

	err = s.Update(context.Background(), "1", models.PostDraft{Title: "t", LongDesc: "d"},
		&models.User{Email: "ana@example.com"})
	require.NoError(t, err)
	require.Equal(t, "t", client.updated["1"].Title)
}
