// Package catalog reads and mutates the blog catalog. Reads are plain
// passthroughs to the backend; search, ranking and recency are pure
// client-side transforms over the fetched list, acceptable because the
// catalog is assumed small.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/blogsphere/blogsphere-cli/internal/client/api"
	"github.com/blogsphere/blogsphere-cli/internal/client/models"
	"github.com/blogsphere/blogsphere-cli/internal/common"
	"github.com/blogsphere/blogsphere-cli/internal/logging"
)

type Service struct {
	client api.Client
	log    logging.Logger
}

func NewService(client api.Client, log logging.Logger) *Service {
	return &Service{client: client, log: log}
}

// FetchAll returns the full catalog. No pagination, no caching beyond the
// caller's lifetime.
func (s *Service) FetchAll(ctx context.Context) ([]models.Post, error) {
	posts, err := s.client.FetchAllBlogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return posts, nil
}

// FetchOne returns a single post. The error matches common.ErrNotFound when
// the backend has no record for id.
func (s *Service) FetchOne(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.client.FetchBlog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch post %s: %w", id, err)
	}
	return post, nil
}

// Create publishes a new post authored by the signed-in user. Author
// identity always comes from the session, never from the draft.
func (s *Service) Create(ctx context.Context, draft models.PostDraft, author *models.User) (*models.Post, error) {
	if author == nil {
		return nil, common.ErrUnauthenticated
	}
	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.LongDesc) == "" {
		return nil, fmt.Errorf("%w: title and description are required", common.ErrValidation)
	}

	post := &models.Post{
		Title:       draft.Title,
		Image:       draft.Image,
		Category:    draft.Category,
		ShortDesc:   draft.ShortDesc,
		LongDesc:    draft.LongDesc,
		AuthorEmail: author.Email,
		AuthorName:  author.DisplayName,
	}

	id, err := s.client.CreateBlog(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	post.ID = id

	s.log.Info(ctx, "post created", "id", id, "author", author.Email)
	return post, nil
}

// Update rewrites an existing post. Only the owner may update; the check
// runs client-side before the call and the backend enforces it again.
func (s *Service) Update(ctx context.Context, id string, draft models.PostDraft, author *models.User) error {
	if author == nil {
		return common.ErrUnauthenticated
	}
	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.LongDesc) == "" {
		return fmt.Errorf("%w: title and description are required", common.ErrValidation)
	}

	current, err := s.client.FetchBlog(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch post %s: %w", id, err)
	}
	if current.AuthorEmail != author.Email {
		return fmt.Errorf("%w: only the author may update this post", common.ErrForbidden)
	}

	if _, err := s.client.UpdateBlog(ctx, id, &draft); err != nil {
		return fmt.Errorf("update post %s: %w", id, err)
	}
	return nil
}
