// Package api implements the REST client for the blog backend. It is the
// only layer that talks HTTP; everything above works with models and
// sentinel errors from internal/common.
package api

import (
	"context"

	"github.com/blogsphere/blogsphere-cli/internal/client/models"
)

// Client is the remote surface of the blog backend.
type Client interface {
	FetchAllBlogs(ctx context.Context) ([]models.Post, error)
	FetchBlog(ctx context.Context, id string) (*models.Post, error)
	CreateBlog(ctx context.Context, post *models.Post) (string, error)
	UpdateBlog(ctx context.Context, id string, draft *models.PostDraft) (int64, error)

	FetchWishlist(ctx context.Context, userEmail string) ([]models.WishlistEntry, error)
	CreateWishlistEntry(ctx context.Context, blogID, userEmail string, blogData models.Post) (string, error)
	DeleteWishlistEntry(ctx context.Context, entryID string) error

	FetchComments(ctx context.Context, blogID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
}

// TokenProvider yields the bearer token for authenticated calls. An empty
// token means no active session; the request goes out unauthenticated and
// the backend decides.
type TokenProvider interface {
	Token() (string, error)
}
