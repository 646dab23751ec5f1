// Package comments posts and lists comments. Comments are append-only:
// there is no edit or delete, and the local list is newest-first.
package comments

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/blogsphere/blogsphere-cli/internal/client/api"
	"github.com/blogsphere/blogsphere-cli/internal/client/models"
	"github.com/blogsphere/blogsphere-cli/internal/client/session"
	"github.com/blogsphere/blogsphere-cli/internal/common"
	"github.com/blogsphere/blogsphere-cli/internal/logging"
)

type Submitter struct {
	client api.Client
	sess   *session.Session
	log    logging.Logger

	mu       sync.Mutex
	comments []models.Comment
}

func NewSubmitter(client api.Client, sess *session.Session, log logging.Logger) *Submitter {
	return &Submitter{client: client, sess: sess, log: log}
}

// Load replaces the local list with the remote comments for blogID.
func (s *Submitter) Load(ctx context.Context, blogID string) ([]models.Comment, error) {
	comments, err := s.client.FetchComments(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("fetch comments for %s: %w", blogID, err)
	}

	s.mu.Lock()
	s.comments = comments
	s.mu.Unlock()

	return comments, nil
}

// Submit appends a comment by the signed-in user to post. The self-comment
// rule is enforced before any network call: the post owner may not comment
// on their own post. On success the created comment is prepended to the
// local list.
func (s *Submitter) Submit(ctx context.Context, post models.Post, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment cannot be empty", common.ErrValidation)
	}

	user := s.sess.User()
	if user == nil {
		return nil, common.ErrUnauthenticated
	}
	if user.Email == post.AuthorEmail {
		return nil, fmt.Errorf("%w: you cannot comment on your own blog", common.ErrForbidden)
	}

	comment := &models.Comment{
		BlogID:      post.ID,
		AuthorEmail: user.Email,
		AuthorName:  displayName(user),
		AuthorPhoto: user.PhotoURL,
		Text:        text,
	}

	created, err := s.client.CreateComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("post comment: %w", err)
	}

	s.mu.Lock()
	s.comments = append([]models.Comment{*created}, s.comments...)
	s.mu.Unlock()

	s.log.Debug(ctx, "comment posted", "blog", post.ID, "author", user.Email)
	return created, nil
}

// Comments returns a snapshot of the local list, newest first.
func (s *Submitter) Comments() []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Comment, len(s.comments))
	copy(out, s.comments)
	return out
}

func displayName(u *models.User) string {
	if u.DisplayName == "" {
		return "Anonymous"
	}
	return u.DisplayName
}
