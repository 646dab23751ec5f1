// Package wishlist keeps the signed-in user's wishlist as a local cache
// reconciled with the backend's per-user collection.
//
// Mutations are optimistic: the cache changes synchronously, then the remote
// call runs in the background. Failures are surfaced as notifications and
// never rolled back; the next Load is the eventual-consistency correction.
// The cache, not network state, is authoritative for deciding add-vs-remove,
// so rapid repeated toggles on one blog id always reverse each other.
package wishlist

import (
	"context"
	"sync"

	"github.com/blogsphere/blogsphere-cli/internal/client/api"
	"github.com/blogsphere/blogsphere-cli/internal/client/models"
	"github.com/blogsphere/blogsphere-cli/internal/client/session"
	"github.com/blogsphere/blogsphere-cli/internal/common"
	"github.com/blogsphere/blogsphere-cli/internal/logging"
	"github.com/blogsphere/blogsphere-cli/internal/notify"
	"github.com/google/uuid"
)

type Synchronizer struct {
	client api.Client
	sess   *session.Session
	notify notify.Notifier
	log    logging.Logger

	mu      sync.Mutex
	entries []models.WishlistEntry

	wg sync.WaitGroup
}

// New builds a Synchronizer bound to the active session. The cache is
// dropped on sign-out so one user's wishlist can never leak into the next
// session.
func New(client api.Client, sess *session.Session, notifier notify.Notifier, log logging.Logger) *Synchronizer {
	s := &Synchronizer{client: client, sess: sess, notify: notifier, log: log}
	sess.Subscribe(func(u *models.User) {
		if u == nil {
			s.reset()
		}
	})
	return s
}

func (s *Synchronizer) reset() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}

// Load replaces the cache wholesale with the remote collection for the
// signed-in user. On failure the cache is left empty and the error is
// surfaced as a notification; there is no automatic retry.
func (s *Synchronizer) Load(ctx context.Context) error {
	email := s.sess.Email()
	if email == "" {
		return common.ErrUnauthenticated
	}

	s.reset()

	entries, err := s.client.FetchWishlist(ctx, email)
	if err != nil {
		s.notify.Error(ctx, "Failed to load your wishlist. Please try again later.")
		return err
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	s.log.Debug(ctx, "wishlist loaded", "user", email, "entries", len(entries))
	return nil
}

// IsWishlisted reports whether the cache holds an entry for blogID. It never
// touches the network.
func (s *Synchronizer) IsWishlisted(blogID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(blogID) >= 0
}

// Entries returns a snapshot of the cache for rendering.
func (s *Synchronizer) Entries() []models.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WishlistEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// indexOf must be called with mu held.
func (s *Synchronizer) indexOf(blogID string) int {
	for i := range s.entries {
		if s.entries[i].BlogID == blogID {
			return i
		}
	}
	return -1
}

// Toggle flips the wishlist state of post for the signed-in user. The cache
// mutation is applied before the method returns; the remote call runs in the
// background and its failure does not undo the local change.
//
// The returned bool reports the new local state: true when the post is now
// wishlisted.
func (s *Synchronizer) Toggle(ctx context.Context, post models.Post) (bool, error) {
	user := s.sess.User()
	if user == nil {
		return false, common.ErrUnauthenticated
	}

	s.mu.Lock()

	if i := s.indexOf(post.ID); i >= 0 {
		entryID := s.entries[i].EntryID
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		s.mu.Unlock()

		s.wg.Add(1)
		go s.reconcileRemove(ctx, post.ID, entryID)
		return false, nil
	}

	entry := models.WishlistEntry{
		EntryID:   uuid.NewString(),
		BlogID:    post.ID,
		UserEmail: user.Email,
		BlogData:  post,
	}
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	s.wg.Add(1)
	go s.reconcileAdd(ctx, post, user.Email)
	return true, nil
}

func (s *Synchronizer) reconcileAdd(ctx context.Context, post models.Post, userEmail string) {
	defer s.wg.Done()

	insertedID, err := s.client.CreateWishlistEntry(ctx, post.ID, userEmail, post)
	if err != nil {
		// The optimistic entry stays in the cache; the next Load resolves
		// the divergence.
		s.notify.Error(ctx, "Failed to save to your wishlist.")
		s.log.Warn(ctx, "wishlist add not persisted", "blog", post.ID, "err", err)
		return
	}

	if ctx.Err() != nil {
		// The owning scope ended while the call was in flight; discard the
		// result instead of mutating state nobody owns.
		s.log.Debug(ctx, "discarding stale wishlist add result", "blog", post.ID)
		return
	}

	s.mu.Lock()
	// The cache slot is identified by blog id, not by the placeholder id:
	// replace the placeholder in place if the entry is still present.
	if i := s.indexOf(post.ID); i >= 0 {
		s.entries[i].EntryID = insertedID
	}
	s.mu.Unlock()

	s.notify.Success(ctx, "Added to your wishlist.")
}

func (s *Synchronizer) reconcileRemove(ctx context.Context, blogID, entryID string) {
	defer s.wg.Done()

	if err := s.client.DeleteWishlistEntry(ctx, entryID); err != nil {
		// No rollback: the local removal stands even if the server still
		// holds the entry.
		s.notify.Error(ctx, "Failed to remove from your wishlist.")
		s.log.Warn(ctx, "wishlist remove not persisted", "blog", blogID, "entry", entryID, "err", err)
		return
	}

	s.notify.Success(ctx, "Removed from your wishlist.")
}

// Wait blocks until all in-flight reconciliations have finished. Called on
// shutdown and by tests.
func (s *Synchronizer) Wait() {
	s.wg.Wait()
}
