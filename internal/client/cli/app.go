package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/blogsphere/blogsphere-cli/internal/client/api"
	"github.com/blogsphere/blogsphere-cli/internal/client/catalog"
	"github.com/blogsphere/blogsphere-cli/internal/client/comments"
	"github.com/blogsphere/blogsphere-cli/internal/client/config"
	"github.com/blogsphere/blogsphere-cli/internal/client/identity"
	"github.com/blogsphere/blogsphere-cli/internal/client/models"
	"github.com/blogsphere/blogsphere-cli/internal/client/session"
	"github.com/blogsphere/blogsphere-cli/internal/client/wishlist"
	"github.com/blogsphere/blogsphere-cli/internal/logging"
	"github.com/blogsphere/blogsphere-cli/internal/notify"
	"golang.org/x/oauth2"
)

// Service interfaces consumed by the commands. The concrete implementations
// live in the catalog/wishlist/comments packages; tests provide fakes.
type catalogService interface {
	FetchAll(ctx context.Context) ([]models.Post, error)
	FetchOne(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, draft models.PostDraft, author *models.User) (*models.Post, error)
	Update(ctx context.Context, id string, draft models.PostDraft, author *models.User) error
}

type wishlistService interface {
	Load(ctx context.Context) error
	Entries() []models.WishlistEntry
	IsWishlisted(blogID string) bool
	Toggle(ctx context.Context, post models.Post) (bool, error)
	Wait()
}

type commentService interface {
	Load(ctx context.Context, blogID string) ([]models.Comment, error)
	Submit(ctx context.Context, post models.Post, text string) (*models.Comment, error)
}

type identityProvider interface {
	SignIn(ctx context.Context, email string, password []byte) (*models.User, oauth2.TokenSource, error)
}

type App struct {
	config   *config.Config
	sess     *session.Session
	provider identityProvider
	catalog  catalogService
	wishlist wishlistService
	comments commentService
	notifier notify.Notifier
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, log logging.Logger) *App {
	sess := session.New()
	notifier := notify.NewWriterNotifier(os.Stdout, log)

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, sess)

	return &App{
		config:   c,
		sess:     sess,
		provider: identity.NewProvider(c.TokenURL, c.ClientID),
		catalog:  catalog.NewService(apiClient, log),
		wishlist: wishlist.New(apiClient, sess, notifier, log),
		comments: comments.NewSubmitter(apiClient, sess, log),
		notifier: notifier,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
	// Let in-flight wishlist reconciliations finish before the process exits.
	a.wishlist.Wait()
}

func (a *App) isLoggedIn() bool {
	return a.sess.User() != nil
}
