package cli

import (
	"context"
	"fmt"

	"github.com/blogsphere/blogsphere-cli/internal/client/catalog"
	"github.com/blogsphere/blogsphere-cli/internal/client/models"
)

const (
	topBlogCount    = 10
	recentBlogCount = 6
)

// listBlogs prints the catalog, optionally filtered: the first argument is
// an exact category, the second a case-insensitive title search.
func (a *App) listBlogs(ctx context.Context, args []string) error {
	posts, err := a.catalog.FetchAll(ctx)
	if err != nil {
		a.notifier.Error(ctx, "Failed to load blogs. Please try again later.")
		return err
	}

	var category, query string
	if len(args) > 0 {
		category = args[0]
	}
	if len(args) > 1 {
		query = args[1]
	}

	filtered := catalog.Filter(posts, category, query)
	if len(filtered) == 0 {
		fmt.Fprintln(a.out, "No blogs found.")
		return nil
	}
	a.printPosts(filtered)
	return nil
}

func (a *App) showBlog(ctx context.Context, id string) error {
	post, err := a.catalog.FetchOne(ctx, id)
	if err != nil {
		a.notifier.Error(ctx, "Blog not found.")
		return err
	}

	fmt.Fprintf(a.out, "%s\n", post.Title)
	fmt.Fprintf(a.out, "  id: %s  category: %s  by: %s\n", post.ID, post.Category, post.AuthorName)
	if post.ShortDesc != "" {
		fmt.Fprintf(a.out, "  %s\n", post.ShortDesc)
	}
	if post.LongDesc != "" {
		fmt.Fprintf(a.out, "\n%s\n", post.LongDesc)
	}

	comments, err := a.comments.Load(ctx, id)
	if err != nil {
		a.notifier.Error(ctx, "Failed to load comments.")
		return nil
	}
	if len(comments) == 0 {
		fmt.Fprintln(a.out, "\nNo comments yet.")
		return nil
	}
	fmt.Fprintf(a.out, "\nComments (%d):\n", len(comments))
	for _, c := range comments {
		fmt.Fprintf(a.out, "  %s: %s\n", c.AuthorName, c.Text)
	}
	return nil
}

func (a *App) addBlog(ctx context.Context) error {
	if !a.requireLogin(ctx) {
		return nil
	}

	draft, err := a.readDraft(models.PostDraft{})
	if err != nil {
		return err
	}

	post, err := a.catalog.Create(ctx, draft, a.sess.User())
	if err != nil {
		a.notifier.Error(ctx, "Failed to publish the blog.")
		return err
	}

	a.notifier.Success(ctx, fmt.Sprintf("Blog published with id %s.", post.ID))
	return nil
}

func (a *App) updateBlog(ctx context.Context, id string) error {
	if !a.requireLogin(ctx) {
		return nil
	}

	current, err := a.catalog.FetchOne(ctx, id)
	if err != nil {
		a.notifier.Error(ctx, "Blog not found.")
		return err
	}

	draft, err := a.readDraft(models.PostDraft{
		Title:     current.Title,
		Image:     current.Image,
		Category:  current.Category,
		ShortDesc: current.ShortDesc,
		LongDesc:  current.LongDesc,
	})
	if err != nil {
		return err
	}

	if err := a.catalog.Update(ctx, id, draft, a.sess.User()); err != nil {
		a.notifier.Error(ctx, "Failed to update the blog.")
		return err
	}

	a.notifier.Success(ctx, "Blog updated.")
	return nil
}

// readDraft prompts for each editable field; empty input keeps the value
// from the given base (which is zero for a new post).
func (a *App) readDraft(base models.PostDraft) (models.PostDraft, error) {
	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Title", &base.Title},
		{"Image URL", &base.Image},
		{"Category", &base.Category},
		{"Short description", &base.ShortDesc},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return base, err
		}
		if v != "" {
			*f.dest = v
		}
	}

	long, err := GetMultiline(a.reader, "Long description", a.out)
	if err != nil {
		return base, err
	}
	if long != "" {
		base.LongDesc = long
	}
	return base, nil
}

func (a *App) topBlogs(ctx context.Context) error {
	posts, err := a.catalog.FetchAll(ctx)
	if err != nil {
		a.notifier.Error(ctx, "Failed to load blogs. Please try again later.")
		return err
	}

	top := catalog.TopByWordCount(posts, topBlogCount)
	for i, p := range top {
		fmt.Fprintf(a.out, "%2d. %s (%d words)\n", i+1, p.Title, catalog.WordCount(p.LongDesc))
	}
	return nil
}

func (a *App) recentBlogs(ctx context.Context) error {
	posts, err := a.catalog.FetchAll(ctx)
	if err != nil {
		a.notifier.Error(ctx, "Failed to load blogs. Please try again later.")
		return err
	}

	a.printPosts(catalog.Recent(posts, recentBlogCount))
	return nil
}

func (a *App) printPosts(posts []models.Post) {
	for _, p := range posts {
		mark := " "
		if a.wishlist.IsWishlisted(p.ID) {
			mark = "♥"
		}
		fmt.Fprintf(a.out, "%s %-8s %-12s %s\n", mark, p.ID, p.Category, p.Title)
	}
}
