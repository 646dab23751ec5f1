package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogsphere/blogsphere-cli/internal/common"
)

func (a *App) showWishlist(ctx context.Context) error {
	if !a.requireLogin(ctx) {
		return nil
	}

	if err := a.wishlist.Load(ctx); err != nil {
		return err
	}

	entries := a.wishlist.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Your wishlist is empty.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(a.out, "%-8s %-12s %s\n", e.BlogID, e.BlogData.Category, e.BlogData.Title)
	}
	return nil
}

// toggleWishlist flips wishlist membership for one blog. The local state is
// reported immediately; the remote call reconciles in the background.
func (a *App) toggleWishlist(ctx context.Context, id string) error {
	if !a.requireLogin(ctx) {
		return nil
	}

	post, err := a.catalog.FetchOne(ctx, id)
	if err != nil {
		a.notifier.Error(ctx, "Blog not found.")
		return err
	}

	added, err := a.wishlist.Toggle(ctx, *post)
	if err != nil {
		if errors.Is(err, common.ErrUnauthenticated) {
			fmt.Fprintln(a.out, "Please log in first.")
			return nil
		}
		return err
	}

	if added {
		fmt.Fprintf(a.out, "♥ %s\n", post.Title)
	} else {
		fmt.Fprintf(a.out, "  %s\n", post.Title)
	}
	return nil
}
