package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogsphere/blogsphere-cli/internal/common"
)

func (a *App) listComments(ctx context.Context, blogID string) error {
	comments, err := a.comments.Load(ctx, blogID)
	if err != nil {
		a.notifier.Error(ctx, "Failed to load comments.")
		return err
	}

	if len(comments) == 0 {
		fmt.Fprintln(a.out, "No comments yet.")
		return nil
	}
	for _, c := range comments {
		fmt.Fprintf(a.out, "%s: %s\n", c.AuthorName, c.Text)
	}
	return nil
}

func (a *App) addComment(ctx context.Context, blogID string) error {
	if !a.requireLogin(ctx) {
		return nil
	}

	post, err := a.catalog.FetchOne(ctx, blogID)
	if err != nil {
		a.notifier.Error(ctx, "Blog not found.")
		return err
	}

	text, err := GetMultiline(a.reader, "Write your comment", a.out)
	if err != nil {
		return err
	}

	if _, err := a.comments.Submit(ctx, *post, text); err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			fmt.Fprintln(a.out, "Comment cannot be empty.")
		case errors.Is(err, common.ErrForbidden):
			fmt.Fprintln(a.out, "You cannot comment on your own blog.")
		default:
			a.notifier.Error(ctx, "Failed to post comment.")
		}
		return err
	}

	a.notifier.Success(ctx, "Comment posted.")
	return nil
}
