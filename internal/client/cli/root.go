package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.sess.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

// Root runs the read-eval-print loop. Errors returned by command handlers
// are reported by the handlers themselves; the loop only dispatches.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to Blogsphere CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "bs %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "b", "blogs":
			_ = a.listBlogs(ctx, args)
		case "show":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: show <id>")
				continue
			}
			_ = a.showBlog(ctx, args[0])
		case "add":
			_ = a.addBlog(ctx)
		case "update":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: update <id>")
				continue
			}
			_ = a.updateBlog(ctx, args[0])
		case "top":
			_ = a.topBlogs(ctx)
		case "recent":
			_ = a.recentBlogs(ctx)
		case "w", "wishlist":
			_ = a.showWishlist(ctx)
		case "toggle":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: toggle <id>")
				continue
			}
			_ = a.toggleWishlist(ctx, args[0])
		case "comments":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: comments <id>")
				continue
			}
			_ = a.listComments(ctx, args[0])
		case "comment":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: comment <id>")
				continue
			}
			_ = a.addComment(ctx, args[0])
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: (b)logs [category] [query], show <id>, top, recent, add, update <id>, (w)ishlist, toggle <id>, comments <id>, comment <id>, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: (b)logs [category] [query], show <id>, top, recent, comments <id>, login, exit")
	}
}
