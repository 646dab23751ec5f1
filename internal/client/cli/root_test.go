package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/blogsphere/blogsphere-cli/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestRoot_DispatchesAndExits(t *testing.T) {
	a, out, _ := newTestApp(t, false)
	a.catalog = &fakeCatalog{posts: []models.Post{
		{ID: "1", Category: "Technology", Title: "Go Basics"},
	}}
	a.reader = bufio.NewReader(strings.NewReader("help\nblogs\nnonsense\nexit\n"))

	a.Root(context.Background())

	s := out.String()
	require.Contains(t, s, "Available commands")
	require.Contains(t, s, "Go Basics")
	require.Contains(t, s, "Unknown command: nonsense")
	require.Contains(t, s, "Bye!")
}

func TestRoot_StopsOnEOF(t *testing.T) {
	a, out, _ := newTestApp(t, false)
	a.reader = bufio.NewReader(strings.NewReader("help\n"))

	a.Root(context.Background())
	require.Contains(t, out.String(), "Available commands")
}

func TestRoot_UsageLinesForArgCommands(t *testing.T) {
	a, out, _ := newTestApp(t, false)
	a.reader = bufio.NewReader(strings.NewReader("show\ntoggle\ncomment\nexit\n"))

	a.Root(context.Background())

	s := out.String()
	require.Contains(t, s, "Usage: show <id>")
	require.Contains(t, s, "Usage: toggle <id>")
	require.Contains(t, s, "Usage: comment <id>")
}
