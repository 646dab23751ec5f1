package catalog

import (
	"sort"
	"strings"

	"github.com/blogsphere/blogsphere-cli/internal/client/models"
)

// Filter applies a category-equality predicate and a case-insensitive
// substring match on the title, conjoined. An empty category or query
// matches everything.
func Filter(posts []models.Post, category, query string) []models.Post {
	query = strings.ToLower(query)

	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// TopByWordCount ranks posts by the word count of their long description,
// descending, and returns at most n of them.
func TopByWordCount(posts []models.Post, n int) []models.Post {
	ranked := make([]models.Post, len(posts))
	copy(ranked, posts)

	sort.SliceStable(ranked, func(i, j int) bool {
		return WordCount(ranked[i].LongDesc) > WordCount(ranked[j].LongDesc)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Recent returns at most n posts in catalog order.
func Recent(posts []models.Post, n int) []models.Post {
	if len(posts) > n {
		posts = posts[:n]
	}
	out := make([]models.Post, len(posts))
	copy(out, posts)
	return out
}

// WordCount counts whitespace-separated words; an empty description is 0.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
