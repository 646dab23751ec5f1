package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/blogsphere/blogsphere-cli/internal/client/models"
	"github.com/blogsphere/blogsphere-cli/internal/common"
	"github.com/rs/xid"
)

// HTTPClient talks to the blog backend over REST/JSON. Authenticated calls
// carry an Authorization: Bearer header obtained from the token provider;
// every call carries an X-Request-Id correlation id.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenProvider) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

func (c *HTTPClient) FetchAllBlogs(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/allBlogs", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) FetchBlog(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodGet, "/allBlogs/"+url.PathEscape(id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) CreateBlog(ctx context.Context, post *models.Post) (string, error) {
	var resp struct {
		InsertedID string `json:"insertedId"`
	}
	if err := c.do(ctx, http.MethodPost, "/blog", post, &resp); err != nil {
		return "", err
	}
	return resp.InsertedID, nil
}

func (c *HTTPClient) UpdateBlog(ctx context.Context, id string, draft *models.PostDraft) (int64, error) {
	var resp struct {
		ModifiedCount int64 `json:"modifiedCount"`
	}
	if err := c.do(ctx, http.MethodPut, "/blogs/"+url.PathEscape(id), draft, &resp); err != nil {
		return 0, err
	}
	return resp.ModifiedCount, nil
}

func (c *HTTPClient) FetchWishlist(ctx context.Context, userEmail string) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	if err := c.do(ctx, http.MethodGet, "/wishlist/"+url.PathEscape(userEmail), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) CreateWishlistEntry(ctx context.Context, blogID, userEmail string, blogData models.Post) (string, error) {
	body := struct {
		BlogID    string      `json:"blogId"`
		UserEmail string      `json:"email"`
		BlogData  models.Post `json:"blogData"`
	}{BlogID: blogID, UserEmail: userEmail, BlogData: blogData}

	var resp struct {
		InsertedID string `json:"insertedId"`
	}
	if err := c.do(ctx, http.MethodPost, "/wishlist", body, &resp); err != nil {
		return "", err
	}
	return resp.InsertedID, nil
}

func (c *HTTPClient) DeleteWishlistEntry(ctx context.Context, entryID string) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/"+url.PathEscape(entryID), nil, nil)
}

func (c *HTTPClient) FetchComments(ctx context.Context, blogID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(ctx, http.MethodGet, "/comments/"+url.PathEscape(blogID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	var created models.Comment
	if err := c.do(ctx, http.MethodPost, "/comments", comment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// do performs one request/response round trip: marshal the body, attach
// headers, map the status code to a sentinel error, decode into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", xid.New().String())

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("bearer token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized:
		return common.ErrUnauthenticated
	case code == http.StatusForbidden:
		return common.ErrForbidden
	case code == http.StatusNotFound:
		return common.ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", common.ErrUnavailable, code)
	}
}
