package models

// WishlistEntry is a saved association between one user and one post.
// EntryID is assigned by the backend on create; until the create call
// resolves the client holds a locally generated placeholder id there.
// At most one entry exists per (UserEmail, BlogID) pair.
type WishlistEntry struct {
	EntryID   string `json:"_id"`
	BlogID    string `json:"blogId"`
	UserEmail string `json:"email"`
	BlogData  Post   `json:"blogData"`
}
