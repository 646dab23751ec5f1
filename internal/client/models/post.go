package models

// Post is a single blog post as returned by the backend. Field names follow
// the backend's JSON (the store echoes Mongo-style "_id" documents).
type Post struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	ShortDesc   string `json:"shortDesc"`
	LongDesc    string `json:"longDesc"`
	AuthorEmail string `json:"email"`
	AuthorName  string `json:"username"`
}

// PostDraft carries the editable fields of a post for create and update
// calls. Author identity is filled in from the active session, never from
// user input.
type PostDraft struct {
	Title     string `json:"title"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	ShortDesc string `json:"shortDesc"`
	LongDesc  string `json:"longDesc"`
}
