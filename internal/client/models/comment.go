package models

// Comment is an append-only child of a post. There is no edit or delete.
type Comment struct {
	ID          string `json:"_id"`
	BlogID      string `json:"blogId"`
	AuthorEmail string `json:"email"`
	AuthorName  string `json:"username"`
	AuthorPhoto string `json:"userPhoto"`
	Text        string `json:"comment"`
}
