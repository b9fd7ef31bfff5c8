package model

import "time"

// Blog is a persisted blog record. CreatedAt is set exactly once, at insert,
// and is never touched by updates.
type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
}

type CreateBlogRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Author   string `json:"author"`
}

// UpdateBlogRequest carries a partial update of title and/or content. The
// other fields cannot be changed once the blog exists.
type UpdateBlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type DeleteBlogResponse struct {
	Message string `json:"message"`
}
