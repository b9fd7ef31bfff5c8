package model

// Article is a persisted article record. The identifier is assigned by the
// store on creation and never changes.
type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateArticleRequest carries a partial update: an empty field is left
// untouched on the stored record.
type UpdateArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type DeleteArticleResponse struct {
	Message        string  `json:"message"`
	DeletedArticle Article `json:"deletedArticle"`
}
