package repository

import (
	"database/sql"
	"errors"

	"contenthub/internal/article/model"
	"contenthub/pkg/apperr"
	"contenthub/pkg/logger"

	"github.com/google/uuid"
)

// IDValidator checks that an identifier is syntactically valid for the store.
// It runs before any query, so a malformed identifier never reaches SQL and
// can be told apart from a well-formed identifier that matches nothing.
type IDValidator func(id string) error

// UUIDValidator is the store-native identifier format.
func UUIDValidator(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.ErrInvalidID
	}
	return nil
}

type ArticleRepository struct {
	DB         *sql.DB
	ValidateID IDValidator
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{DB: db, ValidateID: UUIDValidator}
}

// Insert persists a new article under a freshly assigned identifier and
// returns the stored record.
func (r *ArticleRepository) Insert(title, content string) (*model.Article, error) {
	article := &model.Article{ID: uuid.NewString(), Title: title, Content: content}
	_, err := r.DB.Exec(`INSERT INTO articles (id, title, content) VALUES ($1, $2, $3)`,
		article.ID, article.Title, article.Content)
	if err != nil {
		logger.Sugar.Errorf("Failed to insert article: %v", err)
		return nil, apperr.Store("insert article", err)
	}
	return article, nil
}

func (r *ArticleRepository) FindAll() ([]model.Article, error) {
	rows, err := r.DB.Query(`SELECT id, title, content FROM articles`)
	if err != nil {
		logger.Sugar.Errorf("Failed to list articles: %v", err)
		return nil, apperr.Store("list articles", err)
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Content); err != nil {
			return nil, apperr.Store("scan article", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("list articles", err)
	}
	return articles, nil
}

func (r *ArticleRepository) FindByID(id string) (*model.Article, error) {
	if err := r.ValidateID(id); err != nil {
		return nil, err
	}

	var a model.Article
	err := r.DB.QueryRow(`SELECT id, title, content FROM articles WHERE id = $1`, id).
		Scan(&a.ID, &a.Title, &a.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to find article %s: %v", id, err)
		return nil, apperr.Store("find article", err)
	}
	return &a, nil
}

// UpdateByID applies the non-empty fields and returns the updated record.
func (r *ArticleRepository) UpdateByID(id, title, content string) (*model.Article, error) {
	if err := r.ValidateID(id); err != nil {
		return nil, err
	}

	var a model.Article
	err := r.DB.QueryRow(`UPDATE articles
		SET title = COALESCE(NULLIF($2, ''), title), content = COALESCE(NULLIF($3, ''), content)
		WHERE id = $1
		RETURNING id, title, content`, id, title, content).
		Scan(&a.ID, &a.Title, &a.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to update article %s: %v", id, err)
		return nil, apperr.Store("update article", err)
	}
	return &a, nil
}

// DeleteByID removes the record and returns its prior state.
func (r *ArticleRepository) DeleteByID(id string) (*model.Article, error) {
	if err := r.ValidateID(id); err != nil {
		return nil, err
	}

	var a model.Article
	err := r.DB.QueryRow(`DELETE FROM articles WHERE id = $1 RETURNING id, title, content`, id).
		Scan(&a.ID, &a.Title, &a.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to delete article %s: %v", id, err)
		return nil, apperr.Store("delete article", err)
	}
	return &a, nil
}
