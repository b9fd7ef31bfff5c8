package repository

import (
	"database/sql"
	"errors"

	"contenthub/internal/blog/model"
	"contenthub/pkg/apperr"
	"contenthub/pkg/logger"

	"github.com/google/uuid"
)

// IDValidator checks that an identifier is syntactically valid for the store,
// before any query runs.
type IDValidator func(id string) error

func UUIDValidator(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.ErrInvalidID
	}
	return nil
}

type BlogRepository struct {
	DB         *sql.DB
	ValidateID IDValidator
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{DB: db, ValidateID: UUIDValidator}
}

// Insert persists a new blog under a freshly assigned identifier. The store
// stamps created_at; the returned record carries it.
func (r *BlogRepository) Insert(title, content, category, author string) (*model.Blog, error) {
	blog := &model.Blog{
		ID:       uuid.NewString(),
		Title:    title,
		Content:  content,
		Category: category,
		Author:   author,
	}
	err := r.DB.QueryRow(`INSERT INTO blogs (id, title, content, category, author)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		blog.ID, blog.Title, blog.Content, blog.Category, blog.Author).
		Scan(&blog.CreatedAt)
	if err != nil {
		logger.Sugar.Errorf("Failed to insert blog: %v", err)
		return nil, apperr.Store("insert blog", err)
	}
	return blog, nil
}

func (r *BlogRepository) FindAll() ([]model.Blog, error) {
	rows, err := r.DB.Query(`SELECT id, title, content, created_at, category, author FROM blogs`)
	if err != nil {
		logger.Sugar.Errorf("Failed to list blogs: %v", err)
		return nil, apperr.Store("list blogs", err)
	}
	defer rows.Close()

	blogs := []model.Blog{}
	for rows.Next() {
		var b model.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.CreatedAt, &b.Category, &b.Author); err != nil {
			return nil, apperr.Store("scan blog", err)
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("list blogs", err)
	}
	return blogs, nil
}

func (r *BlogRepository) FindByID(id string) (*model.Blog, error) {
	if err := r.ValidateID(id); err != nil {
		return nil, err
	}

	var b model.Blog
	err := r.DB.QueryRow(`SELECT id, title, content, created_at, category, author FROM blogs WHERE id = $1`, id).
		Scan(&b.ID, &b.Title, &b.Content, &b.CreatedAt, &b.Category, &b.Author)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to find blog %s: %v", id, err)
		return nil, apperr.Store("find blog", err)
	}
	return &b, nil
}

// UpdateByID applies the non-empty fields and returns the updated record.
// created_at, category, and author are never part of the SET clause.
func (r *BlogRepository) UpdateByID(id, title, content string) (*model.Blog, error) {
	if err := r.ValidateID(id); err != nil {
		return nil, err
	}

	var b model.Blog
	err := r.DB.QueryRow(`UPDATE blogs
		SET title = COALESCE(NULLIF($2, ''), title), content = COALESCE(NULLIF($3, ''), content)
		WHERE id = $1
		RETURNING id, title, content, created_at, category, author`, id, title, content).
		Scan(&b.ID, &b.Title, &b.Content, &b.CreatedAt, &b.Category, &b.Author)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to update blog %s: %v", id, err)
		return nil, apperr.Store("update blog", err)
	}
	return &b, nil
}

// DeleteByID removes the record and returns its prior state.
func (r *BlogRepository) DeleteByID(id string) (*model.Blog, error) {
	if err := r.ValidateID(id); err != nil {
		return nil, err
	}

	var b model.Blog
	err := r.DB.QueryRow(`DELETE FROM blogs WHERE id = $1 RETURNING id, title, content, created_at, category, author`, id).
		Scan(&b.ID, &b.Title, &b.Content, &b.CreatedAt, &b.Category, &b.Author)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to delete blog %s: %v", id, err)
		return nil, apperr.Store("delete blog", err)
	}
	return &b, nil
}
