package service

import (
	"encoding/json"
	"strings"

	"contenthub/internal/blog/model"
	"contenthub/internal/blog/repository"
	"contenthub/pkg/apperr"
	"contenthub/pkg/logger"
	"contenthub/socket"
)

const (
	DefaultCategory = "Uncategorized"
	DefaultAuthor   = "Anonymous"
)

type BlogService struct {
	Repo *repository.BlogRepository
	Hub  *socket.Hub
}

func NewBlogService(repo *repository.BlogRepository, hub *socket.Hub) *BlogService {
	return &BlogService{Repo: repo, Hub: hub}
}

// Create validates required fields, fills in the category and author defaults,
// and persists the blog. Nothing reaches the store on a validation failure.
func (s *BlogService) Create(req model.CreateBlogRequest) (*model.Blog, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Required("title")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperr.Required("content")
	}

	category := req.Category
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	author := req.Author
	if strings.TrimSpace(author) == "" {
		author = DefaultAuthor
	}

	blog, err := s.Repo.Insert(req.Title, req.Content, category, author)
	if err != nil {
		return nil, err
	}
	s.notify(socket.EventCreated, blog.ID, blog)
	return blog, nil
}

func (s *BlogService) List() ([]model.Blog, error) {
	return s.Repo.FindAll()
}

func (s *BlogService) Get(id string) (*model.Blog, error) {
	return s.Repo.FindByID(id)
}

// Update changes title and/or content only; createdAt, category, and author
// are immutable after creation.
func (s *BlogService) Update(id string, req model.UpdateBlogRequest) (*model.Blog, error) {
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "" {
		return nil, apperr.Invalid("nothing to update: provide title or content")
	}

	blog, err := s.Repo.UpdateByID(id, req.Title, req.Content)
	if err != nil {
		return nil, err
	}
	s.notify(socket.EventUpdated, blog.ID, blog)
	return blog, nil
}

func (s *BlogService) Delete(id string) (*model.Blog, error) {
	blog, err := s.Repo.DeleteByID(id)
	if err != nil {
		return nil, err
	}
	s.notify(socket.EventDeleted, blog.ID, nil)
	return blog, nil
}

func (s *BlogService) notify(event, id string, payload any) {
	if s.Hub == nil {
		return
	}
	var raw json.RawMessage
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			logger.Sugar.Errorf("Failed to marshal %s event payload: %v", event, err)
			return
		}
		raw = body
	}
	s.Hub.Broadcast <- socket.Event{Type: event, Resource: socket.ResourceBlogs, ID: id, Payload: raw}
}
