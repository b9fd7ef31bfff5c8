package service

import (
	"encoding/json"
	"strings"

	"contenthub/internal/article/model"
	"contenthub/internal/article/repository"
	"contenthub/pkg/apperr"
	"contenthub/pkg/logger"
	"contenthub/socket"
)

type ArticleService struct {
	Repo *repository.ArticleRepository
	Hub  *socket.Hub
}

func NewArticleService(repo *repository.ArticleRepository, hub *socket.Hub) *ArticleService {
	return &ArticleService{Repo: repo, Hub: hub}
}

// Create validates the required fields at the boundary and persists the
// article. Nothing reaches the store on a validation failure.
func (s *ArticleService) Create(req model.CreateArticleRequest) (*model.Article, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Required("title")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperr.Required("content")
	}

	article, err := s.Repo.Insert(req.Title, req.Content)
	if err != nil {
		return nil, err
	}
	s.notify(socket.EventCreated, article.ID, article)
	return article, nil
}

func (s *ArticleService) List() ([]model.Article, error) {
	return s.Repo.FindAll()
}

func (s *ArticleService) Get(id string) (*model.Article, error) {
	return s.Repo.FindByID(id)
}

// Update changes title and/or content, leaving omitted fields untouched.
func (s *ArticleService) Update(id string, req model.UpdateArticleRequest) (*model.Article, error) {
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "" {
		return nil, apperr.Invalid("nothing to update: provide title or content")
	}

	article, err := s.Repo.UpdateByID(id, req.Title, req.Content)
	if err != nil {
		return nil, err
	}
	s.notify(socket.EventUpdated, article.ID, article)
	return article, nil
}

// Delete removes the article and returns its prior state.
func (s *ArticleService) Delete(id string) (*model.Article, error) {
	article, err := s.Repo.DeleteByID(id)
	if err != nil {
		return nil, err
	}
	s.notify(socket.EventDeleted, article.ID, nil)
	return article, nil
}

func (s *ArticleService) notify(event, id string, payload any) {
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
	s.Hub.Broadcast <- socket.Event{Type: event, Resource: socket.ResourceArticles, ID: id, Payload: raw}
}
