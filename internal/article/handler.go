package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"contenthub/internal/article/model"
	"contenthub/internal/article/service"
	"contenthub/pkg/apperr"
	"contenthub/pkg/httpx"
	"contenthub/pkg/logger"
)

type Handler struct {
	Service *service.ArticleService
}

func NewHandler(service *service.ArticleService) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Service.List()
	if err != nil {
		logger.Sugar.Errorf("Error fetching articles: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	httpx.JSON(w, http.StatusOK, articles)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	article, err := h.Service.Create(req)
	if err != nil {
		h.writeError(w, err, "Failed to create article")
		return
	}
	httpx.JSON(w, http.StatusCreated, article)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	article, err := h.Service.Get(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err, "Failed to fetch article")
		return
	}
	httpx.JSON(w, http.StatusOK, article)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	article, err := h.Service.Update(r.PathValue("id"), req)
	if err != nil {
		h.writeError(w, err, "Failed to update article")
		return
	}
	httpx.JSON(w, http.StatusOK, article)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	article, err := h.Service.Delete(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err, "Failed to delete article")
		return
	}
	httpx.JSON(w, http.StatusOK, model.DeleteArticleResponse{
		Message:        "Article deleted successfully",
		DeletedArticle: *article,
	})
}

// writeError maps the error taxonomy to status codes. The malformed-identifier
// check happens before the store is queried, so a 400 here always means a bad
// request rather than an absent record. Store diagnostics stay in the logs.
func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case apperr.IsValidation(err):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrInvalidID):
		httpx.Error(w, http.StatusBadRequest, "Invalid article ID")
	case errors.Is(err, apperr.ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "Article not found")
	default:
		logger.Sugar.Errorf("Handler: %s: %v", fallback, err)
		httpx.Error(w, http.StatusInternalServerError, fallback)
	}
}
