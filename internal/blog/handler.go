package blog

import (
	"encoding/json"
	"errors"
	"net/http"

	"contenthub/internal/blog/model"
	"contenthub/internal/blog/service"
	"contenthub/pkg/apperr"
	"contenthub/pkg/httpx"
	"contenthub/pkg/logger"
)

type Handler struct {
	Service *service.BlogService
}

func NewHandler(service *service.BlogService) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Service.List()
	if err != nil {
		logger.Sugar.Errorf("Error fetching blogs: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch blogs")
		return
	}
	httpx.JSON(w, http.StatusOK, blogs)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	blog, err := h.Service.Create(req)
	if err != nil {
		h.writeError(w, err, "Failed to create blog")
		return
	}
	httpx.JSON(w, http.StatusCreated, blog)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	blog, err := h.Service.Get(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err, "Failed to fetch blog")
		return
	}
	httpx.JSON(w, http.StatusOK, blog)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	blog, err := h.Service.Update(r.PathValue("id"), req)
	if err != nil {
		h.writeError(w, err, "Failed to update blog")
		return
	}
	httpx.JSON(w, http.StatusOK, blog)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Service.Delete(r.PathValue("id")); err != nil {
		h.writeError(w, err, "Failed to delete blog")
		return
	}
	httpx.JSON(w, http.StatusOK, model.DeleteBlogResponse{Message: "Blog deleted successfully"})
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case apperr.IsValidation(err):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrInvalidID):
		httpx.Error(w, http.StatusBadRequest, "Invalid blog ID")
	case errors.Is(err, apperr.ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "Blog not found")
	default:
		logger.Sugar.Errorf("Handler: %s: %v", fallback, err)
		httpx.Error(w, http.StatusInternalServerError, fallback)
	}
}
