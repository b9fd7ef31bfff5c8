package article

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"contenthub/internal/article/model"
	"contenthub/internal/article/repository"
	"contenthub/internal/article/service"
	"contenthub/pkg/logger"
	"contenthub/socket"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*httptest.Server, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	hub := socket.NewHub()
	go hub.Run()

	h := NewHandler(service.NewArticleService(repository.NewArticleRepository(db), hub))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/articles", h.List)
	mux.HandleFunc("POST /api/articles", h.Create)
	mux.HandleFunc("GET /api/articles/{id}", h.Get)
	mux.HandleFunc("PUT /api/articles/{id}", h.Update)
	mux.HandleFunc("DELETE /api/articles/{id}", h.Delete)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, mock
}

func doRequest(t *testing.T, method, url string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Message
}

func TestCreateArticle(t *testing.T) {
	server, mock := newTestServer(t)
	mock.ExpectExec("INSERT INTO articles").
		WithArgs(sqlmock.AnyArg(), "T1", "C1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp := doRequest(t, http.MethodPost, server.URL+"/api/articles", map[string]string{"title": "T1", "content": "C1"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Article
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "T1", created.Title)
	assert.Equal(t, "C1", created.Content)
	_, err := uuid.Parse(created.ID)
	assert.NoError(t, err, "Created article should carry a store-assigned identifier")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArticleMissingRequiredField(t *testing.T) {
	server, mock := newTestServer(t)

	resp := doRequest(t, http.MethodPost, server.URL+"/api/articles", map[string]string{"content": "C1"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeMessage(t, resp), "title")

	resp2 := doRequest(t, http.MethodPost, server.URL+"/api/articles", map[string]string{"title": "T1", "content": "  "})
	defer resp2.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp2.StatusCode)
	assert.Contains(t, decodeMessage(t, resp2), "content")

	// Nothing may reach the store on a validation failure.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListArticles(t *testing.T) {
	server, mock := newTestServer(t)
	mock.ExpectQuery("SELECT id, title, content FROM articles").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content"}).
			AddRow(uuid.NewString(), "T1", "C1").
			AddRow(uuid.NewString(), "T2", "C2"))

	resp := doRequest(t, http.MethodGet, server.URL+"/api/articles", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var articles []model.Article
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&articles))
	assert.Len(t, articles, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListArticlesEmptyIsArray(t *testing.T) {
	server, mock := newTestServer(t)
	mock.ExpectQuery("SELECT id, title, content FROM articles").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content"}))

	resp := doRequest(t, http.MethodGet, server.URL+"/api/articles", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))
}

func TestGetArticleMalformedID(t *testing.T) {
	server, mock := newTestServer(t)

	resp := doRequest(t, http.MethodGet, server.URL+"/api/articles/not-a-uuid", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid article ID", decodeMessage(t, resp))
	// The malformed identifier must never reach the store.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetArticleNotFound(t *testing.T) {
	server, mock := newTestServer(t)
	id := uuid.NewString()
	mock.ExpectQuery("SELECT id, title, content FROM articles WHERE id").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	resp := doRequest(t, http.MethodGet, server.URL+"/api/articles/"+id, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Article not found", decodeMessage(t, resp))
}

func TestGetArticleStoreError(t *testing.T) {
	server, mock := newTestServer(t)
	id := uuid.NewString()
	mock.ExpectQuery("SELECT id, title, content FROM articles WHERE id").
		WithArgs(id).
		WillReturnError(sql.ErrConnDone)

	resp := doRequest(t, http.MethodGet, server.URL+"/api/articles/"+id, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	// Store diagnostics must not leak to the client.
	assert.Equal(t, "Failed to fetch article", decodeMessage(t, resp))
}

func TestUpdateArticlePartial(t *testing.T) {
	server, mock := newTestServer(t)
	id := uuid.NewString()
	mock.ExpectQuery("UPDATE articles").
		WithArgs(id, "T2", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content"}).AddRow(id, "T2", "C1"))

	resp := doRequest(t, http.MethodPut, server.URL+"/api/articles/"+id, map[string]string{"title": "T2"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.Article
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C1", updated.Content, "Omitted content must be left untouched")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateArticleNothingToUpdate(t *testing.T) {
	server, mock := newTestServer(t)
	id := uuid.NewString()

	resp := doRequest(t, http.MethodPut, server.URL+"/api/articles/"+id, map[string]string{})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateArticleMalformedID(t *testing.T) {
	server, mock := newTestServer(t)

	resp := doRequest(t, http.MethodPut, server.URL+"/api/articles/123", map[string]string{"title": "T2"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteArticleReturnsDeletedRecord(t *testing.T) {
	server, mock := newTestServer(t)
	id := uuid.NewString()
	mock.ExpectQuery("DELETE FROM articles WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content"}).AddRow(id, "T1", "C1"))

	resp := doRequest(t, http.MethodDelete, server.URL+"/api/articles/"+id, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var deleted model.DeleteArticleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&deleted))
	assert.NotEmpty(t, deleted.Message)
	assert.Equal(t, id, deleted.DeletedArticle.ID)
	assert.Equal(t, "T1", deleted.DeletedArticle.Title)
}

func TestDeleteArticleNotFound(t *testing.T) {
	server, mock := newTestServer(t)
	id := uuid.NewString()
	mock.ExpectQuery("DELETE FROM articles WHERE id").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	resp := doRequest(t, http.MethodDelete, server.URL+"/api/articles/"+id, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestArticleLifecycle walks one record through create, fetch, an idempotent
// update applied twice, and a terminal delete.
func TestArticleLifecycle(t *testing.T) {
	server, mock := newTestServer(t)

	mock.ExpectExec("INSERT INTO articles").
		WithArgs(sqlmock.AnyArg(), "T1", "C1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp := doRequest(t, http.MethodPost, server.URL+"/api/articles", map[string]string{"title": "T1", "content": "C1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Article
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	id := created.ID

	mock.ExpectQuery("SELECT id, title, content FROM articles WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content"}).AddRow(id, "T1", "C1"))

	resp = doRequest(t, http.MethodGet, server.URL+"/api/articles/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched model.Article
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	resp.Body.Close()
	assert.Equal(t, created, fetched)

	// The same update twice yields the same final state.
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("UPDATE articles").
			WithArgs(id, "T2", "C1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content"}).AddRow(id, "T2", "C1"))

		resp = doRequest(t, http.MethodPut, server.URL+"/api/articles/"+id, map[string]string{"title": "T2", "content": "C1"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var updated model.Article
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
		resp.Body.Close()
		assert.Equal(t, "T2", updated.Title)
		assert.Equal(t, "C1", updated.Content)
	}

	mock.ExpectQuery("DELETE FROM articles WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content"}).AddRow(id, "T2", "C1"))

	resp = doRequest(t, http.MethodDelete, server.URL+"/api/articles/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Delete is terminal: the identifier now resolves to nothing.
	mock.ExpectQuery("SELECT id, title, content FROM articles WHERE id").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	resp = doRequest(t, http.MethodGet, server.URL+"/api/articles/"+id, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	assert.NoError(t, mock.ExpectationsWereMet())
}
