package router

import (
	"database/sql"
	"net/http"

	articleHandler "contenthub/internal/article"
	articleRepo "contenthub/internal/article/repository"
	articleSvc "contenthub/internal/article/service"
	blogHandler "contenthub/internal/blog"
	blogRepo "contenthub/internal/blog/repository"
	blogSvc "contenthub/internal/blog/service"
	"contenthub/middleware"
	"contenthub/socket"
)

func Setup(db *sql.DB, hub *socket.Hub) http.Handler {
	mux := http.NewServeMux()

	// WebSocket change notifications
	mux.HandleFunc("GET /ws", func(w http.ResponseWriter, r *http.Request) {
		socket.ServeWs(hub, w, r)
	})

	// REST API
	articles := articleHandler.NewHandler(articleSvc.NewArticleService(articleRepo.NewArticleRepository(db), hub))
	mux.HandleFunc("GET /api/articles", articles.List)
	mux.HandleFunc("POST /api/articles", articles.Create)
	mux.HandleFunc("GET /api/articles/{id}", articles.Get)
	mux.HandleFunc("PUT /api/articles/{id}", articles.Update)
	mux.HandleFunc("DELETE /api/articles/{id}", articles.Delete)

	blogs := blogHandler.NewHandler(blogSvc.NewBlogService(blogRepo.NewBlogRepository(db), hub))
	mux.HandleFunc("GET /api/blogs", blogs.List)
	mux.HandleFunc("POST /api/blogs", blogs.Create)
	mux.HandleFunc("GET /api/blogs/{id}", blogs.Get)
	mux.HandleFunc("PUT /api/blogs/{id}", blogs.Update)
	mux.HandleFunc("DELETE /api/blogs/{id}", blogs.Delete)

	return middleware.CORSMiddleware(mux)
}
