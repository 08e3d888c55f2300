package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/05Daul/miniblog/internal/clients"
	"github.com/05Daul/miniblog/internal/http/handlers"
	"github.com/05Daul/miniblog/internal/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	Feeds    handlers.FeedOptions
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(cl *clients.Clients, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(cl, opts.Feeds)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// ветка комментариев поста
	r.Get("/posts/{post_id}/comments", h.ListComments)
	r.Post("/posts/{post_id}/comments", h.CreateComment)
	r.Post("/posts/{post_id}/comments/{id}/replies", h.CreateReply)
	r.Put("/posts/{post_id}/comments/{id}", h.UpdateComment)
	r.Delete("/posts/{post_id}/comments/{id}", h.DeleteComment)

	// лента комьюнити
	r.Get("/community/feed", h.GetFeed)
	r.Post("/community/feed/next", h.FeedNext)
	r.Post("/community/feed/reset", h.FeedReset)
	r.Post("/community/{category}/{id}/like", h.ToggleLike)
}
