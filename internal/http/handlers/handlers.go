package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/05Daul/miniblog/internal/clients"
	"github.com/05Daul/miniblog/internal/models"
	"github.com/05Daul/miniblog/internal/service"
)

// заголовок, которым фронт идентифицирует пользователя (может отсутствовать —
// гостевой режим).
const userIDHeader = "userSignId"

// заголовок, которым фронт идентифицирует свой инстанс ленты. Каждый инстанс
// держит собственный курсор, фильтр и single-flight.
const feedIDHeader = "X-Feed-Id"

// FeedOptions — параметры создаваемых инстансов ленты.
type FeedOptions struct {
	PageSize          int
	EnrichConcurrency int
}

// Handlers агрегирует зависимости HTTP-слоя: клиенты апстримов и реестры
// движков. Движок ветки создаётся на пост, движок ленты — на пару
// (инстанс ленты, пользователь); обе мапы живут весь аптайм процесса.
type Handlers struct {
	Clients *clients.Clients
	Feeds   FeedOptions

	mu      sync.Mutex
	threads map[int64]*service.Thread
	feeds   map[string]*service.Feed
}

func New(c *clients.Clients, feeds FeedOptions) *Handlers {
	return &Handlers{
		Clients: c,
		Feeds:   feeds,
		threads: make(map[int64]*service.Thread),
		feeds:   make(map[string]*service.Feed),
	}
}

// thread возвращает движок ветки поста, лениво создавая его.
func (h *Handlers) thread(postID int64) *service.Thread {
	h.mu.Lock()
	defer h.mu.Unlock()

	th, ok := h.threads[postID]
	if !ok {
		th = service.NewThread(h.Clients.Blog, postID, nil)
		h.threads[postID] = th
	}

	return th
}

// feed возвращает движок ленты для инстанса фронта, лениво создавая его.
// Гость и вошедший пользователь с тем же feed id получают разные движки:
// like-state пер-пользовательский.
func (h *Handlers) feed(feedID, userID string) *service.Feed {
	if feedID == "" {
		feedID = "default"
	}
	key := fmt.Sprintf("%s|%s", feedID, userID)

	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.feeds[key]
	if !ok {
		f = service.NewFeed(h.Clients.Community, userID, models.CategoryAll, h.Feeds.PageSize, h.Feeds.EnrichConcurrency)
		h.feeds[key] = f
	}

	return f
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — вспомогалка: локальная ошибка парсинга -> сентинель движка.
func errInvalidArgument() error {
	return service.ErrInvalidArgument
}
