// clients содержит HTTP-клиенты удалённых сервисов (blog/community).
//
// Контракт апстримов — простой request/response поверх JSON: успешный статус
// означает валидное тело, неуспешный — текст ошибки. Особый случай — отказ в
// правах: сервис сигналит его маркерной подстрокой в текстовом ответе, клиент
// транслирует её в ErrPermissionDenied, не смешивая с прочими сбоями.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/05Daul/miniblog/internal/config"
	"github.com/05Daul/miniblog/internal/models"
)

var (
	// ErrPermissionDenied — апстрим явно отказал в праве на операцию.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound — сущность отсутствует у апстрима.
	ErrNotFound = errors.New("not found")
	// ErrUnexpectedStatus — прочие неуспешные статусы апстрима.
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
)

// permissionMarker — маркерная подстрока отказа в правах в текстовых ответах
// blog/community-сервисов ("...권한이 없습니다").
const permissionMarker = "권한"

// CreateCommentInput — создание корневого комментария или ответа.
// ParentID == 0 — корневой комментарий.
type CreateCommentInput struct {
	PostID   int64
	ParentID int64
	Content  string
}

// BlogAPI — операции blog-сервиса над деревом комментариев поста.
type BlogAPI interface {
	// CommentsByPost возвращает весь лес комментариев поста.
	CommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	// CommentCount возвращает суммарное число комментариев поста.
	CommentCount(ctx context.Context, postID int64) (int64, error)
	// CreateComment создаёт комментарий и возвращает канонический серверный узел.
	CreateComment(ctx context.Context, userID string, in CreateCommentInput) (*models.Comment, error)
	// UpdateComment меняет контент и возвращает канонический серверный узел.
	UpdateComment(ctx context.Context, id int64, userID, content string) (*models.Comment, error)
	// DeleteComment удаляет комментарий; возвращает текстовый ответ сервиса.
	// Отказ в правах приходит как ErrPermissionDenied с текстом внутри.
	DeleteComment(ctx context.Context, id int64, userID string) (string, error)
}

// CommunityAPI — операции community-сервиса: страницы разделов и пер-элементное
// обогащение (лайки/комментарии/теги).
type CommunityAPI interface {
	FetchPage(ctx context.Context, category models.Category, page, size int) (*models.PageResult, error)
	LikeCount(ctx context.Context, category models.Category, id int64) (int64, error)
	CommentCount(ctx context.Context, category models.Category, id int64) (int64, error)
	CheckLike(ctx context.Context, category models.Category, id int64, userID string) (bool, error)
	Tags(ctx context.Context, id int64) ([]string, error)
	// ToggleLike переключает лайк и возвращает новое состояние.
	ToggleLike(ctx context.Context, category models.Category, id int64, userID string) (bool, error)
}

// Clients агрегирует клиенты всех апстримов.
type Clients struct {
	Blog      BlogAPI
	Community CommunityAPI
}

// New создаёт клиенты апстримов с общим таймаутом исходящего вызова.
// counts — опциональный кэш счётчиков обогащения (nil отключает кэширование).
func New(cfg config.Config, counts CountsCache) *Clients {
	hc := &http.Client{Timeout: cfg.Timeouts.Upstream}

	return &Clients{
		Blog:      NewBlogClient(cfg.Upstream.BlogURL, hc),
		Community: NewCommunityClient(cfg.Upstream.CommunityURL, hc, counts),
	}
}

// userIDHeader — заголовок, которым апстримы идентифицируют пользователя.
const userIDHeader = "userSignId"

// doJSON выполняет запрос и декодирует JSON-ответ в out (если out != nil).
// Маппинг неуспешных статусов:
//   - 404 -> ErrNotFound;
//   - тело с маркером отказа в правах -> ErrPermissionDenied (текст сохраняется);
//   - прочее -> ErrUnexpectedStatus с кодом и телом.
func doJSON(ctx context.Context, hc *http.Client, method, url string, headers map[string]string, body, out any) error {
	const op = "clients/doJSON"

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal: %w", op, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return fmt.Errorf("%s: new_request: %w", op, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode: %w", op, err)
	}

	return nil
}

// doText выполняет запрос и возвращает текстовое тело ответа.
// Успешный статус с маркером в теле тоже трактуется как отказ в правах:
// blog-сервис отвечает на запрет удаления текстом, а не кодом.
func doText(ctx context.Context, hc *http.Client, method, url string, headers map[string]string) (string, error) {
	const op = "clients/doText"

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return "", fmt.Errorf("%s: new_request: %w", op, err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("%s: read: %w", op, err)
	}

	text := strings.TrimSpace(string(raw))

	if strings.Contains(text, permissionMarker) {
		return "", fmt.Errorf("%s: %s: %w", op, text, ErrPermissionDenied)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return "", fmt.Errorf("%s: status=%d body=%q: %w", op, resp.StatusCode, text, ErrUnexpectedStatus)
	}

	return text, nil
}

// statusError — общий маппинг неуспешного ответа в сентинельные ошибки.
func statusError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	text := strings.TrimSpace(string(raw))

	if strings.Contains(text, permissionMarker) {
		return fmt.Errorf("%s: %s: %w", op, text, ErrPermissionDenied)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return fmt.Errorf("%s: status=%d body=%q: %w", op, resp.StatusCode, text, ErrUnexpectedStatus)
}

// upstreamTime парсит таймстемпы апстримов: Java-сервисы отдают как RFC3339,
// так и "голый" LocalDateTime без зоны. Голое время трактуем как UTC.
type upstreamTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (u *upstreamTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		u.Time = time.Time{}
		return nil
	}

	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			u.Time = ts.UTC()
			return nil
		}
	}

	return fmt.Errorf("clients: unsupported time format %q", s)
}
