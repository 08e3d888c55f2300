package clients

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/05Daul/miniblog/internal/models"
)

// CountsCache — read-through кэш числовых счётчиков обогащения.
// Реализация — internal/cache поверх Redis; nil отключает кэширование.
type CountsCache interface {
	Get(ctx context.Context, key string) (int64, bool)
	Set(ctx context.Context, key string, value int64)
}

// CommunityClient — HTTP-клиент community-сервиса (разделы борды, лайки, теги).
type CommunityClient struct {
	base   string
	hc     *http.Client
	counts CountsCache
}

// NewCommunityClient создаёт клиент community-сервиса.
func NewCommunityClient(baseURL string, hc *http.Client, counts CountsCache) *CommunityClient {
	if hc == nil {
		hc = &http.Client{Timeout: 5 * time.Second}
	}

	return &CommunityClient{base: strings.TrimRight(baseURL, "/"), hc: hc, counts: counts}
}

// feedItemDTO — wire-формат элемента страницы раздела (camelCase, Java-style).
type feedItemDTO struct {
	CommunityID int64         `json:"communityId"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	UserID      string        `json:"userId"`
	CreatedAt   upstreamTime  `json:"createdAt"`
	Status      string        `json:"status,omitempty"`
	Deadline    *upstreamTime `json:"deadline,omitempty"`
	StartDate   *upstreamTime `json:"startDate,omitempty"`
}

// pageDTO — конверт пагинации community-сервиса (Spring Page).
type pageDTO struct {
	Content    []feedItemDTO `json:"content"`
	Last       bool          `json:"last"`
	TotalPages int           `json:"totalPages"`
}

func (d feedItemDTO) toModel(category models.Category) models.FeedItem {
	out := models.FeedItem{
		ID:        d.CommunityID,
		Category:  category,
		Title:     d.Title,
		Content:   d.Content,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt.Time,
		Status:    models.RecruitmentStatus(d.Status),
		Tags:      []string{},
	}

	if d.Deadline != nil {
		t := d.Deadline.Time
		out.Deadline = &t
	}
	if d.StartDate != nil {
		t := d.StartDate.Time
		out.StartDate = &t
	}

	return out
}

// FetchPage возвращает одну страницу раздела. Каждый раздел — независимое
// курсорное пространство; состояние между вызовами клиент не хранит.
func (c *CommunityClient) FetchPage(ctx context.Context, category models.Category, page, size int) (*models.PageResult, error) {
	const op = "clients/community/FetchPage"

	var dto pageDTO
	url := fmt.Sprintf("%s/%s/list?page=%d&size=%d", c.base, category, page, size)
	if err := doJSON(ctx, c.hc, http.MethodGet, url, nil, nil, &dto); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]models.FeedItem, 0, len(dto.Content))
	for _, it := range dto.Content {
		items = append(items, it.toModel(category))
	}

	return &models.PageResult{Items: items, Last: dto.Last, TotalPages: dto.TotalPages}, nil
}

// LikeCount возвращает число лайков элемента (через кэш, если он включён).
func (c *CommunityClient) LikeCount(ctx context.Context, category models.Category, id int64) (int64, error) {
	const op = "clients/community/LikeCount"

	key := fmt.Sprintf("miniblog:likes:%s:%d", category, id)
	if c.counts != nil {
		if v, ok := c.counts.Get(ctx, key); ok {
			return v, nil
		}
	}

	var count int64
	url := fmt.Sprintf("%s/likes/%s/%d/count", c.base, category, id)
	if err := doJSON(ctx, c.hc, http.MethodGet, url, nil, nil, &count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if c.counts != nil {
		c.counts.Set(ctx, key, count)
	}

	return count, nil
}

// CommentCount возвращает число комментариев элемента (через кэш, если он включён).
func (c *CommunityClient) CommentCount(ctx context.Context, category models.Category, id int64) (int64, error) {
	const op = "clients/community/CommentCount"

	key := fmt.Sprintf("miniblog:comments:%s:%d", category, id)
	if c.counts != nil {
		if v, ok := c.counts.Get(ctx, key); ok {
			return v, nil
		}
	}

	var count int64
	url := fmt.Sprintf("%s/comments/%s/%d/count", c.base, category, id)
	if err := doJSON(ctx, c.hc, http.MethodGet, url, nil, nil, &count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if c.counts != nil {
		c.counts.Set(ctx, key, count)
	}

	return count, nil
}

// CheckLike сообщает, лайкал ли пользователь элемент. Состояние пер-пользовательское,
// поэтому кэш счётчиков здесь не используется.
func (c *CommunityClient) CheckLike(ctx context.Context, category models.Category, id int64, userID string) (bool, error) {
	const op = "clients/community/CheckLike"

	var liked bool
	url := fmt.Sprintf("%s/likes/%s/%d/check", c.base, category, id)
	headers := map[string]string{userIDHeader: userID}
	if err := doJSON(ctx, c.hc, http.MethodGet, url, headers, nil, &liked); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return liked, nil
}

// Tags возвращает теги элемента.
func (c *CommunityClient) Tags(ctx context.Context, id int64) ([]string, error) {
	const op = "clients/community/Tags"

	var tags []string
	url := fmt.Sprintf("%s/tags/%d", c.base, id)
	if err := doJSON(ctx, c.hc, http.MethodGet, url, nil, nil, &tags); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tags, nil
}

// ToggleLike переключает лайк и возвращает новое состояние.
// Кэшированный счётчик лайков после переключения устарел — инвалидируем его
// немедленной перезаписью при следующем LikeCount (TTL короткий, отдельного
// удаления не требуется).
func (c *CommunityClient) ToggleLike(ctx context.Context, category models.Category, id int64, userID string) (bool, error) {
	const op = "clients/community/ToggleLike"

	var liked bool
	url := fmt.Sprintf("%s/likes/%s/%d/toggle", c.base, category, id)
	headers := map[string]string{userIDHeader: userID}
	if err := doJSON(ctx, c.hc, http.MethodPost, url, headers, nil, &liked); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return liked, nil
}
