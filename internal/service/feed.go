package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/05Daul/miniblog/internal/clients"
	"github.com/05Daul/miniblog/internal/models"
	"github.com/05Daul/miniblog/pkg/log"
)

// Feed — агрегатор ленты комьюнити для одного потребителя (одной "страницы").
//
// Состояние инстанса: активный фильтр раздела, накопленные элементы, индекс
// следующей страницы, hasMore и флаг выполняющегося цикла. Флаг — единственный
// single-flight-механизм: повторный RequestNextPage во время цикла — no-op.
//
// Каждый цикл штампуется поколением фильтра на момент запуска. Reset
// увеличивает поколение, поэтому цикл, разрешившийся после смены фильтра,
// отбрасывается целиком — устаревшие результаты никогда не попадают в ленту.
// Эффекты цикла (append/дедуп/сдвиг курсора) применяются только после того,
// как завершатся все конкурентные подвызовы; частичные результаты наружу не
// утекают.
type Feed struct {
	api        clients.CommunityAPI
	sources    map[models.Category]Source
	userID     string
	pageSize   int
	enrichConc int

	mu       sync.Mutex
	category models.Category
	items    []models.FeedItem
	seen     map[string]struct{}
	page     int
	hasMore  bool
	loading  bool
	gen      uint64
}

// NewFeed создаёт агрегатор. userID может быть пустым (гость: like-state не
// запрашивается). category по умолчанию — CategoryAll.
func NewFeed(api clients.CommunityAPI, userID string, category models.Category, pageSize, enrichConc int) *Feed {
	if category == "" {
		category = models.CategoryAll
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if enrichConc <= 0 {
		enrichConc = 6
	}

	sources := make(map[models.Category]Source, len(models.Categories))
	for _, cat := range models.Categories {
		sources[cat] = NewSource(api, cat)
	}

	return &Feed{
		api:        api,
		sources:    sources,
		userID:     userID,
		pageSize:   pageSize,
		enrichConc: enrichConc,
		category:   category,
		seen:       make(map[string]struct{}),
		hasMore:    true,
	}
}

// Items возвращает снимок накопленной ленты.
func (f *Feed) Items() []models.FeedItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]models.FeedItem(nil), f.items...)
}

// HasMore сообщает, остались ли непрочитанные страницы.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.hasMore
}

// Loading сообщает, выполняется ли цикл подгрузки.
func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.loading
}

// Page возвращает индекс следующей загружаемой страницы.
func (f *Feed) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.page
}

// ActiveCategory возвращает текущий фильтр ленты.
func (f *Feed) ActiveCategory() models.Category {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.category
}

// Reset меняет фильтр раздела: накопленная лента, курсор и hasMore
// сбрасываются, поколение растёт — незавершённый цикл, если он есть,
// будет отброшен при разрешении.
func (f *Feed) Reset(category models.Category) error {
	const op = "service/feed/Reset"

	if !category.Valid() {
		return fmt.Errorf("%s: %q: %w", op, category, ErrInvalidArgument)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.gen++
	f.category = category
	f.items = nil
	f.seen = make(map[string]struct{})
	f.page = 0
	f.hasMore = true

	return nil
}

// RequestNextPage выполняет один цикл подгрузки.
//
// No-op без ошибки, если цикл уже идёт или страницы исчерпаны. Курсор
// двигается только после успешно применённого цикла; пустой цикл гасит
// hasMore. Сбои отдельных разделов и обогащений деградируют до пустых
// страниц и дефолтов — наружу цикл не падает (§ политика распространения:
// ошибки ленты логируются, а не всплывают).
func (f *Feed) RequestNextPage(ctx context.Context) {
	const op = "service/feed/RequestNextPage"

	f.mu.Lock()
	if f.loading || !f.hasMore {
		f.mu.Unlock()
		return
	}

	f.loading = true
	gen := f.gen
	page := f.page
	category := f.category
	f.mu.Unlock()

	batch, totalPages := f.runCycle(ctx, category, page)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.loading = false

	if gen != f.gen {
		// Фильтр сменился, пока цикл был в полёте: результат устарел.
		feedCycles.WithLabelValues(string(category), resultStale).Inc()
		log.From(ctx).Debug("feed_cycle_stale",
			slog.String("op", op),
			slog.String("category", string(category)),
			slog.Int("page", page),
		)
		return
	}

	if len(batch) == 0 {
		f.hasMore = false
		feedCycles.WithLabelValues(string(category), resultExhausted).Inc()
		return
	}

	appended := 0
	for _, it := range batch {
		key := it.Key()
		if _, dup := f.seen[key]; dup {
			continue
		}

		f.seen[key] = struct{}{}
		f.items = append(f.items, it)
		appended++
	}

	f.page = page + 1
	f.hasMore = page+1 < totalPages

	feedCycles.WithLabelValues(string(category), resultAppended).Inc()
	log.From(ctx).Info("feed_page_appended",
		slog.String("op", op),
		slog.String("category", string(category)),
		slog.Int("page", page),
		slog.Int("fetched", len(batch)),
		slog.Int("appended", appended),
		slog.Bool("has_more", page+1 < totalPages),
	)
}

// runCycle собирает батч одного цикла: страницы разделов + обогащение.
// Возвращает полностью устаканенный батч и max(totalPages) по разделам.
func (f *Feed) runCycle(ctx context.Context, category models.Category, page int) ([]models.FeedItem, int) {
	if category != models.CategoryAll {
		res := f.fetchSource(ctx, category, page)
		return res.Items, res.TotalPages
	}

	// Режим "all": все разделы конкурентно, один и тот же индекс страницы.
	type sourceResult struct {
		category models.Category
		page     *models.PageResult
	}

	out := make(chan sourceResult, len(models.Categories))
	var wg sync.WaitGroup
	for _, cat := range models.Categories {
		cat := cat
		wg.Add(1)

		go func() {
			defer wg.Done()
			res := f.fetchSource(ctx, cat, page)
			out <- sourceResult{category: cat, page: res}
		}()
	}

	wg.Wait()
	close(out)

	var merged []models.FeedItem
	totalPages := 0
	for res := range out {
		merged = append(merged, res.page.Items...)
		if res.page.TotalPages > totalPages {
			totalPages = res.page.TotalPages
		}
	}

	// Слитый батч сортируется по убыванию даты публикации; уже накопленная
	// лента при этом не пересортировывается (batches append-ordered).
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged, totalPages
}

// fetchSource забирает и обогащает страницу одного раздела.
// Сбой раздела деградирует до пустой страницы с totalPages=0 и не мешает
// соседним разделам.
func (f *Feed) fetchSource(ctx context.Context, category models.Category, page int) *models.PageResult {
	const op = "service/feed/fetchSource"

	res, err := f.sources[category].FetchPage(ctx, page, f.pageSize)
	if err != nil {
		feedSourceFailures.WithLabelValues(string(category)).Inc()
		log.From(ctx).Warn("feed_source_failed",
			slog.String("op", op),
			slog.String("category", string(category)),
			slog.Int("page", page),
			slog.String("err", err.Error()),
		)
		return &models.PageResult{}
	}

	f.enrich(ctx, res.Items)
	return res
}

// enrich обогащает элементы страницы конкурентно, не больше enrichConc
// элементов одновременно. Возвращается после того, как устаканились все
// подвызовы всех элементов.
func (f *Feed) enrich(ctx context.Context, items []models.FeedItem) {
	sem := make(chan struct{}, f.enrichConc)
	var wg sync.WaitGroup

	for i := range items {
		item := &items[i]
		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()
			f.enrichOne(ctx, item)
		}()
	}

	wg.Wait()
}

// enrichOne подтягивает лайки/комментарии/like-state/теги одного элемента.
// Четыре вызова идут параллельно; каждый сбой деградирует до своего дефолта
// (0 / false / пустой список), элемент из ленты не выпадает.
func (f *Feed) enrichOne(ctx context.Context, item *models.FeedItem) {
	const op = "service/feed/enrichOne"

	lg := log.From(ctx)
	warn := func(call string, err error) {
		feedEnrichFailures.WithLabelValues(call).Inc()
		lg.Warn("feed_enrich_failed",
			slog.String("op", op),
			slog.String("call", call),
			slog.String("key", item.Key()),
			slog.String("err", err.Error()),
		)
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		n, err := f.api.LikeCount(ctx, item.Category, item.ID)
		if err != nil {
			warn("like_count", err)
			n = 0
		}
		item.LikeCount = n
	}()

	go func() {
		defer wg.Done()
		n, err := f.api.CommentCount(ctx, item.Category, item.ID)
		if err != nil {
			warn("comment_count", err)
			n = 0
		}
		item.CommentCount = n
	}()

	go func() {
		defer wg.Done()
		tags, err := f.api.Tags(ctx, item.ID)
		if err != nil || tags == nil {
			if err != nil {
				warn("tags", err)
			}
			tags = []string{}
		}
		item.Tags = tags
	}()

	if f.userID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			liked, err := f.api.CheckLike(ctx, item.Category, item.ID, f.userID)
			if err != nil {
				warn("check_like", err)
				liked = false
			}
			item.IsLiked = liked
		}()
	}

	wg.Wait()
}

// ToggleLike переключает лайк элемента и локально правит единственный
// совпавший по составному ключу элемент накопленной ленты.
func (f *Feed) ToggleLike(ctx context.Context, category models.Category, id int64) (bool, error) {
	const op = "service/feed/ToggleLike"

	if f.userID == "" {
		return false, fmt.Errorf("%s: %w", op, ErrLoginRequired)
	}

	liked, err := f.api.ToggleLike(ctx, category, id, f.userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, ErrUpstream)
	}

	f.mu.Lock()
	for i := range f.items {
		if f.items[i].Category != category || f.items[i].ID != id {
			continue
		}

		f.items[i].IsLiked = liked
		if liked {
			f.items[i].LikeCount++
		} else if f.items[i].LikeCount > 0 {
			f.items[i].LikeCount--
		}
		break
	}
	f.mu.Unlock()

	return liked, nil
}
