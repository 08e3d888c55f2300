package service

import (
	"context"
	"log/slog"

	"github.com/05Daul/miniblog/pkg/log"
)

// Sentinel — источник событий видимости якоря бесконечной прокрутки.
// Канал отдаёт событие каждый раз, когда якорь становится видимым;
// закрытие канала означает, что якорь убран.
type Sentinel interface {
	Visible() <-chan struct{}
}

// ChanSentinel — простейший Sentinel поверх канала.
type ChanSentinel chan struct{}

func (s ChanSentinel) Visible() <-chan struct{} { return s }

// ScrollTrigger подписывается на якорь и запрашивает у агрегатора следующую
// страницу на каждое событие видимости, пока есть непрочитанные страницы.
//
// Это единственный компонент, знающий о видимости; от внутренностей
// агрегатора он отвязан единственным контрактом RequestNextPage (который сам
// по себе single-flight: лишние срабатывания безвредны).
type ScrollTrigger struct {
	feed *Feed
	swap chan Sentinel
}

// NewScrollTrigger создаёт триггер для агрегатора.
func NewScrollTrigger(feed *Feed) *ScrollTrigger {
	return &ScrollTrigger{
		feed: feed,
		swap: make(chan Sentinel, 1),
	}
}

// Observe подменяет наблюдаемый якорь. nil снимает подписку — триггер
// перестаёт срабатывать до следующего Observe (убранный якорь).
func (t *ScrollTrigger) Observe(s Sentinel) {
	// Вытесняем не подхваченную предыдущую замену, если она есть.
	select {
	case <-t.swap:
	default:
	}

	t.swap <- s
}

// Run обслуживает события видимости до отмены контекста.
// Исчерпанная лента (hasMore=false) и идущий цикл гасят срабатывание;
// после Reset ленты триггер продолжает работать с тем же якорем.
func (t *ScrollTrigger) Run(ctx context.Context) {
	const op = "service/trigger/Run"

	var visible <-chan struct{}

	for {
		select {
		case <-ctx.Done():
			log.From(ctx).Debug("scroll_trigger_stop", slog.String("op", op))
			return

		case s := <-t.swap:
			if s != nil {
				visible = s.Visible()
			} else {
				visible = nil
			}

		case _, ok := <-visible:
			if !ok {
				// Якорь убран: ждём нового Observe.
				visible = nil
				continue
			}

			if t.feed.Loading() || !t.feed.HasMore() {
				continue
			}

			t.feed.RequestNextPage(ctx)
		}
	}
}
