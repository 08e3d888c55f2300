// service содержит клиентский движок miniblog: ветку комментариев поста
// (диспетчер мутаций над чистым деревом) и агрегатор ленты комьюнити
// (мультираздельная пагинация с обогащением и дедупликацией).
//
// Модель конкурентности: оба движка защищают своё состояние мьютексом и
// применяют single-flight — один незавершённый цикл на инстанс агрегатора,
// одна незавершённая мутация на целевой узел ветки. Подтверждение всегда
// предшествует применению: локальное состояние меняется только по успешному
// ответу апстрима, откатов не бывает.
package service

import (
	"context"
	"errors"

	"github.com/05Daul/miniblog/pkg/log"
)

var (
	// ErrInvalidArgument — неверные входные параметры операции.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPermissionDenied — апстрим явно отказал в праве на операцию;
	// локальное состояние не меняется.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrBusy — по этой цели уже выполняется мутация (single-flight).
	ErrBusy = errors.New("operation already in flight")
	// ErrLoginRequired — операция требует вошедшего пользователя.
	ErrLoginRequired = errors.New("login required")
	// ErrUpstream — сбой удалённого сервиса (сеть/5xx).
	ErrUpstream = errors.New("upstream failure")
)

// Notifier — канал пользовательских уведомлений об исходе мутации.
// На каждую попытку операции срабатывает не более одного уведомления.
type Notifier func(ctx context.Context, message string)

// LogNotifier — дефолтный Notifier: пишет уведомление в request-scoped лог.
func LogNotifier(ctx context.Context, message string) {
	log.From(ctx).Info("user_notice", "message", message)
}
