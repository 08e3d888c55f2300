package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/05Daul/miniblog/internal/clients"
	"github.com/05Daul/miniblog/internal/commenttree"
	"github.com/05Daul/miniblog/internal/models"
	"github.com/05Daul/miniblog/pkg/log"
)

// Thread — движок ветки комментариев одного поста.
//
// Держит локальный лес и кэш общего числа комментариев, синхронизируемые с
// blog-сервисом по схеме "подтвердил — применил": узел для отображения всегда
// канонический серверный объект, оптимистичных вставок нет, откатов нет.
//
// Single-flight действует на уровень цели мутации (id узла; 0 — форма
// корневого комментария): параллельные правки разных узлов допустимы,
// повторная операция по той же цели до завершения первой — ErrBusy.
type Thread struct {
	blog   clients.BlogAPI
	postID int64
	notify Notifier

	mu       sync.Mutex
	forest   []models.Comment
	count    int64
	inflight map[int64]struct{}
}

// топ-левел форма как цель single-flight.
const composerTarget int64 = 0

// NewThread создаёт движок ветки поста. notify == nil заменяется LogNotifier.
func NewThread(blog clients.BlogAPI, postID int64, notify Notifier) *Thread {
	if notify == nil {
		notify = LogNotifier
	}

	return &Thread{
		blog:     blog,
		postID:   postID,
		notify:   notify,
		inflight: make(map[int64]struct{}),
	}
}

// Snapshot возвращает текущий лес и общий счётчик комментариев.
// Лес — копия верхнего уровня; вложенные структуры разделяются, но все
// операции движка копируют при записи, так что снимок стабилен.
func (t *Thread) Snapshot() ([]models.Comment, int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]models.Comment(nil), t.forest...), t.count
}

// Load загружает с сервера весь лес и счётчик комментариев поста.
func (t *Thread) Load(ctx context.Context) error {
	const op = "service/thread/Load"

	forest, err := t.blog.CommentsByPost(ctx, t.postID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrUpstream)
	}

	count, err := t.blog.CommentCount(ctx, t.postID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrUpstream)
	}

	t.mu.Lock()
	t.forest = forest
	t.count = count
	t.mu.Unlock()

	return nil
}

// Reload — явная процедура восстановления: сбрасывает локальное дерево и
// перечитывает его с сервера. Используется, когда локальное состояние
// предположительно разошлось с серверным.
func (t *Thread) Reload(ctx context.Context) error {
	return t.Load(ctx)
}

// begin занимает цель мутации; false — по цели уже идёт операция.
func (t *Thread) begin(target int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, busy := t.inflight[target]; busy {
		return false
	}

	t.inflight[target] = struct{}{}
	return true
}

func (t *Thread) end(target int64) {
	t.mu.Lock()
	delete(t.inflight, target)
	t.mu.Unlock()
}

// CreateTopLevel создаёт корневой комментарий и вставляет серверный узел в
// начало леса (новейший — сверху).
func (t *Thread) CreateTopLevel(ctx context.Context, userID, content string) (*models.Comment, error) {
	const op = "service/thread/CreateTopLevel"

	userID = strings.TrimSpace(userID)
	content = strings.TrimSpace(content)
	if userID == "" || content == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !t.begin(composerTarget) {
		return nil, fmt.Errorf("%s: %w", op, ErrBusy)
	}
	defer t.end(composerTarget)

	node, err := t.blog.CreateComment(ctx, userID, clients.CreateCommentInput{
		PostID:  t.postID,
		Content: content,
	})
	if err != nil {
		commentMutations.WithLabelValues("create", resultFailed).Inc()
		t.notify(ctx, "댓글 작성 실패")
		return nil, fmt.Errorf("%s: %w", op, ErrUpstream)
	}

	t.mu.Lock()
	t.forest = append([]models.Comment{*node}, t.forest...)
	t.count++
	t.mu.Unlock()

	commentMutations.WithLabelValues("create", resultOK).Inc()
	return node, nil
}

// Reply создаёт ответ и подвешивает серверный узел в конец детей родителя,
// увеличивая его ChildCount. Если родителя в локальном дереве уже нет
// (устаревшая цель), вставка — тихий no-op; общий счётчик всё равно растёт,
// комментарий на сервере создан.
func (t *Thread) Reply(ctx context.Context, userID string, parentID int64, content string) (*models.Comment, error) {
	const op = "service/thread/Reply"

	userID = strings.TrimSpace(userID)
	content = strings.TrimSpace(content)
	if userID == "" || content == "" || parentID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !t.begin(parentID) {
		return nil, fmt.Errorf("%s: %w", op, ErrBusy)
	}
	defer t.end(parentID)

	node, err := t.blog.CreateComment(ctx, userID, clients.CreateCommentInput{
		PostID:   t.postID,
		ParentID: parentID,
		Content:  content,
	})
	if err != nil {
		commentMutations.WithLabelValues("reply", resultFailed).Inc()
		t.notify(ctx, "답글 작성 실패")
		return nil, fmt.Errorf("%s: %w", op, ErrUpstream)
	}

	t.mu.Lock()
	t.forest = commenttree.FindAndTransform(t.forest, parentID, func(p models.Comment) models.Comment {
		p.Replies = append(append([]models.Comment(nil), p.Replies...), *node)
		p.ChildCount++
		return p
	})
	t.count++
	t.mu.Unlock()

	commentMutations.WithLabelValues("reply", resultOK).Inc()
	return node, nil
}

// Edit меняет контент узла. В локальном дереве обновляются только
// Content/UpdatedAt; дети сохраняются как есть.
func (t *Thread) Edit(ctx context.Context, userID string, id int64, content string) (*models.Comment, error) {
	const op = "service/thread/Edit"

	userID = strings.TrimSpace(userID)
	content = strings.TrimSpace(content)
	if userID == "" || content == "" || id <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !t.begin(id) {
		return nil, fmt.Errorf("%s: %w", op, ErrBusy)
	}
	defer t.end(id)

	node, err := t.blog.UpdateComment(ctx, id, userID, content)
	if err != nil {
		if errors.Is(err, clients.ErrPermissionDenied) {
			commentMutations.WithLabelValues("edit", resultDenied).Inc()
			t.notify(ctx, "댓글 수정 권한이 없습니다.")
			return nil, fmt.Errorf("%s: %v: %w", op, err, ErrPermissionDenied)
		}

		commentMutations.WithLabelValues("edit", resultFailed).Inc()
		t.notify(ctx, "댓글 수정 실패")
		return nil, fmt.Errorf("%s: %w", op, ErrUpstream)
	}

	t.mu.Lock()
	t.forest = commenttree.FindAndTransform(t.forest, id, func(c models.Comment) models.Comment {
		c.Content = node.Content
		c.UpdatedAt = node.UpdatedAt
		return c
	})
	t.mu.Unlock()

	commentMutations.WithLabelValues("edit", resultOK).Inc()
	return node, nil
}

// Remove удаляет узел.
//
// Успех применяется локальной хирургией дерева: поддерево вырезается,
// ChildCount родителя и общий счётчик корректируются — полной перезагрузки
// леса на успешном пути нет. Если цель уже отсутствует локально (удалена
// другим зрителем), запускается Reload как процедура сверки.
//
// Отказ в правах: уведомление ровно один раз, локальное состояние
// байт-в-байт не меняется, текст сервиса сохраняется в ошибке.
func (t *Thread) Remove(ctx context.Context, userID string, id int64) error {
	const op = "service/thread/Remove"

	userID = strings.TrimSpace(userID)
	if userID == "" || id <= 0 {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !t.begin(id) {
		return fmt.Errorf("%s: %w", op, ErrBusy)
	}
	defer t.end(id)

	if _, err := t.blog.DeleteComment(ctx, id, userID); err != nil {
		if errors.Is(err, clients.ErrPermissionDenied) {
			commentMutations.WithLabelValues("remove", resultDenied).Inc()
			t.notify(ctx, "댓글 삭제 권한이 없습니다.")
			return fmt.Errorf("%s: %v: %w", op, err, ErrPermissionDenied)
		}

		commentMutations.WithLabelValues("remove", resultFailed).Inc()
		t.notify(ctx, "댓글 삭제 실패")
		return fmt.Errorf("%s: %w", op, ErrUpstream)
	}

	t.mu.Lock()
	node, ok := commenttree.Find(t.forest, id)
	if ok {
		removed := int64(commenttree.SubtreeSize(t.forest, id))
		t.forest = commenttree.RemoveSubtree(t.forest, id)

		if node.ParentID != 0 {
			t.forest = commenttree.FindAndTransform(t.forest, node.ParentID, func(p models.Comment) models.Comment {
				if p.ChildCount > 0 {
					p.ChildCount--
				}
				return p
			})
		}

		t.count -= removed
		if t.count < 0 {
			t.count = 0
		}
	}
	t.mu.Unlock()

	if !ok {
		// Локальное дерево отстало от сервера — сверяемся полной перезагрузкой.
		if err := t.Reload(ctx); err != nil {
			log.From(ctx).Warn("thread_reload_failed",
				"op", op,
				"post_id", t.postID,
				"err", err.Error(),
			)
		}
	}

	commentMutations.WithLabelValues("remove", resultOK).Inc()
	return nil
}
