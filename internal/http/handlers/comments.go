package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/05Daul/miniblog/internal/errors"
	"github.com/05Daul/miniblog/internal/models"
)

// tombstoneContent — текст, которым маскируется контент удалённого узла при
// отдаче наружу. Узел и его поддерево остаются адресуемыми.
const tombstoneContent = "삭제된 댓글입니다."

// commentView — представление узла для фронта: tombstone-узлы отдаются с
// маской вместо контента.
type commentView struct {
	ID         int64         `json:"id"`
	ParentID   int64         `json:"parent_id,omitempty"`
	UserID     string        `json:"user_id"`
	Content    string        `json:"content"`
	ChildCount int32         `json:"child_count"`
	IsDeleted  bool          `json:"is_deleted"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	Replies    []commentView `json:"replies,omitempty"`
}

func toCommentView(c models.Comment) commentView {
	out := commentView{
		ID:         c.ID,
		ParentID:   c.ParentID,
		UserID:     c.UserID,
		Content:    c.Content,
		ChildCount: c.ChildCount,
		IsDeleted:  c.IsDeleted,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}

	if c.IsDeleted {
		out.Content = tombstoneContent
	}

	if len(c.Replies) > 0 {
		out.Replies = make([]commentView, 0, len(c.Replies))
		for _, r := range c.Replies {
			out.Replies = append(out.Replies, toCommentView(r))
		}
	}

	return out
}

func toForestView(forest []models.Comment) []commentView {
	out := make([]commentView, 0, len(forest))
	for _, c := range forest {
		out = append(out, toCommentView(c))
	}

	return out
}

// threadResponse — ветка поста целиком: лес плюс общий счётчик.
type threadResponse struct {
	Comments   []commentView `json:"comments"`
	TotalCount int64         `json:"total_count"`
}

// commentRequest — тело создания/правки комментария.
type commentRequest struct {
	Content string `json:"content"`
}

// postIDParam парсит post_id из пути.
func postIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "post_id"), 10, 64)
	return id, err == nil && id > 0
}

// commentIDParam парсит id комментария из пути.
func commentIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// ListComments перечитывает ветку с сервера и отдаёт её целиком.
func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	th := h.thread(postID)
	if err := th.Load(r.Context()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	forest, count := th.Snapshot()
	writeJSON(w, http.StatusOK, threadResponse{
		Comments:   toForestView(forest),
		TotalCount: count,
	})
}

// CreateComment создаёт корневой комментарий ветки.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var in commentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	node, err := h.thread(postID).CreateTopLevel(r.Context(), r.Header.Get(userIDHeader), in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentView(*node))
}

// CreateReply создаёт ответ на комментарий.
func (h *Handlers) CreateReply(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	parentID, ok := commentIDParam(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var in commentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	node, err := h.thread(postID).Reply(r.Context(), r.Header.Get(userIDHeader), parentID, in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentView(*node))
}

// UpdateComment меняет контент комментария.
func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	id, ok := commentIDParam(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var in commentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	node, err := h.thread(postID).Edit(r.Context(), r.Header.Get(userIDHeader), id, in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentView(*node))
}

// DeleteComment удаляет комментарий вместе с поддеревом.
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	id, ok := commentIDParam(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.thread(postID).Remove(r.Context(), r.Header.Get(userIDHeader), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
