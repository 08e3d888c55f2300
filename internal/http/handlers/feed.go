package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/05Daul/miniblog/internal/errors"
	"github.com/05Daul/miniblog/internal/models"
	"github.com/05Daul/miniblog/internal/service"
)

// feedResponse — снимок состояния инстанса ленты.
type feedResponse struct {
	Items    []models.FeedItem `json:"items"`
	Category models.Category   `json:"category"`
	Page     int               `json:"page"`
	HasMore  bool              `json:"has_more"`
	Loading  bool              `json:"loading"`
}

// resetRequest — тело смены фильтра раздела.
type resetRequest struct {
	Category models.Category `json:"category"`
}

// toggleLikeResponse — новое состояние лайка после переключения.
type toggleLikeResponse struct {
	Liked bool `json:"liked"`
}

func (h *Handlers) feedFromRequest(r *http.Request) *service.Feed {
	return h.feed(r.Header.Get(feedIDHeader), r.Header.Get(userIDHeader))
}

func feedSnapshot(f *service.Feed) feedResponse {
	return feedResponse{
		Items:    f.Items(),
		Category: f.ActiveCategory(),
		Page:     f.Page(),
		HasMore:  f.HasMore(),
		Loading:  f.Loading(),
	}
}

// GetFeed отдаёт накопленное состояние ленты без запроса к апстримам.
func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, feedSnapshot(h.feedFromRequest(r)))
}

// FeedNext выполняет один цикл подгрузки и отдаёт свежий снимок.
// Идущий цикл и исчерпанная лента делают вызов no-op: фронт просто получает
// текущее состояние.
func (h *Handlers) FeedNext(w http.ResponseWriter, r *http.Request) {
	f := h.feedFromRequest(r)
	f.RequestNextPage(r.Context())
	writeJSON(w, http.StatusOK, feedSnapshot(f))
}

// FeedReset меняет фильтр раздела и отдаёт обнулённый снимок.
func (h *Handlers) FeedReset(w http.ResponseWriter, r *http.Request) {
	var in resetRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	f := h.feedFromRequest(r)
	if err := f.Reset(in.Category); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, feedSnapshot(f))
}

// ToggleLike переключает лайк элемента ленты.
func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	category := models.Category(chi.URLParam(r, "category"))
	if !category.Valid() || category == models.CategoryAll {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	liked, err := h.feedFromRequest(r).ToggleLike(r.Context(), category, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleLikeResponse{Liked: liked})
}
