package service

import (
	"context"
	"fmt"

	"github.com/05Daul/miniblog/internal/clients"
	"github.com/05Daul/miniblog/internal/models"
)

// Source — единый контракт "дай страницу N" поверх одного раздела.
// Каждый раздел — независимое курсорное пространство, адаптеры не разделяют
// состояние.
type Source interface {
	Category() models.Category
	FetchPage(ctx context.Context, page, size int) (*models.PageResult, error)
}

// categorySource — адаптер одного раздела community-сервиса.
type categorySource struct {
	api      clients.CommunityAPI
	category models.Category
}

// NewSource создаёт адаптер раздела.
func NewSource(api clients.CommunityAPI, category models.Category) Source {
	return &categorySource{api: api, category: category}
}

func (s *categorySource) Category() models.Category {
	return s.category
}

// FetchPage возвращает страницу раздела. Запрос страницы за пределами
// последней — не ошибка: апстрим отвечает пустым content с last=true,
// адаптер отдаёт это как есть (агрегатор в режиме "all" ходит по всем
// разделам с общим индексом страницы и опирается на это поведение).
func (s *categorySource) FetchPage(ctx context.Context, page, size int) (*models.PageResult, error) {
	const op = "service/sources/FetchPage"

	res, err := s.api.FetchPage(ctx, s.category, page, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, s.category, err)
	}

	return res, nil
}
