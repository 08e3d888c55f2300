package models

import (
	"fmt"
	"time"
)

// Category — раздел комьюнити-борды. Каждый раздел пагинируется независимо.
type Category string

const (
	CategoryConcern Category = "concern"
	CategoryProject Category = "project"
	CategoryStudy   Category = "study"

	// CategoryAll — агрегированная лента по всем разделам.
	CategoryAll Category = "all"
)

// Categories — разделы, участвующие в агрегированной ленте.
var Categories = []Category{CategoryConcern, CategoryProject, CategoryStudy}

// Valid сообщает, допустимо ли значение как фильтр ленты.
func (c Category) Valid() bool {
	switch c {
	case CategoryConcern, CategoryProject, CategoryStudy, CategoryAll:
		return true
	}

	return false
}

// RecruitmentStatus — статус набора (для project/study).
type RecruitmentStatus string

const (
	RecruitmentOpen   RecruitmentStatus = "OPEN"
	RecruitmentClosed RecruitmentStatus = "CLOSED"
)

// FeedItem — элемент агрегированной ленты комьюнити.
// Важно:
//   - идентификатор уникален только внутри раздела, поэтому ключом уникальности
//     ленты служит пара (Category, ID) — см. Key();
//   - LikeCount/CommentCount/IsLiked/Tags — обогащение, подтягиваемое по каждому
//     элементу отдельными вызовами; при сбое любого из них элемент остаётся в
//     ленте с безопасным значением по умолчанию (0 / false / пустой список);
//   - Status/Deadline/StartDate присутствуют не во всех разделах.
type FeedItem struct {
	ID       int64    `json:"id"`
	Category Category `json:"category"`

	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	LikeCount    int64    `json:"like_count"`
	CommentCount int64    `json:"comment_count"`
	IsLiked      bool     `json:"is_liked"`
	Tags         []string `json:"tags"`

	Status    RecruitmentStatus `json:"status,omitempty"`
	Deadline  *time.Time        `json:"deadline,omitempty"`
	StartDate *time.Time        `json:"start_date,omitempty"`
}

// Key — составной ключ уникальности элемента в агрегированной ленте.
func (f FeedItem) Key() string {
	return fmt.Sprintf("%s-%d", f.Category, f.ID)
}

// PageResult — результат запроса одной страницы раздела.
type PageResult struct {
	Items      []FeedItem
	Last       bool
	TotalPages int
}
