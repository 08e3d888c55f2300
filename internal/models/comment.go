// Package models содержит доменные сущности клиентского движка miniblog.
package models

import "time"

// Comment — узел дерева комментариев поста.
// Важно:
//   - ID — серверный идентификатор, глобально уникален в пределах всего леса
//     (не только уровня), что позволяет искать узел одним рекурсивным проходом;
//   - ParentID == 0 — корневой комментарий;
//   - ChildCount — кэш количества прямых детей; после каждой локальной мутации
//     обязан совпадать с len(Replies) (за это отвечает движок ветки);
//   - IsDeleted — tombstone: контент маскируется при отдаче наружу, но узел и
//     его поддерево остаются адресуемыми;
//   - Replies — упорядоченный список детей; узел владеет им монопольно,
//     в лесу каждый узел встречается ровно один раз.
type Comment struct {
	ID         int64     `json:"id"`
	ParentID   int64     `json:"parent_id,omitempty"`
	UserID     string    `json:"user_id"`
	Content    string    `json:"content"`
	ChildCount int32     `json:"child_count"`
	IsDeleted  bool      `json:"is_deleted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Replies    []Comment `json:"replies,omitempty"`
}
