// commenttree реализует чистые операции над лесом комментариев.
//
// Лес — упорядоченный список корневых models.Comment с вложенными Replies.
// Все операции неразрушающие: исходный лес не модифицируется, нетронутые
// поддеревья возвращаются как есть (сохранение идентичности позволяет
// потребителям делать дешёвые проверки "изменилось ли что-то").
// Операция над отсутствующим id — no-op, а не ошибка: локальное дерево может
// законно отставать от сервера в момент действия пользователя.
package commenttree

import "github.com/05Daul/miniblog/internal/models"

// FindAndTransform возвращает новый лес, в котором единственный узел с данным
// id заменён на fn(узел). Поиск — в глубину, id глобально уникален в лесу.
// Если id не найден, возвращается исходный лес без изменений.
func FindAndTransform(forest []models.Comment, id int64, fn func(models.Comment) models.Comment) []models.Comment {
	out, _ := findAndTransform(forest, id, fn)
	return out
}

func findAndTransform(list []models.Comment, id int64, fn func(models.Comment) models.Comment) ([]models.Comment, bool) {
	for i := range list {
		if list[i].ID == id {
			out := append([]models.Comment(nil), list...)
			out[i] = fn(list[i])
			return out, true
		}

		if sub, ok := findAndTransform(list[i].Replies, id, fn); ok {
			out := append([]models.Comment(nil), list...)
			out[i].Replies = sub
			return out, true
		}
	}

	return list, false
}

// RemoveSubtree возвращает новый лес без узла с данным id и всего его
// поддерева. Порядок и содержимое остальных узлов сохраняются.
// Если id не найден, возвращается исходный лес без изменений.
func RemoveSubtree(forest []models.Comment, id int64) []models.Comment {
	out, _ := removeSubtree(forest, id)
	return out
}

func removeSubtree(list []models.Comment, id int64) ([]models.Comment, bool) {
	for i := range list {
		if list[i].ID == id {
			out := make([]models.Comment, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			return out, true
		}

		if sub, ok := removeSubtree(list[i].Replies, id); ok {
			out := append([]models.Comment(nil), list...)
			out[i].Replies = sub
			return out, true
		}
	}

	return list, false
}

// Find возвращает узел с данным id (копию значения) и признак наличия.
func Find(forest []models.Comment, id int64) (models.Comment, bool) {
	for i := range forest {
		if forest[i].ID == id {
			return forest[i], true
		}

		if c, ok := Find(forest[i].Replies, id); ok {
			return c, true
		}
	}

	return models.Comment{}, false
}

// Size — общее число узлов в лесу, включая вложенные.
func Size(forest []models.Comment) int {
	n := 0
	for i := range forest {
		n += 1 + Size(forest[i].Replies)
	}

	return n
}

// SubtreeSize — число узлов в поддереве с корнем id (сам узел включительно).
// Для отсутствующего id возвращает 0.
func SubtreeSize(forest []models.Comment, id int64) int {
	node, ok := Find(forest, id)
	if !ok {
		return 0
	}

	return 1 + Size(node.Replies)
}
