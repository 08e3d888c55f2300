package clients

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/05Daul/miniblog/internal/models"
)

// BlogClient — HTTP-клиент blog-сервиса (комментарии постов).
type BlogClient struct {
	base string
	hc   *http.Client
}

// NewBlogClient создаёт клиент blog-сервиса.
func NewBlogClient(baseURL string, hc *http.Client) *BlogClient {
	if hc == nil {
		hc = &http.Client{Timeout: 5 * time.Second}
	}

	return &BlogClient{base: strings.TrimRight(baseURL, "/"), hc: hc}
}

// commentDTO — wire-формат комментария blog-сервиса (camelCase, Java-style).
type commentDTO struct {
	CommentID       int64        `json:"commentId"`
	ParentCommentID *int64       `json:"parentCommentId"`
	UserID          string       `json:"userId"`
	Content         string       `json:"content"`
	ChildCount      int32        `json:"childCount"`
	IsDeleted       bool         `json:"isDeleted"`
	CreatedAt       upstreamTime `json:"createdAt"`
	UpdatedAt       upstreamTime `json:"updatedAt"`
	Replies         []commentDTO `json:"replies"`
}

func (d commentDTO) toModel() models.Comment {
	var parentID int64
	if d.ParentCommentID != nil {
		parentID = *d.ParentCommentID
	}

	out := models.Comment{
		ID:         d.CommentID,
		ParentID:   parentID,
		UserID:     d.UserID,
		Content:    d.Content,
		ChildCount: d.ChildCount,
		IsDeleted:  d.IsDeleted,
		CreatedAt:  d.CreatedAt.Time,
		UpdatedAt:  d.UpdatedAt.Time,
	}

	if len(d.Replies) > 0 {
		out.Replies = make([]models.Comment, 0, len(d.Replies))
		for _, r := range d.Replies {
			out.Replies = append(out.Replies, r.toModel())
		}
	}

	return out
}

// CommentsByPost возвращает весь лес комментариев поста.
func (c *BlogClient) CommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	const op = "clients/blog/CommentsByPost"

	var dtos []commentDTO
	url := fmt.Sprintf("%s/comments/post/%d", c.base, postID)
	if err := doJSON(ctx, c.hc, http.MethodGet, url, nil, nil, &dtos); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	forest := make([]models.Comment, 0, len(dtos))
	for _, d := range dtos {
		forest = append(forest, d.toModel())
	}

	return forest, nil
}

// CommentCount возвращает суммарное число комментариев поста.
func (c *BlogClient) CommentCount(ctx context.Context, postID int64) (int64, error) {
	const op = "clients/blog/CommentCount"

	var count int64
	url := fmt.Sprintf("%s/comments/count/%d", c.base, postID)
	if err := doJSON(ctx, c.hc, http.MethodGet, url, nil, nil, &count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// createCommentRequest — wire-формат создания (parentCommentId: null — корень).
type createCommentRequest struct {
	PostID          int64  `json:"postId"`
	ParentCommentID *int64 `json:"parentCommentId"`
	Content         string `json:"content"`
}

// CreateComment создаёт комментарий; возвращаемый узел — канонический серверный
// объект (клиент никогда не конструирует узел сам).
func (c *BlogClient) CreateComment(ctx context.Context, userID string, in CreateCommentInput) (*models.Comment, error) {
	const op = "clients/blog/CreateComment"

	body := createCommentRequest{PostID: in.PostID, Content: in.Content}
	if in.ParentID != 0 {
		body.ParentCommentID = &in.ParentID
	}

	var dto commentDTO
	url := c.base + "/comments"
	headers := map[string]string{userIDHeader: userID}
	if err := doJSON(ctx, c.hc, http.MethodPost, url, headers, body, &dto); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := dto.toModel()
	return &out, nil
}

// UpdateComment меняет контент; возвращает канонический серверный узел.
func (c *BlogClient) UpdateComment(ctx context.Context, id int64, userID, content string) (*models.Comment, error) {
	const op = "clients/blog/UpdateComment"

	var dto commentDTO
	url := fmt.Sprintf("%s/comments/%d", c.base, id)
	headers := map[string]string{userIDHeader: userID}
	if err := doJSON(ctx, c.hc, http.MethodPut, url, headers, map[string]string{"content": content}, &dto); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := dto.toModel()
	return &out, nil
}

// DeleteComment удаляет комментарий. Ответ сервиса текстовый; отказ в правах
// приходит маркерной подстрокой и транслируется в ErrPermissionDenied.
func (c *BlogClient) DeleteComment(ctx context.Context, id int64, userID string) (string, error) {
	const op = "clients/blog/DeleteComment"

	url := fmt.Sprintf("%s/comments/%d", c.base, id)
	headers := map[string]string{userIDHeader: userID}
	text, err := doText(ctx, c.hc, http.MethodDelete, url, headers)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return text, nil
}
