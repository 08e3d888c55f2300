package clients

// Тесты HTTP-клиентов апстримов (internal/clients).
//
//  Проверяем:
//  - парсинг таймстемпов Java-сервисов (RFC3339 и "голый" LocalDateTime);
//  - конверсию wire-формата blog-сервиса в доменный лес (parentCommentId:
//    null -> корень, рекурсивные replies);
//  - маппинг неуспешных ответов: 404 -> ErrNotFound, маркер отказа в правах ->
//    ErrPermissionDenied (в т.ч. на успешном статусе текстового ответа),
//    прочее -> ErrUnexpectedStatus;
//  - сохранение текста сервиса внутри ErrPermissionDenied;
//  - передачу заголовка userSignId и тела создания (parentCommentId: null
//    для корня);
//  - конверсию Spring-конверта пагинации community-сервиса;
//  - read-through кэш счётчиков (хит не ходит в сеть, промах пишет в кэш).
//
// Подготовка окружения:
//   go test ./internal/clients -v -race -count=1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/05Daul/miniblog/internal/models"
)

// fakeCounts — потокобезопасный in-memory CountsCache для тестов.
type fakeCounts struct {
	mu   sync.Mutex
	data map[string]int64
}

func newFakeCounts() *fakeCounts {
	return &fakeCounts{data: make(map[string]int64)}
}

func (f *fakeCounts) Get(_ context.Context, key string) (int64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.data[key]
	return v, ok
}

func (f *fakeCounts) Set(_ context.Context, key string, value int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.data[key] = value
}

// Таблица форматов таймстемпов апстримов.
func TestUpstreamTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "rfc3339",
			raw:  `"2026-05-01T12:30:00Z"`,
			want: time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "rfc3339_with_offset",
			raw:  `"2026-05-01T21:30:00+09:00"`,
			want: time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "naive_local_date_time",
			raw:  `"2026-05-01T12:30:00"`,
			want: time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "naive_with_fraction",
			raw:  `"2026-05-01T12:30:00.123456"`,
			want: time.Date(2026, 5, 1, 12, 30, 0, 123456000, time.UTC),
		},
		{
			name: "empty_string_is_zero",
			raw:  `""`,
			want: time.Time{},
		},
		{
			name:    "garbage",
			raw:     `"yesterday"`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var u upstreamTime
			err := json.Unmarshal([]byte(tc.raw), &u)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.True(t, tc.want.Equal(u.Time), "got %v, want %v", u.Time, tc.want)
		})
	}
}

// Конверсия wire-формата: вложенные replies, parentCommentId: null -> корень.
func TestBlogClient_CommentsByPost_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/comments/post/42", r.URL.Path)

		io.WriteString(w, `[
			{
				"commentId": 1,
				"parentCommentId": null,
				"userId": "alice",
				"content": "root",
				"childCount": 1,
				"isDeleted": false,
				"createdAt": "2026-05-01T12:00:00",
				"updatedAt": "2026-05-01T12:00:00",
				"replies": [
					{
						"commentId": 2,
						"parentCommentId": 1,
						"userId": "bob",
						"content": "reply",
						"childCount": 0,
						"isDeleted": true,
						"createdAt": "2026-05-01T12:05:00Z",
						"updatedAt": "2026-05-01T12:05:00Z",
						"replies": []
					}
				]
			}
		]`)
	}))
	defer srv.Close()

	c := NewBlogClient(srv.URL, srv.Client())

	forest, err := c.CommentsByPost(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, forest, 1)

	root := forest[0]
	require.Equal(t, int64(1), root.ID)
	require.Zero(t, root.ParentID)
	require.Equal(t, int32(1), root.ChildCount)
	require.Len(t, root.Replies, 1)

	reply := root.Replies[0]
	require.Equal(t, int64(2), reply.ID)
	require.Equal(t, int64(1), reply.ParentID)
	require.True(t, reply.IsDeleted)
	require.True(t, time.Date(2026, 5, 1, 12, 5, 0, 0, time.UTC).Equal(reply.CreatedAt))
}

// Маппинг неуспешных статусов JSON-пути.
func TestBlogClient_CommentsByPost_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not_found", status: http.StatusNotFound, body: "no such post", wantErr: ErrNotFound},
		{name: "permission_marker", status: http.StatusForbidden, body: "댓글 조회 권한이 없습니다.", wantErr: ErrPermissionDenied},
		{name: "internal", status: http.StatusInternalServerError, body: "oops", wantErr: ErrUnexpectedStatus},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			c := NewBlogClient(srv.URL, srv.Client())

			_, err := c.CommentsByPost(context.Background(), 1)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// Создание: заголовок userSignId, parentCommentId: null для корня и
// заполненный для ответа.
func TestBlogClient_CreateComment_WireFormat(t *testing.T) {
	var got struct {
		userID string
		body   map[string]json.RawMessage
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/comments", r.URL.Path)

		got.userID = r.Header.Get("userSignId")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got.body))

		io.WriteString(w, `{"commentId": 10, "parentCommentId": null, "userId": "alice", "content": "hi"}`)
	}))
	defer srv.Close()

	c := NewBlogClient(srv.URL, srv.Client())

	node, err := c.CreateComment(context.Background(), "alice", CreateCommentInput{PostID: 42, Content: "hi"})
	require.NoError(t, err)
	require.Equal(t, int64(10), node.ID)
	require.Zero(t, node.ParentID)

	require.Equal(t, "alice", got.userID)
	require.JSONEq(t, "null", string(got.body["parentCommentId"]))
	require.JSONEq(t, "42", string(got.body["postId"]))

	_, err = c.CreateComment(context.Background(), "alice", CreateCommentInput{PostID: 42, ParentID: 7, Content: "hi"})
	require.NoError(t, err)
	require.JSONEq(t, "7", string(got.body["parentCommentId"]))
}

// Текстовый ответ удаления: успех возвращает текст как есть.
func TestBlogClient_DeleteComment_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/comments/7", r.URL.Path)
		require.Equal(t, "alice", r.Header.Get("userSignId"))

		io.WriteString(w, "삭제 완료")
	}))
	defer srv.Close()

	c := NewBlogClient(srv.URL, srv.Client())

	text, err := c.DeleteComment(context.Background(), 7, "alice")
	require.NoError(t, err)
	require.Equal(t, "삭제 완료", text)
}

// Отказ в правах приходит текстом на успешном статусе: всё равно
// ErrPermissionDenied, текст сервиса сохраняется в ошибке.
func TestBlogClient_DeleteComment_PermissionInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "댓글 삭제 권한이 없습니다.")
	}))
	defer srv.Close()

	c := NewBlogClient(srv.URL, srv.Client())

	_, err := c.DeleteComment(context.Background(), 7, "mallory")
	require.ErrorIs(t, err, ErrPermissionDenied)
	require.Contains(t, err.Error(), "댓글 삭제 권한이 없습니다.")
}

// Spring-конверт пагинации: content/last/totalPages, дефолтные теги,
// поля набора (status/deadline) доезжают до модели.
func TestCommunityClient_FetchPage_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/project/list", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "10", r.URL.Query().Get("size"))

		io.WriteString(w, `{
			"content": [
				{
					"communityId": 5,
					"title": "side project",
					"content": "join us",
					"userId": "erin",
					"createdAt": "2026-06-01T10:00:00",
					"status": "OPEN",
					"deadline": "2026-07-01T00:00:00"
				}
			],
			"last": false,
			"totalPages": 4
		}`)
	}))
	defer srv.Close()

	c := NewCommunityClient(srv.URL, srv.Client(), nil)

	res, err := c.FetchPage(context.Background(), models.CategoryProject, 2, 10)
	require.NoError(t, err)
	require.False(t, res.Last)
	require.Equal(t, 4, res.TotalPages)
	require.Len(t, res.Items, 1)

	it := res.Items[0]
	require.Equal(t, "project-5", it.Key())
	require.Equal(t, models.RecruitmentOpen, it.Status)
	require.NotNil(t, it.Deadline)
	require.NotNil(t, it.Tags)
	require.Empty(t, it.Tags)
}

// Read-through кэш: промах ходит в сеть и пишет в кэш, хит сеть не трогает.
func TestCommunityClient_LikeCount_CacheReadThrough(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, "/likes/concern/5/count", r.URL.Path)
		io.WriteString(w, "12")
	}))
	defer srv.Close()

	counts := newFakeCounts()
	c := NewCommunityClient(srv.URL, srv.Client(), counts)

	n, err := c.LikeCount(context.Background(), models.CategoryConcern, 5)
	require.NoError(t, err)
	require.Equal(t, int64(12), n)
	require.Equal(t, 1, calls)

	cached, ok := counts.Get(context.Background(), "miniblog:likes:concern:5")
	require.True(t, ok)
	require.Equal(t, int64(12), cached)

	n, err = c.LikeCount(context.Background(), models.CategoryConcern, 5)
	require.NoError(t, err)
	require.Equal(t, int64(12), n)
	require.Equal(t, 1, calls)
}

// CheckLike передаёт пользователя заголовком и декодирует булево тело.
func TestCommunityClient_CheckLike_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/likes/study/3/check", r.URL.Path)
		require.Equal(t, "alice", r.Header.Get("userSignId"))
		io.WriteString(w, "true")
	}))
	defer srv.Close()

	c := NewCommunityClient(srv.URL, srv.Client(), nil)

	liked, err := c.CheckLike(context.Background(), models.CategoryStudy, 3, "alice")
	require.NoError(t, err)
	require.True(t, liked)
}

// ToggleLike возвращает новое состояние.
func TestCommunityClient_ToggleLike_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/likes/concern/9/toggle", r.URL.Path)
		require.Equal(t, "alice", r.Header.Get("userSignId"))
		io.WriteString(w, "false")
	}))
	defer srv.Close()

	c := NewCommunityClient(srv.URL, srv.Client(), nil)

	liked, err := c.ToggleLike(context.Background(), models.CategoryConcern, 9, "alice")
	require.NoError(t, err)
	require.False(t, liked)
}
