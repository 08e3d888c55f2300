// errors стандартизирует ответы об ошибках HTTP-слоя miniblog.
// На вход он принимает ошибку (сентинели движка/клиентов апстримов),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: сентинели internal/service и
// internal/clients.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/05Daul/miniblog/internal/clients"
	"github.com/05Daul/miniblog/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку движка в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
//   - сентинели маппятся по таблице base();
//   - прочее - 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)

	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// base — маппинг сентинелей движка -> HTTP/FE-код/сообщение:
//   - ErrInvalidArgument (битые входные/фильтр/идентификатор) -> 400
//   - ErrLoginRequired -> 401 (операция требует вошедшего пользователя)
//   - ErrPermissionDenied -> 403 (апстрим отказал в праве)
//   - ErrNotFound -> 404
//   - ErrBusy -> 409 (single-flight: мутация цели уже в полёте)
//   - ErrUpstream -> 502 (сбой удалённого сервиса)
//   - Canceled -> 499 (клиент закрыл соединение)
//   - DeadlineExceeded -> 504 (таймаут запроса)
//   - прочее -> 500/internal
func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrLoginRequired):
		return http.StatusUnauthorized, "login_required", "login required"
	case errors.Is(err, service.ErrPermissionDenied), errors.Is(err, clients.ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied", "permission denied"
	case errors.Is(err, clients.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrBusy):
		return http.StatusConflict, "busy", "operation already in flight"
	case errors.Is(err, service.ErrUpstream):
		return http.StatusBadGateway, "upstream_failure", "upstream failure"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
