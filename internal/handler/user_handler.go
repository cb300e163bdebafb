// Package handler はHTTP APIのハンドラー層を提供する。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/extracker/internal/metrics"
	"github.com/hitoshi/extracker/internal/model"
)

// UserServiceInterface はユーザーハンドラーが必要とするサービスインターフェース。
type UserServiceInterface interface {
	// Create は新規ユーザーを作成する。usernameが空の場合はバリデーションエラーを返す。
	Create(ctx context.Context, username string) (*model.User, error)
	// List は全ユーザーを作成順で返す。
	List(ctx context.Context) ([]model.User, error)
}

// UserHandler はユーザー管理のHTTPハンドラー。
type UserHandler struct {
	service UserServiceInterface
	metrics *metrics.Collector
}

// NewUserHandler はUserHandlerを生成する。
// metricsはnilを許容し、その場合メトリクスを記録しない。
func NewUserHandler(service UserServiceInterface, collector *metrics.Collector) *UserHandler {
	return &UserHandler{
		service: service,
		metrics: collector,
	}
}

// createUserRequest はユーザー作成リクエストのボディ。
type createUserRequest struct {
	Username string `json:"username"`
}

// userResponse はユーザー作成のレスポンス。
type userResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// userListItem はユーザー一覧の1要素。作成レスポンスとはフィールド順が異なる。
type userListItem struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// CreateUser は新規ユーザーを作成する。
// POST /api/users
// ボディが欠落・不正な場合はusername未指定として扱う。
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, model.NewUsernameRequiredError())
		return
	}

	user, err := h.service.Create(r.Context(), req.Username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordUserCreated()
	}

	writeJSON(w, http.StatusOK, userResponse{
		Username: user.Username,
		ID:       user.ID,
	})
}

// ListUsers は全ユーザーの一覧を返す。
// GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	items := make([]userListItem, len(users))
	for i, u := range users {
		items[i] = userListItem{
			ID:       u.ID,
			Username: u.Username,
		}
	}

	writeJSON(w, http.StatusOK, items)
}

// --- ヘルパー関数 ---

// errorResponse はAPIエラーレスポンスの統一フォーマット。
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON はJSONレスポンスを書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// writeAPIError はAPIErrorをHTTPステータスにマッピングしてエラーレスポンスを書き込む。
func writeAPIError(w http.ResponseWriter, apiErr *model.APIError) {
	writeJSON(w, mapAPIErrorToHTTPStatus(apiErr), errorResponse{Error: apiErr.Message})
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
// APIError以外のエラーは永続化層の障害として500で返し、メッセージをそのまま透過する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeAPIError(w, apiErr)
		return
	}

	slog.Error("internal server error", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeUserNotFound:
		return http.StatusNotFound
	case model.ErrCodeUsernameRequired, model.ErrCodeFieldsRequired,
		model.ErrCodeInvalidDuration, model.ErrCodeInvalidDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
