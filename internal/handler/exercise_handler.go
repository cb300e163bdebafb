package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/extracker/internal/exercise"
	"github.com/hitoshi/extracker/internal/metrics"
	"github.com/hitoshi/extracker/internal/model"
)

// ExerciseServiceInterface はエクササイズハンドラーが必要とするサービスインターフェース。
type ExerciseServiceInterface interface {
	// Log はユーザーに対してエクササイズを記録する。
	// 対象ユーザーが存在しない場合はUserNotFoundエラーを返す。
	Log(ctx context.Context, userID, description string, duration int, date time.Time) (*model.User, *model.Exercise, error)
	// BuildLog はユーザーのエクササイズログをフィルタ条件付きで構築する。
	BuildLog(ctx context.Context, userID string, filter model.LogFilter) (*exercise.Log, error)
}

// ExerciseHandler はエクササイズ記録・ログ取得のHTTPハンドラー。
type ExerciseHandler struct {
	service ExerciseServiceInterface
	metrics *metrics.Collector
}

// NewExerciseHandler はExerciseHandlerを生成する。
// metricsはnilを許容し、その場合メトリクスを記録しない。
func NewExerciseHandler(service ExerciseServiceInterface, collector *metrics.Collector) *ExerciseHandler {
	return &ExerciseHandler{
		service: service,
		metrics: collector,
	}
}

// logExerciseRequest はエクササイズ記録リクエストのボディ。
// durationは数値・数値文字列の両方を受け付けるため、生のまま保持して後段で解釈する。
type logExerciseRequest struct {
	Description string          `json:"description"`
	Duration    json.RawMessage `json:"duration"`
	Date        string          `json:"date"`
}

// logExerciseResponse はエクササイズ記録のレスポンス。
// IDは新規エクササイズではなく所有ユーザーのIDを返す。ログ取得レスポンスと
// 同じ形を保つための意図的な契約。
type logExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

// logEntry はログの1要素。エクササイズ自身のIDは含まない。
type logEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// logResponse はログ取得のレスポンス。
// Countはフィルタ・件数制限適用後の件数。
type logResponse struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []logEntry `json:"log"`
}

// LogExercise はユーザーに対してエクササイズを記録する。
// POST /api/users/:id/exercises
// バリデーション順序: 必須フィールドの存在確認（400）→ ユーザー存在確認（404）。
func (h *ExerciseHandler) LogExercise(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req logExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// ボディ欠落・不正JSONは必須フィールド未指定として扱う
		writeAPIError(w, model.NewFieldsRequiredError())
		return
	}

	if req.Description == "" || len(req.Duration) == 0 || string(req.Duration) == "null" {
		writeAPIError(w, model.NewFieldsRequiredError())
		return
	}

	duration, err := parseDuration(req.Duration)
	if err != nil {
		writeAPIError(w, model.NewInvalidDurationError())
		return
	}
	if duration == 0 {
		// 元実装の真偽値チェックに合わせ、0は未指定と同等に扱う
		writeAPIError(w, model.NewFieldsRequiredError())
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := model.ParseDate(req.Date)
		if err != nil {
			writeAPIError(w, model.NewInvalidDateError())
			return
		}
		date = parsed
	}

	user, ex, err := h.service.Log(r.Context(), userID, req.Description, duration, date)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordExerciseLogged()
	}

	writeJSON(w, http.StatusOK, logExerciseResponse{
		Username:    user.Username,
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        model.FormatDate(ex.Date),
		ID:          user.ID,
	})
}

// GetLogs はユーザーのエクササイズログを取得する。
// GET /api/users/:id/logs?from=&to=&limit=
// from/toは両端を含む日付境界。解析できない境界と非数値・非正のlimitは無視する。
func (h *ExerciseHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	query := r.URL.Query()

	filter := model.LogFilter{}

	if v := query.Get("from"); v != "" {
		if t, err := model.ParseDate(v); err == nil {
			filter.From = &t
		}
	}
	if v := query.Get("to"); v != "" {
		if t, err := model.ParseDate(v); err == nil {
			filter.To = &t
		}
	}
	if v := query.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	log, err := h.service.BuildLog(r.Context(), userID, filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	entries := make([]logEntry, len(log.Entries))
	for i, ex := range log.Entries {
		entries[i] = logEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        model.FormatDate(ex.Date),
		}
	}

	writeJSON(w, http.StatusOK, logResponse{
		Username: log.Username,
		Count:    log.Count,
		ID:       log.UserID,
		Log:      entries,
	})
}

// parseDuration はリクエストボディのdurationフィールドを整数として解釈する。
// JSON数値と数値文字列（"30"）の両方を受け付け、小数は切り捨てる。
func parseDuration(raw json.RawMessage) (int, error) {
	s := string(bytes.Trim(bytes.TrimSpace(raw), `"`))
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
