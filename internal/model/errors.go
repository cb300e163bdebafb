// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError はクライアントに返すエラーを表す。
// MessageはそのままレスポンスボディのerrorフィールドとしてJSON化される。
type APIError struct {
	Code    string // エラーコード（HTTPステータスへのマッピングに使用）
	Message string // クライアント向けメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeUsernameRequired = "USERNAME_REQUIRED"
	ErrCodeFieldsRequired   = "FIELDS_REQUIRED"
	ErrCodeInvalidDuration  = "INVALID_DURATION"
	ErrCodeInvalidDate      = "INVALID_DATE"
	ErrCodeUserNotFound     = "USER_NOT_FOUND"
)

// NewUsernameRequiredError はusername未指定エラーを生成する。
func NewUsernameRequiredError() *APIError {
	return &APIError{
		Code:    ErrCodeUsernameRequired,
		Message: "Username is required",
	}
}

// NewFieldsRequiredError はdescription/duration未指定エラーを生成する。
func NewFieldsRequiredError() *APIError {
	return &APIError{
		Code:    ErrCodeFieldsRequired,
		Message: "Description and duration are required",
	}
}

// NewInvalidDurationError はdurationが整数として解釈できない場合のエラーを生成する。
func NewInvalidDurationError() *APIError {
	return &APIError{
		Code:    ErrCodeInvalidDuration,
		Message: "Duration must be an integer",
	}
}

// NewInvalidDateError はdateが日付として解釈できない場合のエラーを生成する。
func NewInvalidDateError() *APIError {
	return &APIError{
		Code:    ErrCodeInvalidDate,
		Message: "Invalid date format",
	}
}

// NewUserNotFoundError は対象ユーザーが存在しない場合のエラーを生成する。
func NewUserNotFoundError() *APIError {
	return &APIError{
		Code:    ErrCodeUserNotFound,
		Message: "User not found",
	}
}
