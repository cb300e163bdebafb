// Package model はドメインモデルを定義する。
package model

import "time"

// Exercise はユーザーが記録した1件のエクササイズを表す。
// UserIDは弱い参照であり、外部キー制約は持たない。
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int
	Date        time.Time
	CreatedAt   time.Time
}

// LogFilter はエクササイズログ取得時の絞り込み条件を表す。
// From/Toはnilの場合その境界を適用しない。Limitが0以下の場合は無制限。
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}
