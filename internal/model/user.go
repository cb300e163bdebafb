// Package model はドメインモデルを定義する。
package model

import "time"

// User はエクササイズを記録するユーザーを表す。
// IDは永続化アダプタが作成時に採番する一意な識別子。
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}
