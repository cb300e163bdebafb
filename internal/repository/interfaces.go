// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"time"

	"github.com/hitoshi/extracker/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// Create はusernameから新規ユーザーを作成する。
	// IDの採番は永続化層が行い、保存済みレコードを返す。
	Create(ctx context.Context, username string) (*model.User, error)

	// List は全ユーザーを作成順で返す。
	List(ctx context.Context) ([]model.User, error)

	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// ExerciseRepository はエクササイズデータの永続化インターフェース。
type ExerciseRepository interface {
	// Create はエクササイズを作成する。
	// userIDの存在確認は呼び出し側の責務であり、ここでは検証しない。
	Create(ctx context.Context, userID, description string, duration int, date time.Time) (*model.Exercise, error)

	// FindByUser は指定ユーザーのエクササイズをフィルタ条件付きで取得する。
	// description・duration・dateのみを射影し、エクササイズ自身のIDは返さない。
	// 並び順はストア任せであり、契約として保証しない。
	FindByUser(ctx context.Context, userID string, filter model.LogFilter) ([]model.Exercise, error)
}
