// Package exercise はエクササイズ記録とログ取得のドメインロジックを提供する。
package exercise

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hitoshi/extracker/internal/model"
	"github.com/hitoshi/extracker/internal/repository"
)

// Service はエクササイズ管理のサービス層。
type Service struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) *Service {
	return &Service{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
	}
}

// Log はユーザーに対してエクササイズを記録する。
// 書き込み前に対象ユーザーの存在を必ず確認し、存在しない場合はレコードを書き込まずに
// UserNotFoundエラーを返す。成功時は所有ユーザーと保存済みエクササイズを返す。
func (s *Service) Log(ctx context.Context, userID, description string, duration int, date time.Time) (*model.User, *model.Exercise, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, nil, model.NewUserNotFoundError()
	}

	exercise, err := s.exerciseRepo.Create(ctx, userID, description, duration, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	slog.Info("exercise logged",
		slog.String("user_id", userID),
		slog.String("exercise_id", exercise.ID),
		slog.Int("duration", exercise.Duration),
	)

	return user, exercise, nil
}

// Log はユーザーのエクササイズログを表す。
// Countはフィルタ・件数制限適用後の件数であり、ユーザーの総記録数ではない。
type Log struct {
	Username string
	UserID   string
	Count    int
	Entries  []model.Exercise
}

// BuildLog はユーザーのエクササイズログをフィルタ条件付きで構築する。
// フィルタ条件の有無に関わらず、エクササイズの検索より先にユーザーを解決し、
// 存在しない場合はUserNotFoundエラーを返す。
func (s *Service) BuildLog(ctx context.Context, userID string, filter model.LogFilter) (*Log, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError()
	}

	exercises, err := s.exerciseRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find exercises: %w", err)
	}

	return &Log{
		Username: user.Username,
		UserID:   user.ID,
		Count:    len(exercises),
		Entries:  exercises,
	}, nil
}
