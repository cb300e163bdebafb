package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/extracker/internal/model"
)

// PostgresExerciseRepo はPostgreSQLを使用したエクササイズリポジトリ。
type PostgresExerciseRepo struct {
	db *sql.DB
}

// NewPostgresExerciseRepo はPostgresExerciseRepoを生成する。
func NewPostgresExerciseRepo(db *sql.DB) *PostgresExerciseRepo {
	return &PostgresExerciseRepo{db: db}
}

// Create はエクササイズを作成する。
// IDはUUIDとしてここで採番し、保存済みレコードを返す。
// userIDの存在確認は呼び出し側の責務。
func (r *PostgresExerciseRepo) Create(ctx context.Context, userID, description string, duration int, date time.Time) (*model.Exercise, error) {
	exercise := &model.Exercise{
		ID:          uuid.New().String(),
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO exercises (id, user_id, description, duration, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		exercise.ID, exercise.UserID, exercise.Description,
		exercise.Duration, exercise.Date, exercise.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert exercise: %w", err)
	}

	return exercise, nil
}

// FindByUser は指定ユーザーのエクササイズをフィルタ条件付きで取得する。
// WHERE句はuser_id固定に加え、From/Toが指定された場合のみ日付境界（両端含む）を追加する。
// Limitが正の場合のみLIMIT句を追加する。射影はdescription・duration・dateのみ。
func (r *PostgresExerciseRepo) FindByUser(ctx context.Context, userID string, filter model.LogFilter) ([]model.Exercise, error) {
	query := `SELECT description, duration, date FROM exercises WHERE user_id = $1`
	args := []any{userID}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercises: %w", err)
	}
	defer rows.Close()

	exercises := []model.Exercise{}
	for rows.Next() {
		var ex model.Exercise
		if err := rows.Scan(&ex.Description, &ex.Duration, &ex.Date); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exercises: %w", err)
	}

	return exercises, nil
}

// compile-time interface check
var _ ExerciseRepository = (*PostgresExerciseRepo)(nil)
