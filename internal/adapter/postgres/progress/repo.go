// Package progress implements the lesson-progress repository using
// PostgreSQL. All queries use raw SQL: the access paths are fixed
// (member, lesson) key lookups and one guarded UPDATE.
package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/lessonpath/lessonpath-backend/internal/adapter/postgres"
	"github.com/lessonpath/lessonpath-backend/internal/domain"
)

// Repo provides lesson-progress persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const progressColumns = `id, member_id, lesson_id, enrollment_id, position, finished, created_at, updated_at`

const getByMemberAndLessonSQL = `
SELECT ` + progressColumns + `
FROM lesson_progress
WHERE member_id = $1 AND lesson_id = $2`

// getForUpdateSQL takes a row lock so a concurrent updater for the same
// (member, lesson) key blocks until this transaction commits.
const getForUpdateSQL = getByMemberAndLessonSQL + `
FOR UPDATE`

// updatePositionSQL is guarded by the finished flag: a finished row is
// closed to position writes and the UPDATE affects zero rows.
const updatePositionSQL = `
UPDATE lesson_progress
SET position = $3, updated_at = now()
WHERE member_id = $1 AND lesson_id = $2 AND finished = false`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByMemberAndLesson returns the progress row for a (member, lesson) key.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetByMemberAndLesson(ctx context.Context, memberID, lessonID uuid.UUID) (*domain.ProgressRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getByMemberAndLessonSQL, memberID, lessonID)

	rec, err := scanProgress(row)
	if err != nil {
		return nil, postgres.MapError(err, "lesson_progress", lessonID)
	}

	return rec, nil
}

// GetForUpdate is GetByMemberAndLesson with a FOR UPDATE row lock.
// Only meaningful inside a transaction; outside one the lock is released
// as soon as the statement completes.
func (r *Repo) GetForUpdate(ctx context.Context, memberID, lessonID uuid.UUID) (*domain.ProgressRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getForUpdateSQL, memberID, lessonID)

	rec, err := scanProgress(row)
	if err != nil {
		return nil, postgres.MapError(err, "lesson_progress", lessonID)
	}

	return rec, nil
}

// UpdatePosition writes a new position for an unfinished (member, lesson)
// row. Returns domain.ErrNotFound when zero rows are affected: the row is
// missing or its finished flag excludes it from the write.
func (r *Repo) UpdatePosition(ctx context.Context, memberID, lessonID uuid.UUID, position string) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, updatePositionSQL, memberID, lessonID, position)
	if err != nil {
		return postgres.MapError(err, "lesson_progress", lessonID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lesson_progress %s: %w", lessonID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanProgress(row pgx.Row) (*domain.ProgressRecord, error) {
	var rec domain.ProgressRecord
	err := row.Scan(
		&rec.ID,
		&rec.MemberID,
		&rec.LessonID,
		&rec.EnrollmentID,
		&rec.Position,
		&rec.Finished,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
