// Package studylog implements persistence for study-time audit entries.
// The table is append-only: entries are created once and never updated.
package studylog

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/lessonpath/lessonpath-backend/internal/adapter/postgres"
	"github.com/lessonpath/lessonpath-backend/internal/domain"
)

// Repo provides study-time log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
	sb sq.StatementBuilderType
}

// New creates a new study-time log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const logColumns = `id, member_id, course_id, lesson_id, course_lesson_id, enrollment_id,
       elapsed_seconds, logout_pause, login_resume, position_token, answer, created_at`

const createSQL = `
INSERT INTO study_time_logs (id, member_id, course_id, lesson_id, course_lesson_id, enrollment_id,
                             elapsed_seconds, logout_pause, login_resume, position_token, answer)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + logColumns

const totalSecondsSQL = `
SELECT COALESCE(SUM(elapsed_seconds), 0)
FROM study_time_logs
WHERE member_id = $1`

// Create inserts a new study-time log entry and returns the stored row.
func (r *Repo) Create(ctx context.Context, entry *domain.StudyTimeLogEntry) (*domain.StudyTimeLogEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, createSQL,
		entry.ID,
		entry.MemberID,
		entry.CourseID,
		entry.LessonID,
		entry.CourseLessonID,
		entry.EnrollmentID,
		entry.ElapsedSeconds,
		entry.LogoutPause,
		entry.LoginResume,
		entry.PositionToken,
		entry.Answer,
	)

	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "study_time_log", entry.ID)
	}

	return created, nil
}

// ListByMember returns the member's study-time log entries, newest first.
// The filter narrows by lesson and by creation time bounds; nil fields are ignored.
func (r *Repo) ListByMember(ctx context.Context, memberID uuid.UUID, filter domain.StudyLogFilter) ([]domain.StudyTimeLogEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	builder := r.sb.
		Select("id", "member_id", "course_id", "lesson_id", "course_lesson_id", "enrollment_id",
			"elapsed_seconds", "logout_pause", "login_resume", "position_token", "answer", "created_at").
		From("study_time_logs").
		Where(sq.Eq{"member_id": memberID}).
		OrderBy("created_at DESC")

	if filter.LessonID != nil {
		builder = builder.Where(sq.Eq{"lesson_id": *filter.LessonID})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.Lt{"created_at": *filter.To})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "study_time_log", memberID)
	}
	defer rows.Close()

	var entries []domain.StudyTimeLogEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, postgres.MapError(err, "study_time_log", memberID)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "study_time_log", memberID)
	}

	return entries, nil
}

// TotalSecondsByMember returns the sum of elapsed seconds logged for a member.
func (r *Repo) TotalSecondsByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := querier.QueryRow(ctx, totalSecondsSQL, memberID).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "study_time_log", memberID)
	}

	return total, nil
}

func scanEntry(row pgx.Row) (*domain.StudyTimeLogEntry, error) {
	var entry domain.StudyTimeLogEntry
	err := row.Scan(
		&entry.ID,
		&entry.MemberID,
		&entry.CourseID,
		&entry.LessonID,
		&entry.CourseLessonID,
		&entry.EnrollmentID,
		&entry.ElapsedSeconds,
		&entry.LogoutPause,
		&entry.LoginResume,
		&entry.PositionToken,
		&entry.Answer,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
