// Package lesson implements read-only lookups against the lesson catalog:
// a lesson row and the course-lesson row that resolves its owning course.
package lesson

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/lessonpath/lessonpath-backend/internal/adapter/postgres"
	"github.com/lessonpath/lessonpath-backend/internal/domain"
)

// Repo provides lesson catalog lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lesson repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getRefSQL = `
SELECT id, course_lesson_id, title, created_at
FROM lessons
WHERE id = $1`

const getCourseRefSQL = `
SELECT id, course_id, position_no
FROM course_lessons
WHERE id = $1`

// GetRef returns the lesson row for a lesson id.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetRef(ctx context.Context, lessonID uuid.UUID) (*domain.LessonRef, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getRefSQL, lessonID)

	ref, err := scanLessonRef(row)
	if err != nil {
		return nil, postgres.MapError(err, "lesson", lessonID)
	}

	return ref, nil
}

// GetCourseRef returns the course-lesson row for a course-lesson id.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetCourseRef(ctx context.Context, courseLessonID uuid.UUID) (*domain.CourseLessonRef, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getCourseRefSQL, courseLessonID)

	var ref domain.CourseLessonRef
	if err := row.Scan(&ref.ID, &ref.CourseID, &ref.PositionNo); err != nil {
		return nil, postgres.MapError(err, "course_lesson", courseLessonID)
	}

	return &ref, nil
}

func scanLessonRef(row pgx.Row) (*domain.LessonRef, error) {
	var ref domain.LessonRef
	err := row.Scan(
		&ref.ID,
		&ref.CourseLessonID,
		&ref.Title,
		&ref.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
