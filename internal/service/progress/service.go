// Package progress implements lesson playback progress tracking and
// study-time audit logging.
package progress

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lessonpath/lessonpath-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type progressRepo interface {
	GetByMemberAndLesson(ctx context.Context, memberID, lessonID uuid.UUID) (*domain.ProgressRecord, error)
	GetForUpdate(ctx context.Context, memberID, lessonID uuid.UUID) (*domain.ProgressRecord, error)
	UpdatePosition(ctx context.Context, memberID, lessonID uuid.UUID, position string) error
}

type lessonRepo interface {
	GetRef(ctx context.Context, lessonID uuid.UUID) (*domain.LessonRef, error)
	GetCourseRef(ctx context.Context, courseLessonID uuid.UUID) (*domain.CourseLessonRef, error)
}

type studyLogRepo interface {
	Create(ctx context.Context, entry *domain.StudyTimeLogEntry) (*domain.StudyTimeLogEntry, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, filter domain.StudyLogFilter) ([]domain.StudyTimeLogEntry, error)
	TotalSecondsByMember(ctx context.Context, memberID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the progress business logic.
type Service struct {
	progress progressRepo
	lessons  lessonRepo
	logs     studyLogRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Progress service.
func NewService(
	log *slog.Logger,
	progress progressRepo,
	lessons lessonRepo,
	logs studyLogRepo,
	tx txManager,
) *Service {
	return &Service{
		progress: progress,
		lessons:  lessons,
		logs:     logs,
		tx:       tx,
		log:      log.With("service", "progress"),
	}
}
