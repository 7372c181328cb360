package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lessonpath/lessonpath-backend/internal/domain"
)

// GetProgress returns the member's progress record for a lesson.
func (s *Service) GetProgress(ctx context.Context, memberID, lessonID uuid.UUID) (*domain.ProgressRecord, error) {
	var errs []domain.FieldError
	if memberID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "member_id", Message: "required"})
	}
	if lessonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lesson_id", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	record, err := s.progress.GetByMemberAndLesson(ctx, memberID, lessonID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	return record, nil
}
