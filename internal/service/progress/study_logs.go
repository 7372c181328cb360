package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lessonpath/lessonpath-backend/internal/domain"
)

// ListStudyLogs returns the member's study-time log entries, newest first.
func (s *Service) ListStudyLogs(ctx context.Context, input ListStudyLogsInput) ([]domain.StudyTimeLogEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.logs.ListByMember(ctx, input.MemberID, domain.StudyLogFilter{
		LessonID: input.LessonID,
		From:     input.From,
		To:       input.To,
	})
	if err != nil {
		return nil, fmt.Errorf("list study logs: %w", err)
	}

	return entries, nil
}

// TotalStudySeconds returns the member's total logged study time in seconds.
func (s *Service) TotalStudySeconds(ctx context.Context, memberID uuid.UUID) (int, error) {
	if memberID == uuid.Nil {
		return 0, domain.NewValidationError("member_id", "required")
	}

	total, err := s.logs.TotalSecondsByMember(ctx, memberID)
	if err != nil {
		return 0, fmt.Errorf("total study seconds: %w", err)
	}

	return total, nil
}
