package progress

import (
	"time"

	"github.com/google/uuid"

	"github.com/lessonpath/lessonpath-backend/internal/domain"
)

// UpdateInput holds the parameters for reporting a playback position.
type UpdateInput struct {
	MemberID    uuid.UUID
	LessonID    uuid.UUID
	CurrentTime string
	LogoutPause bool
	LoginResume bool
	Answer      *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.MemberID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "member_id", Message: "required"})
	}
	if i.LessonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lesson_id", Message: "required"})
	}
	if i.CurrentTime == "" {
		errs = append(errs, domain.FieldError{Field: "current_time", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListStudyLogsInput holds the parameters for listing study-time log entries.
type ListStudyLogsInput struct {
	MemberID uuid.UUID
	LessonID *uuid.UUID
	From     *time.Time
	To       *time.Time
}

// Validate checks all fields and collects all errors.
func (i *ListStudyLogsInput) Validate() error {
	var errs []domain.FieldError

	if i.MemberID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "member_id", Message: "required"})
	}
	if i.From != nil && i.To != nil && !i.From.Before(*i.To) {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be before to"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
