package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lessonpath/lessonpath-backend/internal/domain"
)

const (
	msgUpdated     = "Update Successfully"
	msgNotAdvanced = "No update needed"
)

// errNoLongerAdvances aborts the update transaction when the locked row has
// already been moved past the reported position by a concurrent request.
var errNoLongerAdvances = errors.New("position no longer advances")

// UpdateProgress records a reported playback position. The study-time log
// entry is written best-effort before the comparison: a failure there is
// logged and never blocks the progress update. The position itself only
// moves forward; reports at or behind the stored position succeed without
// a write. The returned snapshot is the row as it was before the update.
func (s *Service) UpdateProgress(ctx context.Context, input UpdateInput) (*UpdateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.progress.GetByMemberAndLesson(ctx, input.MemberID, input.LessonID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	if logErr := s.logStudyTime(ctx, input); logErr != nil {
		s.log.WarnContext(ctx, "study time log skipped",
			slog.String("member_id", input.MemberID.String()),
			slog.String("lesson_id", input.LessonID.String()),
			slog.String("error", logErr.Error()),
		)
	}

	if !domain.ShouldAdvance(input.CurrentTime, stored.Position) {
		return &UpdateResult{
			Updated:  false,
			Message:  msgNotAdvanced,
			Progress: stored,
		}, nil
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, lockErr := s.progress.GetForUpdate(txCtx, input.MemberID, input.LessonID)
		if lockErr != nil {
			return fmt.Errorf("lock progress: %w", lockErr)
		}

		if !domain.ShouldAdvance(input.CurrentTime, locked.Position) {
			return errNoLongerAdvances
		}

		if updErr := s.progress.UpdatePosition(txCtx, input.MemberID, input.LessonID, input.CurrentTime); updErr != nil {
			return fmt.Errorf("update position: %w", updErr)
		}

		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, errNoLongerAdvances):
		return &UpdateResult{
			Updated:  false,
			Message:  msgNotAdvanced,
			Progress: stored,
		}, nil
	default:
		return nil, err
	}

	s.log.InfoContext(ctx, "lesson progress advanced",
		slog.String("member_id", input.MemberID.String()),
		slog.String("lesson_id", input.LessonID.String()),
		slog.String("old_position", stored.Position),
		slog.String("new_position", input.CurrentTime),
	)

	return &UpdateResult{
		Updated:  true,
		Message:  msgUpdated,
		Progress: stored,
	}, nil
}
