package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lessonpath/lessonpath-backend/internal/domain"
)

// logStudyTime appends a study-time audit entry for a position report.
// It re-reads the progress row itself: the audit path runs outside the
// progress update transaction, so a failed insert cannot roll the update
// back and the two reads may observe different states. The elapsed time
// is the absolute difference between the reported and the stored
// position; a zero difference writes nothing.
func (s *Service) logStudyTime(ctx context.Context, input UpdateInput) error {
	stored, err := s.progress.GetByMemberAndLesson(ctx, input.MemberID, input.LessonID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get progress: %w", err)
	}

	newSeconds, err := domain.ExtendedSeconds(input.CurrentTime)
	if err != nil {
		return fmt.Errorf("parse reported position: %w", err)
	}

	oldSeconds, err := domain.ExtendedSeconds(stored.Position)
	if err != nil {
		return fmt.Errorf("parse stored position: %w", err)
	}

	elapsed := newSeconds - oldSeconds
	if elapsed < 0 {
		elapsed = -elapsed
	}
	if elapsed == 0 {
		return nil
	}

	lesson, err := s.lessons.GetRef(ctx, input.LessonID)
	if err != nil {
		return fmt.Errorf("get lesson: %w", err)
	}

	courseLesson, err := s.lessons.GetCourseRef(ctx, lesson.CourseLessonID)
	if err != nil {
		return fmt.Errorf("get course lesson: %w", err)
	}

	_, err = s.logs.Create(ctx, &domain.StudyTimeLogEntry{
		ID:             uuid.New(),
		MemberID:       input.MemberID,
		CourseID:       courseLesson.CourseID,
		LessonID:       input.LessonID,
		CourseLessonID: lesson.CourseLessonID,
		EnrollmentID:   stored.EnrollmentID,
		ElapsedSeconds: elapsed,
		LogoutPause:    input.LogoutPause,
		LoginResume:    input.LoginResume,
		PositionToken:  domain.PositionToken(input.CurrentTime),
		Answer:         input.Answer,
	})
	if err != nil {
		return fmt.Errorf("create study time log: %w", err)
	}

	return nil
}
