package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProgressRecord is a member's last-seen playback position within a lesson.
// Position is a raw time string as submitted by the player ("5:30" or
// "1:05:30"); only the progress update flow mutates it, and only while
// Finished is false. The finished flag is set by the external lesson
// completion flow and closes the row to further position writes.
type ProgressRecord struct {
	ID           uuid.UUID
	MemberID     uuid.UUID
	LessonID     uuid.UUID
	EnrollmentID uuid.UUID
	Position     string
	Finished     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LessonRef identifies a lesson and the course-lesson row that links it to
// its owning course.
type LessonRef struct {
	ID             uuid.UUID
	CourseLessonID uuid.UUID
	Title          string
	CreatedAt      time.Time
}

// CourseLessonRef maps a course-lesson identifier to its owning course.
type CourseLessonRef struct {
	ID         uuid.UUID
	CourseID   uuid.UUID
	PositionNo int
}

// StudyTimeLogEntry is one append-only audit row recording the elapsed time
// between two observed playback positions. Entries are created once per
// qualifying update with a nonzero delta and are never mutated or deleted.
type StudyTimeLogEntry struct {
	ID             uuid.UUID
	MemberID       uuid.UUID
	CourseID       uuid.UUID
	LessonID       uuid.UUID
	CourseLessonID uuid.UUID
	EnrollmentID   uuid.UUID
	ElapsedSeconds int
	LogoutPause    bool
	LoginResume    bool
	PositionToken  string
	Answer         *string
	CreatedAt      time.Time
}

// StudyLogFilter narrows a study-time log listing. Nil fields mean "any".
type StudyLogFilter struct {
	LessonID *uuid.UUID
	From     *time.Time
	To       *time.Time
}
