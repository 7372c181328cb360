package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lessonpath/lessonpath-backend/internal/domain"
)

var _ lessonRepo = &lessonRepoMock{}

type lessonRepoMock struct {
	GetRefFunc       func(ctx context.Context, lessonID uuid.UUID) (*domain.LessonRef, error)
	GetCourseRefFunc func(ctx context.Context, courseLessonID uuid.UUID) (*domain.CourseLessonRef, error)

	calls struct {
		GetRef []struct {
			Ctx      context.Context
			LessonID uuid.UUID
		}
		GetCourseRef []struct {
			Ctx            context.Context
			CourseLessonID uuid.UUID
		}
	}
	lockGetRef       sync.RWMutex
	lockGetCourseRef sync.RWMutex
}

func (mock *lessonRepoMock) GetRef(ctx context.Context, lessonID uuid.UUID) (*domain.LessonRef, error) {
	if mock.GetRefFunc == nil {
		panic("lessonRepoMock.GetRefFunc: method is nil but lessonRepo.GetRef was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
	}{Ctx: ctx, LessonID: lessonID}
	mock.lockGetRef.Lock()
	mock.calls.GetRef = append(mock.calls.GetRef, callInfo)
	mock.lockGetRef.Unlock()
	return mock.GetRefFunc(ctx, lessonID)
}

func (mock *lessonRepoMock) GetRefCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
} {
	mock.lockGetRef.RLock()
	calls := mock.calls.GetRef
	mock.lockGetRef.RUnlock()
	return calls
}

func (mock *lessonRepoMock) GetCourseRef(ctx context.Context, courseLessonID uuid.UUID) (*domain.CourseLessonRef, error) {
	if mock.GetCourseRefFunc == nil {
		panic("lessonRepoMock.GetCourseRefFunc: method is nil but lessonRepo.GetCourseRef was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		CourseLessonID uuid.UUID
	}{Ctx: ctx, CourseLessonID: courseLessonID}
	mock.lockGetCourseRef.Lock()
	mock.calls.GetCourseRef = append(mock.calls.GetCourseRef, callInfo)
	mock.lockGetCourseRef.Unlock()
	return mock.GetCourseRefFunc(ctx, courseLessonID)
}

func (mock *lessonRepoMock) GetCourseRefCalls() []struct {
	Ctx            context.Context
	CourseLessonID uuid.UUID
} {
	mock.lockGetCourseRef.RLock()
	calls := mock.calls.GetCourseRef
	mock.lockGetCourseRef.RUnlock()
	return calls
}
