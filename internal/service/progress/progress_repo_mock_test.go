package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lessonpath/lessonpath-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	GetByMemberAndLessonFunc func(ctx context.Context, memberID, lessonID uuid.UUID) (*domain.ProgressRecord, error)
	GetForUpdateFunc         func(ctx context.Context, memberID, lessonID uuid.UUID) (*domain.ProgressRecord, error)
	UpdatePositionFunc       func(ctx context.Context, memberID, lessonID uuid.UUID, position string) error

	calls struct {
		GetByMemberAndLesson []struct {
			Ctx      context.Context
			MemberID uuid.UUID
			LessonID uuid.UUID
		}
		GetForUpdate []struct {
			Ctx      context.Context
			MemberID uuid.UUID
			LessonID uuid.UUID
		}
		UpdatePosition []struct {
			Ctx      context.Context
			MemberID uuid.UUID
			LessonID uuid.UUID
			Position string
		}
	}
	lockGetByMemberAndLesson sync.RWMutex
	lockGetForUpdate         sync.RWMutex
	lockUpdatePosition       sync.RWMutex
}

func (mock *progressRepoMock) GetByMemberAndLesson(ctx context.Context, memberID, lessonID uuid.UUID) (*domain.ProgressRecord, error) {
	if mock.GetByMemberAndLessonFunc == nil {
		panic("progressRepoMock.GetByMemberAndLessonFunc: method is nil but progressRepo.GetByMemberAndLesson was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MemberID uuid.UUID
		LessonID uuid.UUID
	}{Ctx: ctx, MemberID: memberID, LessonID: lessonID}
	mock.lockGetByMemberAndLesson.Lock()
	mock.calls.GetByMemberAndLesson = append(mock.calls.GetByMemberAndLesson, callInfo)
	mock.lockGetByMemberAndLesson.Unlock()
	return mock.GetByMemberAndLessonFunc(ctx, memberID, lessonID)
}

func (mock *progressRepoMock) GetByMemberAndLessonCalls() []struct {
	Ctx      context.Context
	MemberID uuid.UUID
	LessonID uuid.UUID
} {
	mock.lockGetByMemberAndLesson.RLock()
	calls := mock.calls.GetByMemberAndLesson
	mock.lockGetByMemberAndLesson.RUnlock()
	return calls
}

func (mock *progressRepoMock) GetForUpdate(ctx context.Context, memberID, lessonID uuid.UUID) (*domain.ProgressRecord, error) {
	if mock.GetForUpdateFunc == nil {
		panic("progressRepoMock.GetForUpdateFunc: method is nil but progressRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MemberID uuid.UUID
		LessonID uuid.UUID
	}{Ctx: ctx, MemberID: memberID, LessonID: lessonID}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, memberID, lessonID)
}

func (mock *progressRepoMock) GetForUpdateCalls() []struct {
	Ctx      context.Context
	MemberID uuid.UUID
	LessonID uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *progressRepoMock) UpdatePosition(ctx context.Context, memberID, lessonID uuid.UUID, position string) error {
	if mock.UpdatePositionFunc == nil {
		panic("progressRepoMock.UpdatePositionFunc: method is nil but progressRepo.UpdatePosition was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MemberID uuid.UUID
		LessonID uuid.UUID
		Position string
	}{Ctx: ctx, MemberID: memberID, LessonID: lessonID, Position: position}
	mock.lockUpdatePosition.Lock()
	mock.calls.UpdatePosition = append(mock.calls.UpdatePosition, callInfo)
	mock.lockUpdatePosition.Unlock()
	return mock.UpdatePositionFunc(ctx, memberID, lessonID, position)
}

func (mock *progressRepoMock) UpdatePositionCalls() []struct {
	Ctx      context.Context
	MemberID uuid.UUID
	LessonID uuid.UUID
	Position string
} {
	mock.lockUpdatePosition.RLock()
	calls := mock.calls.UpdatePosition
	mock.lockUpdatePosition.RUnlock()
	return calls
}
