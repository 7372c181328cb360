package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lessonpath/lessonpath-backend/internal/domain"
)

var _ studyLogRepo = &studyLogRepoMock{}

type studyLogRepoMock struct {
	CreateFunc               func(ctx context.Context, entry *domain.StudyTimeLogEntry) (*domain.StudyTimeLogEntry, error)
	ListByMemberFunc         func(ctx context.Context, memberID uuid.UUID, filter domain.StudyLogFilter) ([]domain.StudyTimeLogEntry, error)
	TotalSecondsByMemberFunc func(ctx context.Context, memberID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *domain.StudyTimeLogEntry
		}
		ListByMember []struct {
			Ctx      context.Context
			MemberID uuid.UUID
			Filter   domain.StudyLogFilter
		}
		TotalSecondsByMember []struct {
			Ctx      context.Context
			MemberID uuid.UUID
		}
	}
	lockCreate               sync.RWMutex
	lockListByMember         sync.RWMutex
	lockTotalSecondsByMember sync.RWMutex
}

func (mock *studyLogRepoMock) Create(ctx context.Context, entry *domain.StudyTimeLogEntry) (*domain.StudyTimeLogEntry, error) {
	if mock.CreateFunc == nil {
		panic("studyLogRepoMock.CreateFunc: method is nil but studyLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.StudyTimeLogEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *studyLogRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.StudyTimeLogEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *studyLogRepoMock) ListByMember(ctx context.Context, memberID uuid.UUID, filter domain.StudyLogFilter) ([]domain.StudyTimeLogEntry, error) {
	if mock.ListByMemberFunc == nil {
		panic("studyLogRepoMock.ListByMemberFunc: method is nil but studyLogRepo.ListByMember was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MemberID uuid.UUID
		Filter   domain.StudyLogFilter
	}{Ctx: ctx, MemberID: memberID, Filter: filter}
	mock.lockListByMember.Lock()
	mock.calls.ListByMember = append(mock.calls.ListByMember, callInfo)
	mock.lockListByMember.Unlock()
	return mock.ListByMemberFunc(ctx, memberID, filter)
}

func (mock *studyLogRepoMock) ListByMemberCalls() []struct {
	Ctx      context.Context
	MemberID uuid.UUID
	Filter   domain.StudyLogFilter
} {
	mock.lockListByMember.RLock()
	calls := mock.calls.ListByMember
	mock.lockListByMember.RUnlock()
	return calls
}

func (mock *studyLogRepoMock) TotalSecondsByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	if mock.TotalSecondsByMemberFunc == nil {
		panic("studyLogRepoMock.TotalSecondsByMemberFunc: method is nil but studyLogRepo.TotalSecondsByMember was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MemberID uuid.UUID
	}{Ctx: ctx, MemberID: memberID}
	mock.lockTotalSecondsByMember.Lock()
	mock.calls.TotalSecondsByMember = append(mock.calls.TotalSecondsByMember, callInfo)
	mock.lockTotalSecondsByMember.Unlock()
	return mock.TotalSecondsByMemberFunc(ctx, memberID)
}

func (mock *studyLogRepoMock) TotalSecondsByMemberCalls() []struct {
	Ctx      context.Context
	MemberID uuid.UUID
} {
	mock.lockTotalSecondsByMember.RLock()
	calls := mock.calls.TotalSecondsByMember
	mock.lockTotalSecondsByMember.RUnlock()
	return calls
}
