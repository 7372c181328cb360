package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lessonpath/lessonpath-backend/internal/domain"
	"github.com/lessonpath/lessonpath-backend/internal/service/progress"
)

// noAnswerSentinel is the literal the player client sends when the member
// gave no quiz answer. It never reaches the service layer.
const noAnswerSentinel = "none"

// progressService defines the minimal interface needed by ProgressHandler.
type progressService interface {
	UpdateProgress(ctx context.Context, input progress.UpdateInput) (*progress.UpdateResult, error)
	GetProgress(ctx context.Context, memberID, lessonID uuid.UUID) (*domain.ProgressRecord, error)
	ListStudyLogs(ctx context.Context, input progress.ListStudyLogsInput) ([]domain.StudyTimeLogEntry, error)
	TotalStudySeconds(ctx context.Context, memberID uuid.UUID) (int, error)
}

// ProgressHandler serves lesson progress REST endpoints.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

type updateProgressRequest struct {
	MemberID    string  `json:"memberId"`
	LessonID    string  `json:"lessonId"`
	CurrentTime string  `json:"currentTime"`
	Logout      int     `json:"logout"`
	Login       int     `json:"login"`
	Answer      *string `json:"answer"`
}

type progressResponse struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"memberId"`
	LessonID  string    `json:"lessonId"`
	Position  string    `json:"position"`
	Finished  bool      `json:"finished"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type updateProgressResponse struct {
	Updated  bool             `json:"updated"`
	Message  string           `json:"message"`
	Progress progressResponse `json:"progress"`
}

type studyLogResponse struct {
	ID             string    `json:"id"`
	LessonID       string    `json:"lessonId"`
	CourseID       string    `json:"courseId"`
	ElapsedSeconds int       `json:"elapsedSeconds"`
	LogoutPause    bool      `json:"logoutPause"`
	LoginResume    bool      `json:"loginResume"`
	PositionToken  string    `json:"positionToken"`
	Answer         *string   `json:"answer,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type listStudyLogsResponse struct {
	Entries []studyLogResponse `json:"entries"`
}

type totalStudyTimeResponse struct {
	MemberID     string `json:"memberId"`
	TotalSeconds int    `json:"totalSeconds"`
}

// Update handles POST /api/progress.
func (h *ProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid member id")
		return
	}
	lessonID, err := uuid.Parse(req.LessonID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	answer := req.Answer
	if answer != nil && *answer == noAnswerSentinel {
		answer = nil
	}

	result, err := h.svc.UpdateProgress(r.Context(), progress.UpdateInput{
		MemberID:    memberID,
		LessonID:    lessonID,
		CurrentTime: req.CurrentTime,
		LogoutPause: req.Logout == 1,
		LoginResume: req.Login == 1,
		Answer:      answer,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updateProgressResponse{
		Updated:  result.Updated,
		Message:  result.Message,
		Progress: toProgressResponse(result.Progress),
	})
}

// Get handles GET /api/progress/{memberId}/{lessonId}.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	memberID, err := uuid.Parse(r.PathValue("memberId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid member id")
		return
	}
	lessonID, err := uuid.Parse(r.PathValue("lessonId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	record, err := h.svc.GetProgress(r.Context(), memberID, lessonID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(record))
}

// ListStudyLogs handles GET /api/members/{memberId}/study-logs.
// Optional query parameters: lessonId, from, to (RFC 3339).
func (h *ProgressHandler) ListStudyLogs(w http.ResponseWriter, r *http.Request) {
	memberID, err := uuid.Parse(r.PathValue("memberId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	input := progress.ListStudyLogsInput{MemberID: memberID}

	q := r.URL.Query()
	if raw := q.Get("lessonId"); raw != "" {
		lessonID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid lesson id")
			return
		}
		input.LessonID = &lessonID
	}
	if raw := q.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from timestamp")
			return
		}
		input.From = &from
	}
	if raw := q.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to timestamp")
			return
		}
		input.To = &to
	}

	entries, err := h.svc.ListStudyLogs(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := listStudyLogsResponse{Entries: make([]studyLogResponse, 0, len(entries))}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, studyLogResponse{
			ID:             entry.ID.String(),
			LessonID:       entry.LessonID.String(),
			CourseID:       entry.CourseID.String(),
			ElapsedSeconds: entry.ElapsedSeconds,
			LogoutPause:    entry.LogoutPause,
			LoginResume:    entry.LoginResume,
			PositionToken:  entry.PositionToken,
			Answer:         entry.Answer,
			CreatedAt:      entry.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// TotalStudyTime handles GET /api/members/{memberId}/study-time.
func (h *ProgressHandler) TotalStudyTime(w http.ResponseWriter, r *http.Request) {
	memberID, err := uuid.Parse(r.PathValue("memberId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	total, err := h.svc.TotalStudySeconds(r.Context(), memberID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, totalStudyTimeResponse{
		MemberID:     memberID.String(),
		TotalSeconds: total,
	})
}

func (h *ProgressHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toProgressResponse(record *domain.ProgressRecord) progressResponse {
	return progressResponse{
		ID:        record.ID.String(),
		MemberID:  record.MemberID.String(),
		LessonID:  record.LessonID.String(),
		Position:  record.Position,
		Finished:  record.Finished,
		UpdatedAt: record.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
