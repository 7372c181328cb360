package progress

import "github.com/lessonpath/lessonpath-backend/internal/domain"

// UpdateResult describes the outcome of a position report.
type UpdateResult struct {
	Updated  bool
	Message  string
	Progress *domain.ProgressRecord
}
