package resumes

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound covers both a missing resume and one owned by another user,
// so ownership is not observable through error responses.
var ErrNotFound = errors.New("resume not found")

// Repo defines persistence operations for resumes. Every lookup filters by
// (id AND owner) in a single statement.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, ownerID, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, ownerID string) ([]Resume, error)
	// Update applies only non-nil fields and always refreshes updated_at,
	// returning the full updated record.
	Update(ctx context.Context, ownerID, resumeID string, title *string, data json.RawMessage) (Resume, error)
	Delete(ctx context.Context, ownerID, resumeID string) error
}
