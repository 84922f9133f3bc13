package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxTitleLen = 200

var ErrInvalidInput = errors.New("invalid input")

// Service contains business logic for resumes. It trusts the ownerID it is
// given; identity verification happens upstream in the auth middleware.
type Service struct {
	repo Repo
	now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns the owner's resumes, most recently updated first. An owner
// with no resumes gets an empty slice, not an error.
func (s *Service) List(ctx context.Context, ownerID string) ([]Resume, error) {
	return s.repo.ListByUser(ctx, ownerID)
}

// Get fetches one resume. A resume owned by someone else is reported as
// not found, identically to one that does not exist.
func (s *Service) Get(ctx context.Context, ownerID, resumeID string) (Resume, error) {
	if uuid.Validate(resumeID) != nil {
		return Resume{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, ownerID, resumeID)
}

// Create persists a new resume for the owner.
func (s *Service) Create(ctx context.Context, ownerID, title string, data json.RawMessage) (Resume, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(data) == 0 {
		return Resume{}, ErrInvalidInput
	}
	if len(title) > maxTitleLen {
		return Resume{}, ErrInvalidInput
	}

	now := s.now().UTC()
	resume := Resume{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Title:     title,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Update applies a partial update. Omitted fields keep their value; the
// updated timestamp refreshes regardless of which fields changed.
func (s *Service) Update(ctx context.Context, ownerID, resumeID, title string, data json.RawMessage) (Resume, error) {
	if uuid.Validate(resumeID) != nil {
		return Resume{}, ErrNotFound
	}

	var titleArg *string
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		if len(trimmed) > maxTitleLen {
			return Resume{}, ErrInvalidInput
		}
		titleArg = &trimmed
	}

	return s.repo.Update(ctx, ownerID, resumeID, titleArg, data)
}

// Delete removes a resume under the same dual not-found condition as Get.
func (s *Service) Delete(ctx context.Context, ownerID, resumeID string) error {
	if uuid.Validate(resumeID) != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, ownerID, resumeID)
}
