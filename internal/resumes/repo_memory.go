package resumes

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo used in dev and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[string]Resume
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{resumes: make(map[string]Resume)}
}

func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumes[resume.ID] = cloneResume(resume)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, ownerID, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[resumeID]
	if !ok || resume.UserID != ownerID {
		return Resume{}, ErrNotFound
	}
	return cloneResume(resume), nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, ownerID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Resume{}
	for _, resume := range r.resumes {
		if resume.UserID == ownerID {
			out = append(out, cloneResume(resume))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, ownerID, resumeID string, title *string, data json.RawMessage) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.resumes[resumeID]
	if !ok || resume.UserID != ownerID {
		return Resume{}, ErrNotFound
	}
	if title != nil {
		resume.Title = *title
	}
	if len(data) > 0 {
		resume.Data = append(json.RawMessage(nil), data...)
	}
	resume.UpdatedAt = time.Now().UTC()
	r.resumes[resumeID] = resume
	return cloneResume(resume), nil
}

func (r *MemoryRepo) Delete(ctx context.Context, ownerID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.resumes[resumeID]
	if !ok || resume.UserID != ownerID {
		return ErrNotFound
	}
	delete(r.resumes, resumeID)
	return nil
}

func cloneResume(resume Resume) Resume {
	resume.Data = append(json.RawMessage(nil), resume.Data...)
	return resume
}

var _ Repo = (*MemoryRepo)(nil)
