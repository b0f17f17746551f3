package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo used in dev and tests.
// LookupOwner resolves an owner's name for the joined listing; rows whose
// owner cannot be resolved are excluded, matching the inner join.
type MemoryRepo struct {
	mu          sync.RWMutex
	nextID      int64
	data        map[int64]Resume
	LookupOwner func(ctx context.Context, userID int64) (first, last string, ok bool)
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID: 1,
		data:   make(map[int64]Resume),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, resume Resume) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	if resume.CreatedAt.IsZero() {
		resume.CreatedAt = now
	}
	resume.UpdatedAt = now
	r.data[resume.ID] = resume
	return resume.ID, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, resumeID int64) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.data[resumeID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

func (r *MemoryRepo) Update(ctx context.Context, resumeID int64, fields UpdateFields) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if fields.Empty() {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.data[resumeID]
	if !ok {
		return ErrNotFound
	}
	if fields.TemplateID != nil {
		resume.TemplateID = *fields.TemplateID
	}
	if fields.Education != nil {
		resume.Education = *fields.Education
	}
	if fields.Skills != nil {
		resume.Skills = *fields.Skills
	}
	if fields.Experience != nil {
		resume.Experience = *fields.Experience
	}
	if fields.Projects != nil {
		resume.Projects = *fields.Projects
	}
	if fields.AIContent != nil {
		resume.AIContent = *fields.AIContent
	}
	resume.UpdatedAt = time.Now().UTC()
	r.data[resumeID] = resume
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, resumeID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[resumeID]; !ok {
		return ErrNotFound
	}
	delete(r.data, resumeID)
	return nil
}

func (r *MemoryRepo) ListWithOwners(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Summary
	for _, resume := range r.data {
		first, last := "", ""
		if r.LookupOwner != nil {
			var ok bool
			first, last, ok = r.LookupOwner(ctx, resume.UserID)
			if !ok {
				continue
			}
		}
		out = append(out, Summary{
			ResumeID:   resume.ID,
			UserID:     resume.UserID,
			FirstName:  first,
			LastName:   last,
			TemplateID: resume.TemplateID,
			CreatedAt:  resume.CreatedAt,
			UpdatedAt:  resume.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ResumeID < out[j].ResumeID })
	return out, nil
}

func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}

func (r *MemoryRepo) MonthlyCounts(ctx context.Context) ([]MonthlyCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	byMonth := make(map[int]int)
	for _, resume := range r.data {
		byMonth[int(resume.CreatedAt.Month())]++
	}
	var out []MonthlyCount
	for month, count := range byMonth {
		out = append(out, MonthlyCount{Month: month, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
