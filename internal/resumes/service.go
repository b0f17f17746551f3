package resumes

import (
	"context"
	"errors"
)

// Service contains resume business logic.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Save stores a new resume and returns its id.
func (s *Service) Save(ctx context.Context, resume Resume) (int64, error) {
	if s == nil || s.Repo == nil {
		return 0, errors.New("resumes service not configured")
	}
	if resume.UserID <= 0 {
		return 0, ErrInvalidInput
	}
	if resume.TemplateID <= 0 {
		resume.TemplateID = DefaultTemplateID
	}
	return s.Repo.Create(ctx, resume)
}

// Get loads a resume by id.
func (s *Service) Get(ctx context.Context, resumeID int64) (Resume, error) {
	if s == nil || s.Repo == nil {
		return Resume{}, errors.New("resumes service not configured")
	}
	if resumeID <= 0 {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, resumeID)
}

// Update applies a partial update. An empty field set is rejected.
func (s *Service) Update(ctx context.Context, resumeID int64, fields UpdateFields) error {
	if s == nil || s.Repo == nil {
		return errors.New("resumes service not configured")
	}
	if resumeID <= 0 {
		return ErrInvalidInput
	}
	if fields.Empty() {
		return ErrInvalidInput
	}
	return s.Repo.Update(ctx, resumeID, fields)
}

// Delete removes a resume.
func (s *Service) Delete(ctx context.Context, resumeID int64) error {
	if s == nil || s.Repo == nil {
		return errors.New("resumes service not configured")
	}
	if resumeID <= 0 {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, resumeID)
}

// ListWithOwners returns every resume joined with its owner's name.
// Full scan; acceptable for expected admin-tool data volumes.
func (s *Service) ListWithOwners(ctx context.Context) ([]Summary, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("resumes service not configured")
	}
	return s.Repo.ListWithOwners(ctx)
}

// Total returns the resume count.
func (s *Service) Total(ctx context.Context) (int, error) {
	if s == nil || s.Repo == nil {
		return 0, errors.New("resumes service not configured")
	}
	return s.Repo.Count(ctx)
}

// MonthlyCounts exposes per-month resume totals for the admin dashboard.
func (s *Service) MonthlyCounts(ctx context.Context) ([]MonthlyCount, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("resumes service not configured")
	}
	return s.Repo.MonthlyCounts(ctx)
}
