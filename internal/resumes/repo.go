package resumes

import "context"

// Repo is the persistence boundary for resume records.
type Repo interface {
	Create(ctx context.Context, resume Resume) (int64, error)
	GetByID(ctx context.Context, resumeID int64) (Resume, error)
	Update(ctx context.Context, resumeID int64, fields UpdateFields) error
	Delete(ctx context.Context, resumeID int64) error
	ListWithOwners(ctx context.Context) ([]Summary, error)
	Count(ctx context.Context) (int, error)
	MonthlyCounts(ctx context.Context) ([]MonthlyCount, error)
}
