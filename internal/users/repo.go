package users

import "context"

// Repo is the persistence boundary for user records.
type Repo interface {
	Create(ctx context.Context, user User) (int64, error)
	GetByID(ctx context.Context, userID int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, search string, limit, offset int) ([]User, error)
	Count(ctx context.Context, search string) (int, error)
	Update(ctx context.Context, userID int64, fields UpdateFields) error
	Delete(ctx context.Context, userID int64) error
	MonthlyCounts(ctx context.Context) ([]MonthlyCount, error)
}
