package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"resume-builder/internal/resumes"
	"resume-builder/internal/users"
)

var (
	// ErrNotConfigured indicates no admin credentials were set.
	ErrNotConfigured = errors.New("admin credentials not configured")

	// ErrInvalidCredentials indicates a failed admin login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Stats is the total-count aggregation for the admin dashboard.
type Stats struct {
	TotalUsers   int `json:"total_users"`
	TotalResumes int `json:"total_resumes"`
}

// MonthlyStats holds per-calendar-month counts for users and resumes.
type MonthlyStats struct {
	Users   []users.MonthlyCount   `json:"users"`
	Resumes []resumes.MonthlyCount `json:"resumes"`
}

// Service composes the directory and aggregation queries behind the admin API.
type Service struct {
	Users    *users.Service
	Resumes  *resumes.Service
	Email    string
	Password string
}

// NewService constructs a Service with env-configured admin credentials.
func NewService(usersSvc *users.Service, resumesSvc *resumes.Service, email, password string) *Service {
	return &Service{
		Users:    usersSvc,
		Resumes:  resumesSvc,
		Email:    strings.TrimSpace(email),
		Password: password,
	}
}

// Login checks the configured admin credentials.
func (s *Service) Login(email, password string) error {
	if s == nil || s.Email == "" || s.Password == "" {
		return ErrNotConfigured
	}
	emailOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(email)), []byte(s.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.Password)) == 1
	if !emailOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

// Stats returns total user and resume counts. The two counts come from
// independent queries and are not transactionally linked.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	totalUsers, err := s.Users.Total(ctx)
	if err != nil {
		return Stats{}, err
	}
	totalResumes, err := s.Resumes.Total(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalUsers: totalUsers, TotalResumes: totalResumes}, nil
}

// MonthlyStats returns per-month counts. Months aggregate across years.
func (s *Service) MonthlyStats(ctx context.Context) (MonthlyStats, error) {
	userCounts, err := s.Users.MonthlyCounts(ctx)
	if err != nil {
		return MonthlyStats{}, err
	}
	resumeCounts, err := s.Resumes.MonthlyCounts(ctx)
	if err != nil {
		return MonthlyStats{}, err
	}
	return MonthlyStats{Users: userCounts, Resumes: resumeCounts}, nil
}
