package users

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Service contains account and directory business logic.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// SignupInput carries the fields required to register an account.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// Signup registers a new account and returns its id.
func (s *Service) Signup(ctx context.Context, input SignupInput) (int64, error) {
	if s == nil || s.Repo == nil {
		return 0, errors.New("users service not configured")
	}
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" || input.Phone == "" {
		return 0, ErrInvalidInput
	}

	if _, err := s.Repo.GetByEmail(ctx, input.Email); err == nil {
		return 0, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	return s.Repo.Create(ctx, User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hash),
		Phone:     input.Phone,
		Status:    StatusActive,
	})
}

// Login checks credentials and returns the matching user.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// ListPage returns one page of the user directory with total-page count.
// The count query runs independently of the page query, so under concurrent
// writes the two may disagree; that is accepted.
func (s *Service) ListPage(ctx context.Context, query PageQuery) (Page, error) {
	if s == nil || s.Repo == nil {
		return Page{}, errors.New("users service not configured")
	}
	if query.Page < 1 || query.Limit < 1 {
		return Page{}, ErrInvalidInput
	}

	offset := (query.Page - 1) * query.Limit
	list, err := s.Repo.List(ctx, strings.TrimSpace(query.Search), query.Limit, offset)
	if err != nil {
		return Page{}, err
	}
	total, err := s.Repo.Count(ctx, strings.TrimSpace(query.Search))
	if err != nil {
		return Page{}, err
	}

	return Page{
		Users:       list,
		TotalPages:  (total + query.Limit - 1) / query.Limit,
		CurrentPage: query.Page,
	}, nil
}

// Update applies a partial update to a user. An empty field set is rejected.
func (s *Service) Update(ctx context.Context, userID int64, fields UpdateFields) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if userID <= 0 {
		return ErrInvalidInput
	}
	if fields.Empty() {
		return ErrInvalidInput
	}
	return s.Repo.Update(ctx, userID, fields)
}

// Delete removes a user. Owned resumes cascade at the store level.
func (s *Service) Delete(ctx context.Context, userID int64) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if userID <= 0 {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID)
}

// MonthlyCounts exposes per-month signup totals for the admin dashboard.
func (s *Service) MonthlyCounts(ctx context.Context) ([]MonthlyCount, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("users service not configured")
	}
	return s.Repo.MonthlyCounts(ctx)
}

// Total returns the unfiltered user count.
func (s *Service) Total(ctx context.Context) (int, error) {
	if s == nil || s.Repo == nil {
		return 0, errors.New("users service not configured")
	}
	return s.Repo.Count(ctx, "")
}
