package users

import "time"

// User is a registered account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID        int64     `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusActive is the status assigned to new signups.
const StatusActive = "active"

// UpdateFields accumulates optional profile fields for a partial update.
// Nil pointers mean "not provided".
type UpdateFields struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Status    *string
}

// Empty reports whether no field is present.
func (f UpdateFields) Empty() bool {
	return f.FirstName == nil && f.LastName == nil && f.Email == nil && f.Phone == nil && f.Status == nil
}

// PageQuery carries paging and optional search parameters for the directory.
type PageQuery struct {
	Search string
	Page   int
	Limit  int
}

// Page is one page of the user directory plus pagination metadata.
type Page struct {
	Users       []User
	TotalPages  int
	CurrentPage int
}

// MonthlyCount is a per-calendar-month signup count. Month is 1-12,
// aggregated across years.
type MonthlyCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}
