package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, user User) (int64, error) {
	const query = `
INSERT INTO users (first_name, last_name, email, password, phone, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING user_id`
	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Password,
		user.Phone,
		user.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PGRepo) GetByID(ctx context.Context, userID int64) (User, error) {
	const query = `
SELECT user_id, first_name, last_name, email, password, phone, status, created_at
FROM users
WHERE user_id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT user_id, first_name, last_name, email, password, phone, status, created_at
FROM users
WHERE email = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

// List returns one page of the directory ordered by user_id so paging stays
// stable under concurrent writes. The search term matches first name, last
// name, or email case-insensitively and is always passed as a bound parameter.
func (r *PGRepo) List(ctx context.Context, search string, limit, offset int) ([]User, error) {
	const baseSelect = `
SELECT user_id, first_name, last_name, email, phone, status, created_at
FROM users`

	var rows *sql.Rows
	var err error
	if search != "" {
		query := baseSelect + `
WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
ORDER BY user_id ASC
LIMIT $2 OFFSET $3`
		rows, err = r.DB.QueryContext(ctx, query, containsPattern(search), limit, offset)
	} else {
		query := baseSelect + `
ORDER BY user_id ASC
LIMIT $1 OFFSET $2`
		rows, err = r.DB.QueryContext(ctx, query, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var user User
		if err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.Phone,
			&user.Status,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, user)
	}
	return out, rows.Err()
}

// Count runs an independent count over the same filter predicate as List.
func (r *PGRepo) Count(ctx context.Context, search string) (int, error) {
	var total int
	var err error
	if search != "" {
		const query = `
SELECT COUNT(*) FROM users
WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1`
		err = r.DB.QueryRowContext(ctx, query, containsPattern(search)).Scan(&total)
	} else {
		err = r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total)
	}
	return total, err
}

// Update applies only the provided fields. At least one field is required.
func (r *PGRepo) Update(ctx context.Context, userID int64, fields UpdateFields) error {
	var assignments []string
	var args []any
	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("first_name", fields.FirstName)
	add("last_name", fields.LastName)
	add("email", fields.Email)
	add("phone", fields.Phone)
	add("status", fields.Status)
	if len(assignments) == 0 {
		return ErrInvalidInput
	}

	args = append(args, userID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE user_id = $%d",
		strings.Join(assignments, ", "), len(args))

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, userID int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MonthlyCounts groups signups by calendar month regardless of year.
func (r *PGRepo) MonthlyCounts(ctx context.Context) ([]MonthlyCount, error) {
	const query = `
SELECT EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*)
FROM users
GROUP BY month
ORDER BY month`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MonthlyCount
	for rows.Next() {
		var mc MonthlyCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, err
		}
		out = append(out, mc)
	}
	return out, rows.Err()
}

func (r *PGRepo) scanOne(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password,
		&user.Phone,
		&user.Status,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func containsPattern(term string) string {
	return "%" + term + "%"
}

var _ Repo = (*PGRepo)(nil)
