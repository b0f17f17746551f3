package resumes

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

func (r *PGRepo) Create(ctx context.Context, resume Resume) (int64, error) {
	const query = `
INSERT INTO resumes (user_id, template_id, education, skills, experience, projects, ai_content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING resume_id`
	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		resume.UserID,
		resume.TemplateID,
		resume.Education,
		resume.Skills,
		resume.Experience,
		resume.Projects,
		resume.AIContent,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PGRepo) GetByID(ctx context.Context, resumeID int64) (Resume, error) {
	const query = `
SELECT resume_id, user_id, template_id, education, skills, experience, projects, ai_content, created_at, updated_at
FROM resumes
WHERE resume_id = $1
LIMIT 1`
	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, resumeID).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.TemplateID,
		&resume.Education,
		&resume.Skills,
		&resume.Experience,
		&resume.Projects,
		&resume.AIContent,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// Update applies only the provided fields. At least one field is required.
func (r *PGRepo) Update(ctx context.Context, resumeID int64, fields UpdateFields) error {
	var assignments []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if fields.TemplateID != nil {
		add("template_id", *fields.TemplateID)
	}
	if fields.Education != nil {
		add("education", *fields.Education)
	}
	if fields.Skills != nil {
		add("skills", *fields.Skills)
	}
	if fields.Experience != nil {
		add("experience", *fields.Experience)
	}
	if fields.Projects != nil {
		add("projects", *fields.Projects)
	}
	if fields.AIContent != nil {
		add("ai_content", *fields.AIContent)
	}
	if len(assignments) == 0 {
		return ErrInvalidInput
	}
	assignments = append(assignments, "updated_at = now()")

	args = append(args, resumeID)
	query := fmt.Sprintf("UPDATE resumes SET %s WHERE resume_id = $%d",
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

func (r *PGRepo) Delete(ctx context.Context, resumeID int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE resume_id = $1`, resumeID)
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

// ListWithOwners returns every resume joined with its owner's name. The inner
// join drops any row whose owner no longer exists.
func (r *PGRepo) ListWithOwners(ctx context.Context) ([]Summary, error) {
	const query = `
SELECT r.resume_id, r.user_id, u.first_name, u.last_name, r.template_id, r.created_at, r.updated_at
FROM resumes r
JOIN users u ON u.user_id = r.user_id
ORDER BY r.resume_id ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(
			&s.ResumeID,
			&s.UserID,
			&s.FirstName,
			&s.LastName,
			&s.TemplateID,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM resumes`).Scan(&total)
	return total, err
}

// MonthlyCounts groups resumes by calendar month regardless of year.
func (r *PGRepo) MonthlyCounts(ctx context.Context) ([]MonthlyCount, error) {
	const query = `
SELECT EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*)
FROM resumes
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

var _ Repo = (*PGRepo)(nil)
