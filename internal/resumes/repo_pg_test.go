package resumes

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPGRepoCreateReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("INSERT INTO resumes").
		WithArgs(int64(3), 1, "BSc", "Go", "Backend work", "Side project", "Generated text").
		WillReturnRows(sqlmock.NewRows([]string{"resume_id"}).AddRow(int64(11)))

	id, err := repo.Create(context.Background(), Resume{
		UserID:     3,
		TemplateID: 1,
		Education:  "BSc",
		Skills:     "Go",
		Experience: "Backend work",
		Projects:   "Side project",
		AIContent:  "Generated text",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoUpdateBuildsOnlyProvidedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	skills := "Go, SQL"
	templateID := 2
	mock.ExpectExec("UPDATE resumes SET template_id = \\$1, skills = \\$2, updated_at = now\\(\\) WHERE resume_id = \\$3").
		WithArgs(templateID, skills, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(context.Background(), 5, UpdateFields{TemplateID: &templateID, Skills: &skills})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoUpdateEmptyFieldsRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	err = repo.Update(context.Background(), 5, UpdateFields{})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoListWithOwnersJoins(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"resume_id", "user_id", "first_name", "last_name", "template_id", "created_at", "updated_at"}).
		AddRow(int64(1), int64(2), "Ada", "Lovelace", 1, now, now)
	mock.ExpectQuery("JOIN users u ON u.user_id = r.user_id").
		WillReturnRows(rows)

	list, err := repo.ListWithOwners(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Ada", list[0].FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoDeleteMissingResume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM resumes").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
