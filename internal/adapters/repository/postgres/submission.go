package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"formlab/internal/core/domain/registration"
	"formlab/internal/platform/database/postgres"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type Connector interface {
	Connection() *postgres.DB
}

type Repository struct {
	db Connector
}

func NewRepository(db Connector) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*registration.Submission, error) {
	query := `SELECT id, name, email, age, website, password_hash, created_at FROM submissions WHERE id = $1`

	var submission registration.Submission
	err := r.db.Connection().QueryRowContext(ctx, query, id).Scan(
		&submission.ID,
		&submission.Name,
		&submission.Email,
		&submission.Age,
		&submission.Website,
		&submission.PasswordHash,
		&submission.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, registration.ErrSubmissionNotFound
		}
		return nil, err
	}

	return &submission, nil
}

func (r *Repository) List(ctx context.Context) ([]*registration.Submission, error) {
	query := `SELECT id, name, email, age, website, password_hash, created_at FROM submissions ORDER BY created_at, id`

	rows, err := r.db.Connection().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := make([]*registration.Submission, 0)
	for rows.Next() {
		var submission registration.Submission
		if err := rows.Scan(
			&submission.ID,
			&submission.Name,
			&submission.Email,
			&submission.Age,
			&submission.Website,
			&submission.PasswordHash,
			&submission.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		submissions = append(submissions, &submission)
	}

	return submissions, rows.Err()
}

func (r *Repository) Save(ctx context.Context, submission *registration.Submission) error {
	query := `INSERT INTO submissions (id, name, email, age, website, password_hash, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Connection().ExecContext(ctx, query,
		submission.ID,
		submission.Name,
		submission.Email,
		submission.Age,
		submission.Website,
		submission.PasswordHash,
		submission.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return &registration.AlreadyExistsError{ID: submission.ID}
		}
		return err
	}

	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.Connection().QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&count)
	return count, err
}

func (r *Repository) CreateTable(ctx context.Context) error {
	return Migrate(ctx, r.db.Connection())
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS submissions (
		id VARCHAR(255) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		age INTEGER NOT NULL,
		website TEXT NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS submissions_created_at_idx ON submissions (created_at, id)`,
}

// Migrate creates the submissions table and its listing index in one transaction.
func Migrate(ctx context.Context, db *postgres.DB) error {
	return db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("apply submissions schema: %w", err)
			}
		}
		return nil
	})
}
