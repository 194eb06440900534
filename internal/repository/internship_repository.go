package repository

import (
	"context"
	"errors"

	"intern-match/internal/database"
	"intern-match/internal/domain/internship"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrInternshipNotFound = errors.New("internship not found")

type InternshipRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (internship.Internship, error)
	// ListActive returns every active listing in stable (created_at,
	// id) order.
	ListActive(ctx context.Context) ([]internship.Internship, error)
}

type PostgresInternshipRepository struct {
	db database.DB
}

func NewPostgresInternshipRepository(db database.DB) *PostgresInternshipRepository {
	return &PostgresInternshipRepository{db: db}
}

const internshipColumns = `i.id, COALESCE(i.title, ''), COALESCE(i.company, ''), COALESCE(i.location, ''),
		COALESCE(i.remote, false), COALESCE(i.compensation, 0), COALESCE(i.required_education, ''),
		COALESCE(i.required_years, 0), COALESCE(i.status, ''), i.created_at, i.updated_at`

func (r *PostgresInternshipRepository) FindByID(ctx context.Context, id uuid.UUID) (internship.Internship, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+internshipColumns+`
		 FROM internships i
		 WHERE i.id = $1`,
		id,
	)

	var in internship.Internship
	if err := scanInternship(row, &in); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internship.Internship{}, ErrInternshipNotFound
		}
		return internship.Internship{}, err
	}
	return in, nil
}

func (r *PostgresInternshipRepository) ListActive(ctx context.Context) ([]internship.Internship, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+internshipColumns+`
		 FROM internships i
		 WHERE i.status = 'active'
		 ORDER BY i.created_at ASC, i.id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]internship.Internship, 0)
	for rows.Next() {
		var in internship.Internship
		if err := scanInternship(rows, &in); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanInternship(row database.Row, in *internship.Internship) error {
	return row.Scan(
		&in.ID, &in.Title, &in.Company, &in.Location,
		&in.Remote, &in.Compensation, &in.RequiredEducation,
		&in.RequiredYears, &in.Status, &in.CreatedAt, &in.UpdatedAt,
	)
}
