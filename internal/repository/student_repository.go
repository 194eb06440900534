package repository

import (
	"context"
	"errors"

	"intern-match/internal/database"
	"intern-match/internal/domain/student"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (student.Student, error)
	// ListActive returns every student belonging to an active account,
	// in stable (created_at, id) order so repeated match runs see the
	// candidate pool in the same sequence.
	ListActive(ctx context.Context) ([]student.Student, error)
}

type PostgresStudentRepository struct {
	db database.DB
}

func NewPostgresStudentRepository(db database.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: db}
}

const studentColumns = `st.id, st.account_id, COALESCE(st.full_name, ''), COALESCE(st.education, ''),
		COALESCE(st.years_experience, 0), COALESCE(st.location_preference, ''),
		COALESCE(st.remote_ok, false), COALESCE(st.min_compensation, 0), st.created_at, st.updated_at`

func (r *PostgresStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (student.Student, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+studentColumns+`
		 FROM students st
		 WHERE st.id = $1`,
		id,
	)

	var st student.Student
	if err := scanStudent(row, &st); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Student{}, ErrStudentNotFound
		}
		return student.Student{}, err
	}
	return st, nil
}

func (r *PostgresStudentRepository) ListActive(ctx context.Context) ([]student.Student, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+studentColumns+`
		 FROM students st
		 JOIN accounts a ON a.id = st.account_id
		 WHERE a.status = 'active'
		 ORDER BY st.created_at ASC, st.id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]student.Student, 0)
	for rows.Next() {
		var st student.Student
		if err := scanStudent(rows, &st); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanStudent(row database.Row, st *student.Student) error {
	return row.Scan(
		&st.ID, &st.AccountID, &st.FullName, &st.Education,
		&st.YearsExperience, &st.LocationPreference,
		&st.RemoteOK, &st.MinCompensation, &st.CreatedAt, &st.UpdatedAt,
	)
}
