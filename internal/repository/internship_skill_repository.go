package repository

import (
	"context"

	"intern-match/internal/database"

	"github.com/google/uuid"
)

type InternshipSkill struct {
	ID            uuid.UUID
	InternshipID  uuid.UUID
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel int
}

type InternshipSkillRepository interface {
	FindByInternshipID(ctx context.Context, internshipID uuid.UUID) ([]InternshipSkill, error)
	// FindByInternshipIDs loads requirements for a whole candidate
	// pool in one query.
	FindByInternshipIDs(ctx context.Context, internshipIDs []uuid.UUID) (map[uuid.UUID][]InternshipSkill, error)
}

type PostgresInternshipSkillRepository struct {
	db database.DB
}

func NewPostgresInternshipSkillRepository(db database.DB) *PostgresInternshipSkillRepository {
	return &PostgresInternshipSkillRepository{db: db}
}

func (r *PostgresInternshipSkillRepository) FindByInternshipID(ctx context.Context, internshipID uuid.UUID) ([]InternshipSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT isk.id, isk.internship_id, isk.skill_id, s.name, COALESCE(isk.required_level, 0)
		 FROM internship_skills isk
		 JOIN skills s ON s.id = isk.skill_id
		 WHERE isk.internship_id = $1
		 ORDER BY s.name ASC`,
		internshipID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]InternshipSkill, 0)
	for rows.Next() {
		var is InternshipSkill
		if err := rows.Scan(&is.ID, &is.InternshipID, &is.SkillID, &is.SkillName, &is.RequiredLevel); err != nil {
			return nil, err
		}
		out = append(out, is)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresInternshipSkillRepository) FindByInternshipIDs(ctx context.Context, internshipIDs []uuid.UUID) (map[uuid.UUID][]InternshipSkill, error) {
	out := make(map[uuid.UUID][]InternshipSkill, len(internshipIDs))
	if len(internshipIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT isk.id, isk.internship_id, isk.skill_id, s.name, COALESCE(isk.required_level, 0)
		 FROM internship_skills isk
		 JOIN skills s ON s.id = isk.skill_id
		 WHERE isk.internship_id = ANY($1)
		 ORDER BY isk.internship_id ASC, s.name ASC`,
		internshipIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var is InternshipSkill
		if err := rows.Scan(&is.ID, &is.InternshipID, &is.SkillID, &is.SkillName, &is.RequiredLevel); err != nil {
			return nil, err
		}
		out[is.InternshipID] = append(out[is.InternshipID], is)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
