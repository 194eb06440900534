package repository

import (
	"context"

	"intern-match/internal/database"

	"github.com/google/uuid"
)

type StudentSkill struct {
	ID               uuid.UUID
	StudentID        uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel int
}

type StudentSkillRepository interface {
	FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]StudentSkill, error)
	// FindByStudentIDs loads proficiencies for a whole candidate pool
	// in one query.
	FindByStudentIDs(ctx context.Context, studentIDs []uuid.UUID) (map[uuid.UUID][]StudentSkill, error)
}

type PostgresStudentSkillRepository struct {
	db database.DB
}

func NewPostgresStudentSkillRepository(db database.DB) *PostgresStudentSkillRepository {
	return &PostgresStudentSkillRepository{db: db}
}

func (r *PostgresStudentSkillRepository) FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]StudentSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ss.id, ss.student_id, ss.skill_id, s.name, COALESCE(ss.proficiency_level, 0)
		 FROM student_skills ss
		 JOIN skills s ON s.id = ss.skill_id
		 WHERE ss.student_id = $1
		 ORDER BY s.name ASC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StudentSkill, 0)
	for rows.Next() {
		var ss StudentSkill
		if err := rows.Scan(&ss.ID, &ss.StudentID, &ss.SkillID, &ss.SkillName, &ss.ProficiencyLevel); err != nil {
			return nil, err
		}
		out = append(out, ss)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStudentSkillRepository) FindByStudentIDs(ctx context.Context, studentIDs []uuid.UUID) (map[uuid.UUID][]StudentSkill, error) {
	out := make(map[uuid.UUID][]StudentSkill, len(studentIDs))
	if len(studentIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT ss.id, ss.student_id, ss.skill_id, s.name, COALESCE(ss.proficiency_level, 0)
		 FROM student_skills ss
		 JOIN skills s ON s.id = ss.skill_id
		 WHERE ss.student_id = ANY($1)
		 ORDER BY ss.student_id ASC, s.name ASC`,
		studentIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ss StudentSkill
		if err := rows.Scan(&ss.ID, &ss.StudentID, &ss.SkillID, &ss.SkillName, &ss.ProficiencyLevel); err != nil {
			return nil, err
		}
		out[ss.StudentID] = append(out[ss.StudentID], ss)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
