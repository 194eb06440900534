package internship

import (
	"time"

	"github.com/google/uuid"
)

const StatusActive = "active"

// Internship is a snapshot of one listing. Requirements live in
// internship_skills and are loaded separately.
type Internship struct {
	ID                uuid.UUID
	Title             string
	Company           string
	Location          string
	Remote            bool
	Compensation      float64
	RequiredEducation string
	RequiredYears     float64
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
