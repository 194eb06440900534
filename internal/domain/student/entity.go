package student

import (
	"time"

	"github.com/google/uuid"
)

// Student is a snapshot of one student profile as maintained by the
// surrounding CRUD system. The matching engine only reads it.
type Student struct {
	ID                 uuid.UUID
	AccountID          uuid.UUID
	FullName           string
	Education          string
	YearsExperience    float64
	LocationPreference string
	RemoteOK           bool
	MinCompensation    float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
