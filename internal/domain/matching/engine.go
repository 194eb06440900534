package matching

import (
	"github.com/google/uuid"
)

// Direction selects which side of the marketplace is the anchor.
type Direction int

const (
	// StudentToInternship ranks internships for a student.
	StudentToInternship Direction = iota
	// InternshipToStudent ranks students for an internship.
	InternshipToStudent
)

type SkillProficiency struct {
	SkillID   uuid.UUID
	SkillName string
	Level     int
}

type SkillRequirement struct {
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel int
}

// CandidateProfile is the student side of a match pair.
type CandidateProfile struct {
	Skills             []SkillProficiency
	Education          string
	YearsExperience    float64
	LocationPreference string
	RemoteOK           bool
	MinCompensation    float64
}

// ListingProfile is the internship side of a match pair.
type ListingProfile struct {
	Requirements      []SkillRequirement
	RequiredEducation string
	RequiredYears     float64
	Location          string
	Remote            bool
	Compensation      float64
}

// SkillMatch is the per-skill breakdown row carried into the response
// so the UI can render one badge per required skill.
type SkillMatch struct {
	SkillID        uuid.UUID
	SkillName      string
	CandidateLevel int
	RequiredLevel  int
	Score          float64
}

// DimensionScores holds every dimension; only the fields belonging to
// the requested direction feed the aggregate, the rest stay zero.
type DimensionScores struct {
	Skills       float64
	Education    float64
	Experience   float64
	Location     float64
	Compensation float64
	CulturalFit  float64
}

type Result struct {
	Score      float64
	Dimensions DimensionScores
	Skills     []SkillMatch
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg.withDefaults()}
}

// Score computes one match record for a candidate/listing pair. Pure:
// no I/O, no shared state, safe for concurrent use.
func (e *Engine) Score(dir Direction, cand CandidateProfile, listing ListingProfile) Result {
	levelBySkillID := make(map[uuid.UUID]int, len(cand.Skills))
	for _, sp := range cand.Skills {
		if sp.SkillID == uuid.Nil {
			continue
		}
		levelBySkillID[sp.SkillID] = sp.Level
	}

	breakdown := make([]SkillMatch, 0, len(listing.Requirements))
	counted := 0
	sum := 0.0
	for _, r := range listing.Requirements {
		// A required level <= 0 is corrupt upstream data; the row is
		// excluded from the requirement count instead of failing the
		// whole computation.
		if r.SkillID == uuid.Nil || r.RequiredLevel <= 0 {
			continue
		}
		lvl := levelBySkillID[r.SkillID]
		s := skillMatchScore(lvl, r.RequiredLevel)
		breakdown = append(breakdown, SkillMatch{
			SkillID:        r.SkillID,
			SkillName:      r.SkillName,
			CandidateLevel: lvl,
			RequiredLevel:  r.RequiredLevel,
			Score:          s,
		})
		counted++
		sum += s
	}

	var d DimensionScores
	if counted == 0 {
		d.Skills = e.cfg.NoRequirementsScore
	} else {
		d.Skills = clamp01(sum / float64(counted))
	}

	var w Weights
	switch dir {
	case InternshipToStudent:
		d.Education = educationScore(cand.Education, listing.RequiredEducation)
		d.Experience = experienceScore(cand.YearsExperience, listing.RequiredYears)
		w = e.cfg.InternshipWeights
	default:
		d.Location = locationScore(cand, listing)
		d.Compensation = compensationScore(cand.MinCompensation, listing.Compensation)
		d.CulturalFit = e.cfg.CulturalFitScore
		w = e.cfg.StudentWeights
	}

	total := w.Skills*d.Skills +
		w.Education*d.Education +
		w.Experience*d.Experience +
		w.Location*d.Location +
		w.Compensation*d.Compensation +
		w.CulturalFit*d.CulturalFit

	return Result{
		Score:      clamp01(total),
		Dimensions: d,
		Skills:     breakdown,
	}
}
