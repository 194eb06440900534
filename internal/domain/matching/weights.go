package matching

// Weights is one aggregation table. Entries should sum to at most 1 so
// the overall score stays interpretable as a [0,1] fraction.
type Weights struct {
	Skills       float64
	Education    float64
	Experience   float64
	Location     float64
	Compensation float64
	CulturalFit  float64
}

func (w Weights) isZero() bool {
	return w == Weights{}
}

// StudentToInternshipWeights is the default table for ranking
// internships for a student.
func StudentToInternshipWeights() Weights {
	return Weights{
		Skills:       0.60,
		CulturalFit:  0.15,
		Location:     0.15,
		Compensation: 0.10,
	}
}

// InternshipToStudentWeights is the default table for ranking students
// for an internship.
func InternshipToStudentWeights() Weights {
	return Weights{
		Skills:     0.60,
		Education:  0.20,
		Experience: 0.20,
	}
}

const (
	// DefaultNoRequirementsScore is the skill dimension for a listing
	// with zero stated skill requirements: full match, so candidates
	// are not penalized for listings that never named a skill.
	DefaultNoRequirementsScore = 1.0

	// DefaultCulturalFitScore is a placeholder constant. There is no
	// computed cultural-fit signal in the source data yet.
	DefaultCulturalFitScore = 0.7
)

// Config makes the weight tables and policy constants injectable so
// alternative tables can be exercised without touching the engine.
type Config struct {
	StudentWeights    Weights
	InternshipWeights Weights

	// NoRequirementsScore is the skill dimension when a listing has no
	// valid skill requirements. Sanctioned values are 1.0 (default)
	// and 0.5 (neutral).
	NoRequirementsScore float64

	// CulturalFitScore is the fixed stand-in for the cultural-fit
	// dimension.
	CulturalFitScore float64
}

func DefaultConfig() Config {
	return Config{
		StudentWeights:      StudentToInternshipWeights(),
		InternshipWeights:   InternshipToStudentWeights(),
		NoRequirementsScore: DefaultNoRequirementsScore,
		CulturalFitScore:    DefaultCulturalFitScore,
	}
}

func (c Config) withDefaults() Config {
	if c.StudentWeights.isZero() {
		c.StudentWeights = StudentToInternshipWeights()
	}
	if c.InternshipWeights.isZero() {
		c.InternshipWeights = InternshipToStudentWeights()
	}
	if c.NoRequirementsScore <= 0 {
		c.NoRequirementsScore = DefaultNoRequirementsScore
	}
	if c.CulturalFitScore <= 0 {
		c.CulturalFitScore = DefaultCulturalFitScore
	}
	c.NoRequirementsScore = clamp01(c.NoRequirementsScore)
	c.CulturalFitScore = clamp01(c.CulturalFitScore)
	return c
}
