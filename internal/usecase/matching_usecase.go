package usecase

import (
	"context"
	"errors"
	"time"

	"intern-match/internal/domain/internship"
	"intern-match/internal/domain/matching"
	"intern-match/internal/domain/student"
	"intern-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrInternshipNotFound = errors.New("internship not found")
	ErrInvalidLimit       = errors.New("invalid limit")
	ErrInternal           = errors.New("internal error")
)

// DefaultMatchLimit applies when the caller does not supply a limit.
const DefaultMatchLimit = 10

// MatchItem is one ranked candidate with the full breakdown the UI
// needs for progress bars and skill badges.
type MatchItem struct {
	CandidateID      uuid.UUID                `json:"candidate_id"`
	CandidateName    string                   `json:"candidate_name"`
	CandidateCompany string                   `json:"candidate_company,omitempty"`
	Score            float64                  `json:"score"`
	Dimensions       matching.DimensionScores `json:"dimensions"`
	Skills           []matching.SkillMatch    `json:"skills"`
}

type MatchingUsecase interface {
	MatchInternshipsForStudent(ctx context.Context, studentID uuid.UUID, limit int) ([]MatchItem, error)
	MatchStudentsForInternship(ctx context.Context, internshipID uuid.UUID, limit int) ([]MatchItem, error)
}

type Matching struct {
	students         repository.StudentRepository
	internships      repository.InternshipRepository
	studentSkills    repository.StudentSkillRepository
	internshipSkills repository.InternshipSkillRepository

	engine   *matching.Engine
	cache    MatchCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewMatchingUsecase(
	students repository.StudentRepository,
	internships repository.InternshipRepository,
	studentSkills repository.StudentSkillRepository,
	internshipSkills repository.InternshipSkillRepository,
	engine *matching.Engine,
	cache MatchCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Matching {
	if engine == nil {
		engine = matching.NewEngine(matching.DefaultConfig())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matching{
		students:         students,
		internships:      internships,
		studentSkills:    studentSkills,
		internshipSkills: internshipSkills,
		engine:           engine,
		cache:            cache,
		cacheTTL:         cacheTTL,
		logger:           logger,
	}
}

// MatchInternshipsForStudent scores every active listing against one
// student and returns the top limit, best first.
func (u *Matching) MatchInternshipsForStudent(ctx context.Context, studentID uuid.UUID, limit int) ([]MatchItem, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if studentID == uuid.Nil {
		return nil, ErrStudentNotFound
	}

	key := matchCacheKey("student", studentID, limit)
	if cached, ok := u.cachedItems(ctx, key); ok {
		return cached, nil
	}

	st, err := u.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, ErrStudentNotFound
		}
		u.logger.Error("load student", zap.String("student_id", studentID.String()), zap.Error(err))
		return nil, ErrInternal
	}

	skills, err := u.studentSkills.FindByStudentID(ctx, studentID)
	if err != nil {
		u.logger.Error("load student skills", zap.String("student_id", studentID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	cand := candidateProfile(st, skills)

	pool, err := u.internships.ListActive(ctx)
	if err != nil {
		u.logger.Error("load active internships", zap.Error(err))
		return nil, ErrInternal
	}
	if len(pool) == 0 {
		return []MatchItem{}, nil
	}

	ids := make([]uuid.UUID, 0, len(pool))
	for _, in := range pool {
		ids = append(ids, in.ID)
	}
	reqsByID, err := u.internshipSkills.FindByInternshipIDs(ctx, ids)
	if err != nil {
		u.logger.Error("load internship requirements", zap.Error(err))
		return nil, ErrInternal
	}

	ranked := make([]matching.RankedMatch, 0, len(pool))
	companyByID := make(map[uuid.UUID]string, len(pool))
	for _, in := range pool {
		lp := u.listingProfile(in, reqsByID[in.ID])
		ranked = append(ranked, matching.RankedMatch{
			CandidateID:   in.ID,
			CandidateName: in.Title,
			Result:        u.engine.Score(matching.StudentToInternship, cand, lp),
		})
		companyByID[in.ID] = in.Company
	}

	items := toMatchItems(matching.Rank(ranked, limit), companyByID)
	u.storeItems(ctx, key, items)
	return items, nil
}

// MatchStudentsForInternship scores every student under an active
// account against one listing and returns the top limit, best first.
// An empty candidate pool yields an empty list, not an error.
func (u *Matching) MatchStudentsForInternship(ctx context.Context, internshipID uuid.UUID, limit int) ([]MatchItem, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if internshipID == uuid.Nil {
		return nil, ErrInternshipNotFound
	}

	key := matchCacheKey("internship", internshipID, limit)
	if cached, ok := u.cachedItems(ctx, key); ok {
		return cached, nil
	}

	in, err := u.internships.FindByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, repository.ErrInternshipNotFound) {
			return nil, ErrInternshipNotFound
		}
		u.logger.Error("load internship", zap.String("internship_id", internshipID.String()), zap.Error(err))
		return nil, ErrInternal
	}

	reqs, err := u.internshipSkills.FindByInternshipID(ctx, internshipID)
	if err != nil {
		u.logger.Error("load internship requirements", zap.String("internship_id", internshipID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	lp := u.listingProfile(in, reqs)

	pool, err := u.students.ListActive(ctx)
	if err != nil {
		u.logger.Error("load active students", zap.Error(err))
		return nil, ErrInternal
	}
	if len(pool) == 0 {
		return []MatchItem{}, nil
	}

	ids := make([]uuid.UUID, 0, len(pool))
	for _, st := range pool {
		ids = append(ids, st.ID)
	}
	skillsByID, err := u.studentSkills.FindByStudentIDs(ctx, ids)
	if err != nil {
		u.logger.Error("load student skills", zap.Error(err))
		return nil, ErrInternal
	}

	ranked := make([]matching.RankedMatch, 0, len(pool))
	for _, st := range pool {
		cand := candidateProfile(st, skillsByID[st.ID])
		ranked = append(ranked, matching.RankedMatch{
			CandidateID:   st.ID,
			CandidateName: st.FullName,
			Result:        u.engine.Score(matching.InternshipToStudent, cand, lp),
		})
	}

	items := toMatchItems(matching.Rank(ranked, limit), nil)
	u.storeItems(ctx, key, items)
	return items, nil
}

func (u *Matching) cachedItems(ctx context.Context, key string) ([]MatchItem, bool) {
	if u.cache == nil {
		return nil, false
	}
	var items []MatchItem
	hit, err := u.cache.GetJSON(ctx, key, &items)
	if err != nil || !hit {
		return nil, false
	}
	return items, true
}

func (u *Matching) storeItems(ctx context.Context, key string, items []MatchItem) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, items, u.cacheTTL); err != nil {
		u.logger.Debug("cache store failed", zap.String("key", key), zap.Error(err))
	}
}

func candidateProfile(st student.Student, skills []repository.StudentSkill) matching.CandidateProfile {
	sp := make([]matching.SkillProficiency, 0, len(skills))
	for _, s := range skills {
		sp = append(sp, matching.SkillProficiency{
			SkillID:   s.SkillID,
			SkillName: s.SkillName,
			Level:     s.ProficiencyLevel,
		})
	}
	return matching.CandidateProfile{
		Skills:             sp,
		Education:          st.Education,
		YearsExperience:    st.YearsExperience,
		LocationPreference: st.LocationPreference,
		RemoteOK:           st.RemoteOK,
		MinCompensation:    st.MinCompensation,
	}
}

func (u *Matching) listingProfile(in internship.Internship, reqs []repository.InternshipSkill) matching.ListingProfile {
	sr := make([]matching.SkillRequirement, 0, len(reqs))
	for _, r := range reqs {
		if r.RequiredLevel <= 0 {
			// Corrupt upstream rows are skipped, not fatal; the engine
			// would ignore them anyway, this just makes it visible.
			u.logger.Warn("skipping requirement with non-positive level",
				zap.String("internship_id", in.ID.String()),
				zap.String("skill", r.SkillName),
				zap.Int("required_level", r.RequiredLevel),
			)
			continue
		}
		sr = append(sr, matching.SkillRequirement{
			SkillID:       r.SkillID,
			SkillName:     r.SkillName,
			RequiredLevel: r.RequiredLevel,
		})
	}
	return matching.ListingProfile{
		Requirements:      sr,
		RequiredEducation: in.RequiredEducation,
		RequiredYears:     in.RequiredYears,
		Location:          in.Location,
		Remote:            in.Remote,
		Compensation:      in.Compensation,
	}
}

func toMatchItems(ranked []matching.RankedMatch, companyByID map[uuid.UUID]string) []MatchItem {
	out := make([]MatchItem, 0, len(ranked))
	for _, rm := range ranked {
		item := MatchItem{
			CandidateID:   rm.CandidateID,
			CandidateName: rm.CandidateName,
			Score:         rm.Result.Score,
			Dimensions:    rm.Result.Dimensions,
			Skills:        rm.Result.Skills,
		}
		if companyByID != nil {
			item.CandidateCompany = companyByID[rm.CandidateID]
		}
		out = append(out, item)
	}
	return out
}
