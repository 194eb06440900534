package dto

import "github.com/google/uuid"

type SkillMatchResponse struct {
	SkillID        uuid.UUID `json:"skill_id"`
	SkillName      string    `json:"skill_name"`
	CandidateLevel int       `json:"candidate_level"`
	RequiredLevel  int       `json:"required_level"`
	Score          float64   `json:"score"`
}

type DimensionScoresResponse struct {
	Skills       float64 `json:"skills"`
	Education    float64 `json:"education"`
	Experience   float64 `json:"experience"`
	Location     float64 `json:"location"`
	Compensation float64 `json:"compensation"`
	CulturalFit  float64 `json:"cultural_fit"`
}

type MatchItemResponse struct {
	CandidateID      uuid.UUID               `json:"candidate_id"`
	CandidateName    string                  `json:"candidate_name"`
	CandidateCompany string                  `json:"candidate_company,omitempty"`
	Score            float64                 `json:"score"`
	Dimensions       DimensionScoresResponse `json:"dimensions"`
	Skills           []SkillMatchResponse    `json:"skills"`
}

type MatchListResponse struct {
	Items []MatchItemResponse `json:"items"`
	Count int                 `json:"count"`
}
