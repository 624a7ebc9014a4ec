package models

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

const (
	RecommendationApprove      = "Approved for onboarding"
	RecommendationManualReview = "Manual review required"
)

// RiskAssessment is the deterministic output of the risk scorer. The same
// customer data always yields the same assessment, which is what makes the
// decision auditable after the fact.
type RiskAssessment struct {
	RiskScore      int       `json:"risk_score"`
	RiskLevel      RiskLevel `json:"risk_level"`
	RiskFactors    []string  `json:"risk_factors"`
	Recommendation string    `json:"recommendation"`
}

func (r RiskAssessment) IsEmpty() bool {
	return r.RiskScore == 0 && r.RiskLevel == "" && len(r.RiskFactors) == 0 && r.Recommendation == ""
}
