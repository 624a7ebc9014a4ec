package risk

import (
	"github.com/hashicorp/go-set/v2"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/pure_utils"
)

const (
	RiskFactorHighRiskJurisdiction = "High-risk jurisdiction"
	RiskFactorPep                  = "Politically Exposed Person (PEP)"

	highRiskJurisdictionScore = 35
	pepScore                  = 40
	maxRiskScore              = 100

	highRiskThreshold   = 70
	mediumRiskThreshold = 40
)

// ISO 3166-1 alpha-2 codes of the jurisdictions our compliance policy treats
// as high risk.
var highRiskJurisdictions = set.From([]string{
	"AF", "IR", "KP", "SY", "MM", "BY", "RU", "CN",
})

// ScoreCustomer computes the risk assessment for a customer. It is a pure
// function: the same customer data always produces the same assessment.
func ScoreCustomer(customerData models.CustomerData) models.RiskAssessment {
	score := 0
	factors := make([]string, 0, 2)

	if IsHighRiskJurisdiction(customerData.Nationality) {
		score += highRiskJurisdictionScore
		factors = append(factors, RiskFactorHighRiskJurisdiction)
	}
	if customerData.IsPep {
		score += pepScore
		factors = append(factors, RiskFactorPep)
	}

	score = min(score, maxRiskScore)

	level := riskLevelFromScore(score)
	recommendation := models.RecommendationManualReview
	if level == models.RiskLevelLow {
		recommendation = models.RecommendationApprove
	}

	return models.RiskAssessment{
		RiskScore:      score,
		RiskLevel:      level,
		RiskFactors:    factors,
		Recommendation: recommendation,
	}
}

// IsHighRiskJurisdiction normalizes the nationality to an alpha-2 country
// code before looking it up, so that "Russia", "Russian Federation" and "RU"
// are all recognized.
func IsHighRiskJurisdiction(nationality string) bool {
	if nationality == "" {
		return false
	}
	return highRiskJurisdictions.Contains(pure_utils.CountryToAlpha2(nationality))
}

func riskLevelFromScore(score int) models.RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return models.RiskLevelHigh
	case score >= mediumRiskThreshold:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}
