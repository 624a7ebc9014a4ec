package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veriflow/kyc-backend/models"
)

func TestScoreCustomer_pepInHighRiskJurisdiction(t *testing.T) {
	assessment := ScoreCustomer(models.CustomerData{
		FullName:    "Ivan Petrov",
		Nationality: "RU",
		IsPep:       true,
	})

	assert.Equal(t, 75, assessment.RiskScore)
	assert.Equal(t, models.RiskLevelHigh, assessment.RiskLevel)
	assert.Equal(t, []string{RiskFactorHighRiskJurisdiction, RiskFactorPep}, assessment.RiskFactors)
	assert.Equal(t, models.RecommendationManualReview, assessment.Recommendation)
}

func TestScoreCustomer_noRiskFactors(t *testing.T) {
	assessment := ScoreCustomer(models.CustomerData{
		FullName:    "Jane Smith",
		Nationality: "FR",
	})

	assert.Equal(t, 0, assessment.RiskScore)
	assert.Equal(t, models.RiskLevelLow, assessment.RiskLevel)
	assert.Empty(t, assessment.RiskFactors)
	assert.Equal(t, models.RecommendationApprove, assessment.Recommendation)
}

func TestScoreCustomer_highRiskJurisdictionOnly(t *testing.T) {
	assessment := ScoreCustomer(models.CustomerData{
		FullName:    "Ivan Petrov",
		Nationality: "RU",
	})

	assert.Equal(t, 35, assessment.RiskScore)
	assert.Equal(t, models.RiskLevelLow, assessment.RiskLevel)
	assert.Equal(t, models.RecommendationApprove, assessment.Recommendation)
}

func TestScoreCustomer_pepOnly(t *testing.T) {
	assessment := ScoreCustomer(models.CustomerData{
		FullName: "Jane Smith",
		IsPep:    true,
	})

	assert.Equal(t, 40, assessment.RiskScore)
	assert.Equal(t, models.RiskLevelMedium, assessment.RiskLevel)
	assert.Equal(t, []string{RiskFactorPep}, assessment.RiskFactors)
	assert.Equal(t, models.RecommendationManualReview, assessment.Recommendation)
}

func TestScoreCustomer_deterministic(t *testing.T) {
	customerData := models.CustomerData{
		FullName:    "Ivan Petrov",
		Nationality: "Russia",
		IsPep:       true,
	}
	assert.Equal(t, ScoreCustomer(customerData), ScoreCustomer(customerData))
}

func TestScoreCustomer_scoreStaysInRange(t *testing.T) {
	for _, nationality := range []string{"", "RU", "FR", "KP", "nowhere"} {
		for _, isPep := range []bool{false, true} {
			assessment := ScoreCustomer(models.CustomerData{
				FullName:    "x",
				Nationality: nationality,
				IsPep:       isPep,
			})
			assert.GreaterOrEqual(t, assessment.RiskScore, 0)
			assert.LessOrEqual(t, assessment.RiskScore, 100)
		}
	}
}

func TestIsHighRiskJurisdiction(t *testing.T) {
	assert.True(t, IsHighRiskJurisdiction("RU"))
	assert.True(t, IsHighRiskJurisdiction("Russia"))
	assert.True(t, IsHighRiskJurisdiction("IRN"))
	assert.True(t, IsHighRiskJurisdiction("China"))
	assert.False(t, IsHighRiskJurisdiction("FR"))
	assert.False(t, IsHighRiskJurisdiction(""))
}

func TestRiskLevelFromScore_thresholds(t *testing.T) {
	assert.Equal(t, models.RiskLevelLow, riskLevelFromScore(0))
	assert.Equal(t, models.RiskLevelLow, riskLevelFromScore(39))
	assert.Equal(t, models.RiskLevelMedium, riskLevelFromScore(40))
	assert.Equal(t, models.RiskLevelMedium, riskLevelFromScore(69))
	assert.Equal(t, models.RiskLevelHigh, riskLevelFromScore(70))
	assert.Equal(t, models.RiskLevelHigh, riskLevelFromScore(100))
}
