package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/veriflow/kyc-backend/models"
)

func TestAdaptCase(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	kycCase, err := AdaptCase(DBCase{
		Id:                 "KYC-20260314-a1b2c3d4",
		Status:             "completed",
		Priority:           "high",
		CustomerData:       []byte(`{"full_name": "Jane Smith", "nationality": "FR", "is_pep": false}`),
		Files:              []string{"/uploads/passport.pdf"},
		AnalysisResults:    []byte(`{"raw_output": "ok", "agent_notes": "Extraction completed"}`),
		RiskAssessment:     []byte(`{"risk_score": 0, "risk_level": "LOW", "recommendation": "Approved for onboarding"}`),
		DocumentsProcessed: 1,
		CreatedAt:          createdAt,
	})

	assert.NoError(t, err)
	assert.Equal(t, "KYC-20260314-a1b2c3d4", kycCase.Id)
	assert.Equal(t, models.CaseCompleted, kycCase.Status)
	assert.Equal(t, models.CasePriorityHigh, kycCase.Priority)
	assert.Equal(t, "Jane Smith", kycCase.CustomerData.FullName)
	assert.Equal(t, "ok", kycCase.AnalysisResults.RawOutput)
	assert.Equal(t, models.RiskLevelLow, kycCase.RiskAssessment.RiskLevel)
	assert.Equal(t, 1, kycCase.DocumentsProcessed)
	assert.Equal(t, createdAt, kycCase.CreatedAt)
}

func TestAdaptCase_emptyJsonbColumns(t *testing.T) {
	kycCase, err := AdaptCase(DBCase{
		Id:           "KYC-20260314-a1b2c3d4",
		Status:       "uploading",
		Priority:     "standard",
		CustomerData: []byte(`{"full_name": "Jane Smith"}`),
	})

	assert.NoError(t, err)
	assert.True(t, kycCase.AnalysisResults.IsEmpty())
	assert.True(t, kycCase.RiskAssessment.IsEmpty())
}

func TestAdaptCase_invalidCustomerData(t *testing.T) {
	_, err := AdaptCase(DBCase{
		Id:           "KYC-20260314-a1b2c3d4",
		Status:       "uploading",
		CustomerData: []byte(`not json`),
	})

	assert.Error(t, err)
}
