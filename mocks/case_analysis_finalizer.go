package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/veriflow/kyc-backend/models"
)

type CaseAnalysisFinalizer struct {
	mock.Mock
}

func (m *CaseAnalysisFinalizer) GetCase(ctx context.Context, caseId string) (models.Case, error) {
	args := m.Called(ctx, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (m *CaseAnalysisFinalizer) CompleteAnalysis(ctx context.Context, caseId string,
	analysisResults models.AnalysisResults, extracted map[string]any, documentsProcessed int,
) error {
	args := m.Called(ctx, caseId, analysisResults, extracted, documentsProcessed)
	return args.Error(0)
}

func (m *CaseAnalysisFinalizer) FailAnalysis(ctx context.Context, caseId string, errorText string) error {
	args := m.Called(ctx, caseId, errorText)
	return args.Error(0)
}
