package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/repositories"
)

type CaseRepository struct {
	mock.Mock
}

func (r *CaseRepository) GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseRepository) GetCaseByIdForUpdate(ctx context.Context, tx repositories.Transaction, caseId string) (models.Case, error) {
	args := r.Called(ctx, tx, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseRepository) CreateCase(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseAttributes, newCaseId string, createdAt time.Time,
) error {
	args := r.Called(ctx, exec, attributes, newCaseId, createdAt)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCaseStatus(ctx context.Context, exec repositories.Executor,
	caseId string, status models.CaseStatus,
) error {
	args := r.Called(ctx, exec, caseId, status)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCaseAnalysis(ctx context.Context, exec repositories.Executor,
	attributes models.UpdateCaseAnalysisAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCaseRiskAssessment(ctx context.Context, exec repositories.Executor,
	caseId string, riskAssessment models.RiskAssessment,
) error {
	args := r.Called(ctx, exec, caseId, riskAssessment)
	return args.Error(0)
}

func (r *CaseRepository) ListCases(ctx context.Context, exec repositories.Executor,
	filters models.CaseFilters,
) ([]models.Case, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) CreateCaseEvent(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseEventAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *CaseRepository) BatchCreateCaseEvents(ctx context.Context, exec repositories.Executor,
	attributes []models.CreateCaseEventAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *CaseRepository) ListCaseEvents(ctx context.Context, exec repositories.Executor, caseId string) ([]models.CaseEvent, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.CaseEvent), args.Error(1)
}
