package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/repositories/dbmodels"
)

func selectCases() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectCaseColumn...).
		From(dbmodels.TABLE_KYC_CASES)
}

func (repo *KycDbRepository) GetCaseById(ctx context.Context, exec Executor, caseId string) (models.Case, error) {
	kycCase, err := SqlToModel(
		ctx,
		exec,
		selectCases().Where(squirrel.Eq{"id": caseId}),
		dbmodels.AdaptCase,
	)
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			return models.Case{}, errors.WithDetailf(
				errors.Wrap(models.ErrCaseNotFound, err.Error()), "case %s", caseId)
		}
		return models.Case{}, err
	}
	return kycCase, nil
}

// GetCaseByIdForUpdate locks the case row for the duration of the enclosing
// transaction, serializing concurrent status transitions on the same case.
func (repo *KycDbRepository) GetCaseByIdForUpdate(ctx context.Context, tx Transaction, caseId string) (models.Case, error) {
	kycCase, err := SqlToModel(
		ctx,
		tx,
		selectCases().Where(squirrel.Eq{"id": caseId}).Suffix("FOR UPDATE"),
		dbmodels.AdaptCase,
	)
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			return models.Case{}, errors.WithDetailf(
				errors.Wrap(models.ErrCaseNotFound, err.Error()), "case %s", caseId)
		}
		return models.Case{}, err
	}
	return kycCase, nil
}

func (repo *KycDbRepository) CreateCase(
	ctx context.Context,
	exec Executor,
	attributes models.CreateCaseAttributes,
	newCaseId string,
	createdAt time.Time,
) error {
	customerData, err := json.Marshal(attributes.CustomerData)
	if err != nil {
		return errors.Wrap(err, "can't encode customer data")
	}
	analysisResults, err := json.Marshal(attributes.AnalysisResults)
	if err != nil {
		return errors.Wrap(err, "can't encode analysis results")
	}
	riskAssessment, err := json.Marshal(attributes.RiskAssessment)
	if err != nil {
		return errors.Wrap(err, "can't encode risk assessment")
	}

	// a nil slice would be encoded as SQL NULL and violate the NOT NULL constraint
	files := attributes.Files
	if files == nil {
		files = []string{}
	}

	err = ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_KYC_CASES).
			Columns(
				"id",
				"status",
				"priority",
				"customer_data",
				"files",
				"analysis_results",
				"risk_assessment",
				"documents_processed",
				"created_at",
			).
			Values(
				newCaseId,
				attributes.Status,
				attributes.Priority,
				customerData,
				files,
				analysisResults,
				riskAssessment,
				attributes.DocumentsProcessed,
				createdAt,
			),
	)
	if IsUniqueViolationError(err) {
		return errors.Wrap(models.ErrCaseIdAlreadyExists, newCaseId)
	}
	return err
}

func (repo *KycDbRepository) UpdateCaseStatus(ctx context.Context, exec Executor, caseId string, status models.CaseStatus) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_KYC_CASES).
			Set("status", status).
			Where(squirrel.Eq{"id": caseId}),
	)
}

func (repo *KycDbRepository) UpdateCaseAnalysis(ctx context.Context, exec Executor, attributes models.UpdateCaseAnalysisAttributes) error {
	analysisResults, err := json.Marshal(attributes.AnalysisResults)
	if err != nil {
		return errors.Wrap(err, "can't encode analysis results")
	}

	query := NewQueryBuilder().Update(dbmodels.TABLE_KYC_CASES).
		Set("status", attributes.Status).
		Set("analysis_results", analysisResults).
		Set("documents_processed", attributes.DocumentsProcessed).
		Where(squirrel.Eq{"id": attributes.Id})

	if attributes.CustomerData != nil {
		customerData, err := json.Marshal(attributes.CustomerData)
		if err != nil {
			return errors.Wrap(err, "can't encode customer data")
		}
		query = query.Set("customer_data", customerData)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *KycDbRepository) UpdateCaseRiskAssessment(
	ctx context.Context,
	exec Executor,
	caseId string,
	riskAssessment models.RiskAssessment,
) error {
	encoded, err := json.Marshal(riskAssessment)
	if err != nil {
		return errors.Wrap(err, "can't encode risk assessment")
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_KYC_CASES).
			Set("risk_assessment", encoded).
			Where(squirrel.Eq{"id": caseId}),
	)
}

func (repo *KycDbRepository) ListCases(ctx context.Context, exec Executor, filters models.CaseFilters) ([]models.Case, error) {
	query := selectCases().OrderBy("created_at DESC", "id DESC")

	if len(filters.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": filters.Statuses})
	}
	if filters.Limit > 0 {
		query = query.Limit(uint64(filters.Limit))
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCase)
}
