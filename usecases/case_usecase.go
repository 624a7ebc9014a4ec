package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/repositories"
	"github.com/veriflow/kyc-backend/usecases/executor_factory"
	"github.com/veriflow/kyc-backend/utils"
)

type CaseUseCaseRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error)
	GetCaseByIdForUpdate(ctx context.Context, tx repositories.Transaction, caseId string) (models.Case, error)
	CreateCase(ctx context.Context, exec repositories.Executor,
		attributes models.CreateCaseAttributes, newCaseId string, createdAt time.Time) error
	UpdateCaseStatus(ctx context.Context, exec repositories.Executor,
		caseId string, status models.CaseStatus) error
	UpdateCaseAnalysis(ctx context.Context, exec repositories.Executor,
		attributes models.UpdateCaseAnalysisAttributes) error
	UpdateCaseRiskAssessment(ctx context.Context, exec repositories.Executor,
		caseId string, riskAssessment models.RiskAssessment) error
	ListCases(ctx context.Context, exec repositories.Executor,
		filters models.CaseFilters) ([]models.Case, error)
	CreateCaseEvent(ctx context.Context, exec repositories.Executor,
		attributes models.CreateCaseEventAttributes) error
	ListCaseEvents(ctx context.Context, exec repositories.Executor, caseId string) ([]models.CaseEvent, error)
}

type CaseUseCase struct {
	executorFactory     executor_factory.ExecutorFactory
	transactionFactory  executor_factory.TransactionFactory
	repository          CaseUseCaseRepository
	taskQueueRepository repositories.TaskQueueRepository
}

func NewCaseUseCase(
	executorFactory executor_factory.ExecutorFactory,
	transactionFactory executor_factory.TransactionFactory,
	repository CaseUseCaseRepository,
	taskQueueRepository repositories.TaskQueueRepository,
) *CaseUseCase {
	return &CaseUseCase{
		executorFactory:     executorFactory,
		transactionFactory:  transactionFactory,
		repository:          repository,
		taskQueueRepository: taskQueueRepository,
	}
}

func (uc *CaseUseCase) CreateCaseFromUpload(
	ctx context.Context,
	customerData models.CustomerData,
	files []string,
	priority models.CasePriority,
) (models.Case, error) {
	if strings.TrimSpace(customerData.FullName) == "" {
		return models.Case{}, errors.Wrap(models.BadParameterError,
			"customer full_name is required")
	}

	newCaseId := models.NewCaseId(time.Now())

	createdCase, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			err := uc.repository.CreateCase(ctx, tx, models.CreateCaseAttributes{
				CustomerData: customerData,
				Files:        files,
				Priority:     priority,
				Status:       models.CaseUploading,
			}, newCaseId, time.Now())
			if err != nil {
				return models.Case{}, err
			}

			err = uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:    newCaseId,
				EventType: models.CaseCreated,
				Detail:    fmt.Sprintf("case created with %d file(s)", len(files)),
			})
			if err != nil {
				return models.Case{}, err
			}

			return uc.repository.GetCaseById(ctx, tx, newCaseId)
		})
	if err != nil {
		return models.Case{}, err
	}

	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "Created KYC case",
		"case_id", createdCase.Id, "files", len(files), "priority", priority)
	return createdCase, nil
}

// StartAnalysis moves the case to analyzing and schedules the document
// extraction job. The row lock, the status change and the job insert share
// one transaction: a job exists if and only if the transition was committed,
// and two concurrent start requests cannot both pass the status check.
func (uc *CaseUseCase) StartAnalysis(ctx context.Context, caseId string) error {
	err := uc.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		kycCase, err := uc.repository.GetCaseByIdForUpdate(ctx, tx, caseId)
		if err != nil {
			return err
		}

		if err := validateAnalysisStart(kycCase); err != nil {
			return err
		}

		if err := uc.repository.UpdateCaseStatus(ctx, tx, caseId, models.CaseAnalyzing); err != nil {
			return err
		}
		err = uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:    caseId,
			EventType: models.AnalysisStarted,
			Detail:    fmt.Sprintf("analysis requested on %d file(s)", len(kycCase.Files)),
		})
		if err != nil {
			return err
		}

		return uc.taskQueueRepository.EnqueueDocumentExtractionTask(ctx, tx, caseId, kycCase.Priority)
	})
	if err != nil {
		return err
	}

	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "Started case analysis", "case_id", caseId)
	return nil
}

func validateAnalysisStart(kycCase models.Case) error {
	if !kycCase.HasFiles() {
		return errors.Wrap(models.ErrCaseHasNoFiles, kycCase.Id)
	}
	switch {
	case kycCase.Status == models.CaseAnalyzing:
		return errors.Wrap(models.ErrCaseAlreadyAnalyzing, kycCase.Id)
	case kycCase.Status.IsTerminal():
		return errors.Wrap(models.ErrCaseTerminal, kycCase.Id)
	case !kycCase.Status.CanTransition(models.CaseAnalyzing):
		return errors.Wrapf(models.InvalidStateError,
			"cannot start analysis on case %s in status %s", kycCase.Id, kycCase.Status)
	}
	return nil
}

func (uc *CaseUseCase) GetCase(ctx context.Context, caseId string) (models.Case, error) {
	exec := uc.executorFactory.NewExecutor()

	kycCase, err := uc.repository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}

	events, err := uc.repository.ListCaseEvents(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}
	kycCase.Events = events
	return kycCase, nil
}

func (uc *CaseUseCase) ListCases(ctx context.Context, filters models.CaseFilters) ([]models.Case, error) {
	return uc.repository.ListCases(ctx, uc.executorFactory.NewExecutor(), filters)
}

// CompleteAnalysis persists a successful extraction outcome. Fields the
// extraction yielded are merged into the customer data extension map.
func (uc *CaseUseCase) CompleteAnalysis(
	ctx context.Context,
	caseId string,
	analysisResults models.AnalysisResults,
	extracted map[string]any,
	documentsProcessed int,
) error {
	return uc.finalizeAnalysis(ctx, caseId, models.CaseCompleted,
		analysisResults, extracted, documentsProcessed,
		models.AnalysisCompleted, "extraction succeeded")
}

// FailAnalysis persists a failed extraction outcome.
func (uc *CaseUseCase) FailAnalysis(ctx context.Context, caseId string, errorText string) error {
	return uc.finalizeAnalysis(ctx, caseId, models.CaseFailed,
		models.AnalysisResults{Error: errorText}, nil, 0,
		models.AnalysisFailed, errorText)
}

// finalizeAnalysis applies the terminal transition for one extraction run.
// If the case is no longer analyzing, someone else already settled it and the
// outcome is dropped.
func (uc *CaseUseCase) finalizeAnalysis(
	ctx context.Context,
	caseId string,
	status models.CaseStatus,
	analysisResults models.AnalysisResults,
	extracted map[string]any,
	documentsProcessed int,
	eventType models.CaseEventType,
	eventDetail string,
) error {
	return uc.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		kycCase, err := uc.repository.GetCaseByIdForUpdate(ctx, tx, caseId)
		if err != nil {
			return err
		}

		if kycCase.Status != models.CaseAnalyzing {
			logger := utils.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "Dropping extraction outcome for case not in analyzing",
				"case_id", caseId, "status", kycCase.Status)
			return nil
		}

		var customerData *models.CustomerData
		if len(extracted) > 0 {
			merged := kycCase.CustomerData.WithExtractedData(extracted)
			customerData = &merged
		}

		err = uc.repository.UpdateCaseAnalysis(ctx, tx, models.UpdateCaseAnalysisAttributes{
			Id:                 caseId,
			Status:             status,
			AnalysisResults:    analysisResults,
			CustomerData:       customerData,
			DocumentsProcessed: documentsProcessed,
		})
		if err != nil {
			return err
		}

		return uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:    caseId,
			EventType: eventType,
			Detail:    eventDetail,
		})
	})
}
