package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/veriflow/kyc-backend/mocks"
	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/usecases/executor_factory"
)

type CaseUsecaseTestSuite struct {
	suite.Suite
	repository          *mocks.CaseRepository
	taskQueueRepository *mocks.TaskQueueRepository
	executorFactory     executor_factory.ExecutorFactoryStub

	caseId string
}

func (suite *CaseUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.CaseRepository)
	suite.taskQueueRepository = new(mocks.TaskQueueRepository)
	suite.executorFactory = executor_factory.NewExecutorFactoryStub()

	suite.caseId = "KYC-20260314-a1b2c3d4"
}

func (suite *CaseUsecaseTestSuite) makeUsecase() *CaseUseCase {
	return &CaseUseCase{
		executorFactory:     suite.executorFactory,
		transactionFactory:  suite.executorFactory,
		repository:          suite.repository,
		taskQueueRepository: suite.taskQueueRepository,
	}
}

func (suite *CaseUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.taskQueueRepository.AssertExpectations(t)
}

func (suite *CaseUsecaseTestSuite) Test_CreateCaseFromUpload_nominal() {
	ctx := context.Background()
	customerData := models.CustomerData{FullName: "Jane Smith"}
	files := []string{"/uploads/passport.pdf"}

	suite.repository.On("CreateCase", ctx, mock.Anything,
		mock.MatchedBy(func(attrs models.CreateCaseAttributes) bool {
			return attrs.Status == models.CaseUploading &&
				attrs.CustomerData.FullName == "Jane Smith" &&
				len(attrs.Files) == 1
		}),
		mock.MatchedBy(func(id string) bool { return strings.HasPrefix(id, "KYC-") }),
		mock.Anything,
	).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, mock.Anything,
		mock.MatchedBy(func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.CaseCreated
		}),
	).Return(nil)
	suite.repository.On("GetCaseById", ctx, mock.Anything, mock.Anything).
		Return(models.Case{Status: models.CaseUploading, Files: files}, nil)

	createdCase, err := suite.makeUsecase().CreateCaseFromUpload(ctx, customerData, files, models.CasePriorityStandard)

	suite.NoError(err)
	suite.Equal(models.CaseUploading, createdCase.Status)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CreateCaseFromUpload_missing_name() {
	_, err := suite.makeUsecase().CreateCaseFromUpload(context.Background(),
		models.CustomerData{FullName: "  "}, nil, models.CasePriorityStandard)

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_StartAnalysis_nominal() {
	ctx := context.Background()
	kycCase := models.Case{
		Id:       suite.caseId,
		Status:   models.CaseUploading,
		Priority: models.CasePriorityHigh,
		Files:    []string{"/uploads/passport.pdf"},
	}

	suite.repository.On("GetCaseByIdForUpdate", ctx, mock.Anything, suite.caseId).
		Return(kycCase, nil)
	suite.repository.On("UpdateCaseStatus", ctx, mock.Anything, suite.caseId, models.CaseAnalyzing).
		Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, mock.Anything,
		mock.MatchedBy(func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.AnalysisStarted
		}),
	).Return(nil)
	suite.taskQueueRepository.On("EnqueueDocumentExtractionTask", ctx, mock.Anything,
		suite.caseId, models.CasePriorityHigh).Return(nil)

	err := suite.makeUsecase().StartAnalysis(ctx, suite.caseId)

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_StartAnalysis_already_analyzing() {
	ctx := context.Background()
	kycCase := models.Case{
		Id:     suite.caseId,
		Status: models.CaseAnalyzing,
		Files:  []string{"/uploads/passport.pdf"},
	}

	suite.repository.On("GetCaseByIdForUpdate", ctx, mock.Anything, suite.caseId).
		Return(kycCase, nil)

	err := suite.makeUsecase().StartAnalysis(ctx, suite.caseId)

	suite.ErrorIs(err, models.InvalidStateError)
	suite.taskQueueRepository.AssertNotCalled(suite.T(), "EnqueueDocumentExtractionTask",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_StartAnalysis_terminal_case() {
	ctx := context.Background()
	kycCase := models.Case{
		Id:     suite.caseId,
		Status: models.CaseCompleted,
		Files:  []string{"/uploads/passport.pdf"},
	}

	suite.repository.On("GetCaseByIdForUpdate", ctx, mock.Anything, suite.caseId).
		Return(kycCase, nil)

	err := suite.makeUsecase().StartAnalysis(ctx, suite.caseId)

	suite.ErrorIs(err, models.InvalidStateError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_StartAnalysis_no_files() {
	ctx := context.Background()
	kycCase := models.Case{
		Id:     suite.caseId,
		Status: models.CaseUploading,
	}

	suite.repository.On("GetCaseByIdForUpdate", ctx, mock.Anything, suite.caseId).
		Return(kycCase, nil)

	err := suite.makeUsecase().StartAnalysis(ctx, suite.caseId)

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_GetCase_not_found() {
	ctx := context.Background()

	suite.repository.On("GetCaseById", ctx, mock.Anything, suite.caseId).
		Return(models.Case{}, models.ErrCaseNotFound)

	_, err := suite.makeUsecase().GetCase(ctx, suite.caseId)

	suite.ErrorIs(err, models.NotFoundError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_FinalizeAnalysis_drops_outcome_on_settled_case() {
	ctx := context.Background()
	kycCase := models.Case{
		Id:     suite.caseId,
		Status: models.CaseCompleted,
		Files:  []string{"/uploads/passport.pdf"},
	}

	suite.repository.On("GetCaseByIdForUpdate", ctx, mock.Anything, suite.caseId).
		Return(kycCase, nil)

	err := suite.makeUsecase().FailAnalysis(ctx, suite.caseId, "extraction exited with code 1")

	suite.NoError(err)
	suite.repository.AssertNotCalled(suite.T(), "UpdateCaseAnalysis",
		mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CompleteAnalysis_merges_extracted_data() {
	ctx := context.Background()
	kycCase := models.Case{
		Id:           suite.caseId,
		Status:       models.CaseAnalyzing,
		CustomerData: models.CustomerData{FullName: "Jane Smith"},
		Files:        []string{"/uploads/passport.pdf"},
	}
	extracted := map[string]any{"name": "Jane Smith", "id": "123456789"}

	suite.repository.On("GetCaseByIdForUpdate", ctx, mock.Anything, suite.caseId).
		Return(kycCase, nil)
	suite.repository.On("UpdateCaseAnalysis", ctx, mock.Anything,
		mock.MatchedBy(func(attrs models.UpdateCaseAnalysisAttributes) bool {
			return attrs.Status == models.CaseCompleted &&
				attrs.CustomerData != nil &&
				attrs.CustomerData.AdditionalInfo["extracted"] != nil &&
				attrs.DocumentsProcessed == 1
		}),
	).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, mock.Anything,
		mock.MatchedBy(func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.AnalysisCompleted
		}),
	).Return(nil)

	err := suite.makeUsecase().CompleteAnalysis(ctx, suite.caseId,
		models.AnalysisResults{RawOutput: "ok"}, extracted, 1)

	suite.NoError(err)
	suite.AssertExpectations()
}

func TestCaseUsecase(t *testing.T) {
	suite.Run(t, new(CaseUsecaseTestSuite))
}
