package repositories_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/repositories"
	"github.com/veriflow/kyc-backend/usecases/executor_factory"
)

const selectCasesSql = "SELECT id, status, priority, customer_data, files, analysis_results, " +
	"risk_assessment, documents_processed, created_at FROM kyc_cases"

func caseRow(caseId string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "status", "priority", "customer_data", "files",
		"analysis_results", "risk_assessment", "documents_processed", "created_at",
	}).AddRow(
		caseId, "uploading", "standard",
		[]byte(`{"full_name": "Jane Smith"}`), []string{"/uploads/passport.pdf"},
		[]byte(nil), []byte(nil), 0, time.Now(),
	)
}

func TestGetCaseById(t *testing.T) {
	stub := executor_factory.NewExecutorFactoryStub()
	repo := repositories.KycDbRepository{}
	caseId := "KYC-20260314-a1b2c3d4"

	stub.Mock.ExpectQuery(regexp.QuoteMeta(selectCasesSql + " WHERE id = $1")).
		WithArgs(caseId).
		WillReturnRows(caseRow(caseId))

	kycCase, err := repo.GetCaseById(context.Background(), stub.NewExecutor(), caseId)

	assert.NoError(t, err)
	assert.Equal(t, caseId, kycCase.Id)
	assert.Equal(t, models.CaseUploading, kycCase.Status)
	assert.Equal(t, "Jane Smith", kycCase.CustomerData.FullName)
	assert.NoError(t, stub.Mock.ExpectationsWereMet())
}

func TestGetCaseById_notFound(t *testing.T) {
	stub := executor_factory.NewExecutorFactoryStub()
	repo := repositories.KycDbRepository{}

	stub.Mock.ExpectQuery(regexp.QuoteMeta(selectCasesSql + " WHERE id = $1")).
		WithArgs("KYC-20260314-missing").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err := repo.GetCaseById(context.Background(), stub.NewExecutor(), "KYC-20260314-missing")

	assert.ErrorIs(t, err, models.ErrCaseNotFound)
	assert.NoError(t, stub.Mock.ExpectationsWereMet())
}

func TestCreateCase_withoutFiles_insertsEmptyArray(t *testing.T) {
	stub := executor_factory.NewExecutorFactoryStub()
	repo := repositories.KycDbRepository{}
	caseId := "KYC-20260314-a1b2c3d4"
	createdAt := time.Now()

	// files must reach the driver as an empty array, not as NULL: the column
	// is NOT NULL and the synchronous path creates cases without any files
	stub.Mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kyc_cases")).
		WithArgs(caseId, models.CaseCompleted, models.CasePriorityStandard,
			pgxmock.AnyArg(), []string{}, pgxmock.AnyArg(), pgxmock.AnyArg(), 0, createdAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateCase(context.Background(), stub.NewExecutor(), models.CreateCaseAttributes{
		CustomerData: models.CustomerData{FullName: "Jane Smith"},
		Status:       models.CaseCompleted,
		Priority:     models.CasePriorityStandard,
	}, caseId, createdAt)

	assert.NoError(t, err)
	assert.NoError(t, stub.Mock.ExpectationsWereMet())
}

func TestCreateCase_duplicateId(t *testing.T) {
	stub := executor_factory.NewExecutorFactoryStub()
	repo := repositories.KycDbRepository{}
	caseId := "KYC-20260314-a1b2c3d4"

	stub.Mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kyc_cases")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.CreateCase(context.Background(), stub.NewExecutor(), models.CreateCaseAttributes{
		CustomerData: models.CustomerData{FullName: "Jane Smith"},
		Status:       models.CaseUploading,
		Priority:     models.CasePriorityStandard,
	}, caseId, time.Now())

	assert.ErrorIs(t, err, models.ErrCaseIdAlreadyExists)
	assert.NoError(t, stub.Mock.ExpectationsWereMet())
}

func TestUpdateCaseStatus(t *testing.T) {
	stub := executor_factory.NewExecutorFactoryStub()
	repo := repositories.KycDbRepository{}
	caseId := "KYC-20260314-a1b2c3d4"

	stub.Mock.ExpectExec(regexp.QuoteMeta("UPDATE kyc_cases SET status = $1 WHERE id = $2")).
		WithArgs(models.CaseAnalyzing, caseId).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateCaseStatus(context.Background(), stub.NewExecutor(), caseId, models.CaseAnalyzing)

	assert.NoError(t, err)
	assert.NoError(t, stub.Mock.ExpectationsWereMet())
}

func TestListCases_statusFilter(t *testing.T) {
	stub := executor_factory.NewExecutorFactoryStub()
	repo := repositories.KycDbRepository{}

	stub.Mock.ExpectQuery(regexp.QuoteMeta(
		selectCasesSql+" WHERE status IN ($1) ORDER BY created_at DESC, id DESC LIMIT 10")).
		WithArgs(models.CaseAnalyzing).
		WillReturnRows(caseRow("KYC-20260314-a1b2c3d4"))

	cases, err := repo.ListCases(context.Background(), stub.NewExecutor(), models.CaseFilters{
		Statuses: []models.CaseStatus{models.CaseAnalyzing},
		Limit:    10,
	})

	assert.NoError(t, err)
	assert.Len(t, cases, 1)
	assert.NoError(t, stub.Mock.ExpectationsWereMet())
}
