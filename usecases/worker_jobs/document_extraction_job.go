package worker_jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/riverqueue/river"
	"github.com/tidwall/gjson"

	"github.com/veriflow/kyc-backend/infra"
	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/utils"
)

const (
	// margin on top of the extraction budget so that a run that hits its
	// deadline can still persist the failed outcome before river kills the job
	persistMargin   = 30 * time.Second
	persistAttempts = 3
	persistDelay    = 500 * time.Millisecond
)

type caseAnalysisFinalizer interface {
	GetCase(ctx context.Context, caseId string) (models.Case, error)
	CompleteAnalysis(ctx context.Context, caseId string,
		analysisResults models.AnalysisResults, extracted map[string]any, documentsProcessed int) error
	FailAnalysis(ctx context.Context, caseId string, errorText string) error
}

type extractionRunner interface {
	RunExtraction(ctx context.Context, filePaths []string) (models.ExtractionResult, error)
}

type DocumentExtractionWorker struct {
	river.WorkerDefaults[models.DocumentExtractionArgs]

	config      infra.ExtractionConfig
	runner      extractionRunner
	caseUseCase caseAnalysisFinalizer
}

func NewDocumentExtractionWorker(
	config infra.ExtractionConfig,
	runner extractionRunner,
	caseUseCase caseAnalysisFinalizer,
) *DocumentExtractionWorker {
	return &DocumentExtractionWorker{
		config:      config,
		runner:      runner,
		caseUseCase: caseUseCase,
	}
}

func (w *DocumentExtractionWorker) Timeout(job *river.Job[models.DocumentExtractionArgs]) time.Duration {
	return w.config.Timeout + persistMargin
}

func (w *DocumentExtractionWorker) Work(ctx context.Context, job *river.Job[models.DocumentExtractionArgs]) error {
	caseId := job.Args.CaseId
	logger := utils.LoggerFromContext(ctx)

	kycCase, err := w.caseUseCase.GetCase(ctx, caseId)
	if err != nil {
		return err
	}
	if kycCase.Status != models.CaseAnalyzing {
		logger.WarnContext(ctx, "Skipping extraction for case not in analyzing",
			"case_id", caseId, "status", kycCase.Status)
		return nil
	}

	files := kycCase.FilesForExtraction(w.config.AllFiles)
	if len(files) == 0 {
		return w.persistOutcome(ctx, caseId, func() error {
			return w.caseUseCase.FailAnalysis(ctx, caseId, "case has no files to extract")
		})
	}

	runCtx, cancel := context.WithTimeout(ctx, w.config.Timeout)
	defer cancel()

	result, runErr := w.runner.RunExtraction(runCtx, files)

	switch {
	case runErr != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded):
		errorText := fmt.Sprintf("extraction timed out after %s", w.config.Timeout)
		logger.WarnContext(ctx, "Extraction timed out", "case_id", caseId, "files", len(files))
		return w.persistOutcome(ctx, caseId, func() error {
			return w.caseUseCase.FailAnalysis(ctx, caseId, errorText)
		})

	case runErr != nil:
		return w.persistOutcome(ctx, caseId, func() error {
			return w.caseUseCase.FailAnalysis(ctx, caseId, runErr.Error())
		})

	case !result.Succeeded():
		errorText := result.Stderr
		if errorText == "" {
			errorText = fmt.Sprintf("extraction exited with code %d", result.ExitCode)
		}
		logger.InfoContext(ctx, "Extraction failed", "case_id", caseId,
			"exit_code", result.ExitCode, "duration_ms", result.DurationMs)
		return w.persistOutcome(ctx, caseId, func() error {
			return w.caseUseCase.FailAnalysis(ctx, caseId, errorText)
		})

	default:
		logger.InfoContext(ctx, "Extraction succeeded", "case_id", caseId,
			"files", len(files), "duration_ms", result.DurationMs)
		analysisResults := models.AnalysisResults{
			RawOutput:  result.RawOutput,
			AgentNotes: "Extraction completed",
		}
		extracted := parseExtractedFields(result.RawOutput)
		return w.persistOutcome(ctx, caseId, func() error {
			return w.caseUseCase.CompleteAnalysis(ctx, caseId, analysisResults, extracted, len(files))
		})
	}
}

// persistOutcome writes the terminal transition, retrying on transient store
// errors. If all attempts fail the case stays in analyzing; that is the
// reconciliation signal, so the error is reported rather than swallowed.
func (w *DocumentExtractionWorker) persistOutcome(ctx context.Context, caseId string, persist func() error) error {
	err := retry.Do(persist,
		retry.Context(ctx),
		retry.Attempts(persistAttempts),
		retry.Delay(persistDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		utils.LogAndReportSentryError(ctx,
			errors.Wrapf(err, "failed to persist extraction outcome for case %s", caseId))
		return err
	}
	return nil
}

// well-known keys the extraction agent may emit when its output is JSON
var extractedFieldNames = []string{
	"name", "id", "document_number", "date_of_birth", "nationality", "address",
}

// parseExtractedFields pulls best-effort structured fields out of the raw
// agent output. The agent gives no schema guarantee beyond raw text, so
// anything that is not a JSON object is simply not structured data.
func parseExtractedFields(rawOutput string) map[string]any {
	trimmed := strings.TrimSpace(rawOutput)
	if !gjson.Valid(trimmed) {
		return nil
	}
	parsed := gjson.Parse(trimmed)
	if !parsed.IsObject() {
		return nil
	}

	extracted := make(map[string]any)
	for _, field := range extractedFieldNames {
		if value := parsed.Get(field); value.Exists() {
			extracted[field] = value.Value()
		}
	}
	if len(extracted) == 0 {
		return nil
	}
	return extracted
}
