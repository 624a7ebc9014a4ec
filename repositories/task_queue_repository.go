package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/utils"
)

type TaskQueueRepository interface {
	EnqueueDocumentExtractionTask(
		ctx context.Context,
		tx Transaction,
		caseId string,
		priority models.CasePriority,
	) error
}

type riverRepository struct {
	client *river.Client[pgx.Tx]
}

func NewTaskQueueRepository(client *river.Client[pgx.Tx]) TaskQueueRepository {
	return riverRepository{client: client}
}

// EnqueueDocumentExtractionTask inserts the extraction job in the same
// transaction as the case status change, so a job exists if and only if the
// case was moved to analyzing. Extraction is not idempotent, hence a single
// attempt: failures are handled by marking the case as failed, not by
// retrying the job.
func (r riverRepository) EnqueueDocumentExtractionTask(
	ctx context.Context,
	tx Transaction,
	caseId string,
	priority models.CasePriority,
) error {
	res, err := r.client.InsertTx(
		ctx,
		tx.RawTx(),
		models.DocumentExtractionArgs{
			CaseId: caseId,
		},
		&river.InsertOpts{
			Queue:       models.DocumentExtractionQueue,
			Priority:    priority.QueuePriority(),
			MaxAttempts: 1,
		},
	)
	if err != nil {
		return err
	}

	logger := utils.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "Enqueued document extraction task",
		"job_id", res.Job.ID, "case_id", caseId)
	return nil
}
