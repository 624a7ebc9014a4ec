package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/repositories"
)

type TaskQueueRepository struct {
	mock.Mock
}

func (r *TaskQueueRepository) EnqueueDocumentExtractionTask(
	ctx context.Context,
	tx repositories.Transaction,
	caseId string,
	priority models.CasePriority,
) error {
	args := r.Called(ctx, tx, caseId, priority)
	return args.Error(0)
}
