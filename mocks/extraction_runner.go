package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/veriflow/kyc-backend/models"
)

type ExtractionRunner struct {
	mock.Mock
}

func (r *ExtractionRunner) RunExtraction(ctx context.Context, filePaths []string) (models.ExtractionResult, error) {
	args := r.Called(ctx, filePaths)
	return args.Get(0).(models.ExtractionResult), args.Error(1)
}
