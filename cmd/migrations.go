package cmd

import (
	"context"

	"github.com/veriflow/kyc-backend/repositories"
	"github.com/veriflow/kyc-backend/utils"
)

func RunMigrations() error {
	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	return repositories.RunMigrations(ctx, pgConfigFromEnv(), logger)
}
