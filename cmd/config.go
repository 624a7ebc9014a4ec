package cmd

import (
	"strings"
	"time"

	"github.com/veriflow/kyc-backend/infra"
	"github.com/veriflow/kyc-backend/utils"
)

const appName = "kyc-backend"

func pgConfigFromEnv() utils.PGConfig {
	return utils.PGConfig{
		ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
		Hostname:         utils.GetEnv("PG_HOSTNAME", "localhost"),
		Port:             utils.GetEnv("PG_PORT", "5432"),
		User:             utils.GetEnv("PG_USER", "postgres"),
		Password:         utils.GetEnv("PG_PASSWORD", ""),
		Database:         utils.GetEnv("PG_DATABASE", "kyc"),
	}
}

func extractionConfigFromEnv() infra.ExtractionConfig {
	return infra.ExtractionConfig{
		Command:  utils.GetRequiredEnv[string]("EXTRACTION_COMMAND"),
		Args:     strings.Fields(utils.GetEnv("EXTRACTION_ARGS", "")),
		Timeout:  time.Duration(utils.GetEnv("EXTRACTION_TIMEOUT_SECOND", 300)) * time.Second,
		AllFiles: utils.GetEnv("EXTRACTION_ALL_FILES", false),
	}
}
