package repositories

import (
	"bytes"
	"context"
	"os/exec"
	"slices"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/veriflow/kyc-backend/models"
)

// ExtractionAgentRepository shells out to the document extraction agent. The
// agent is a separate program that receives document paths as arguments and
// writes its findings to stdout.
type ExtractionAgentRepository struct {
	command string
	args    []string
}

func NewExtractionAgentRepository(command string, args []string) *ExtractionAgentRepository {
	return &ExtractionAgentRepository{
		command: command,
		args:    args,
	}
}

// RunExtraction executes the agent on the given documents and captures its
// output. A non-zero exit code is a domain outcome, not an error: the result
// carries the exit code and stderr so the caller can fail the case with
// context. An error is returned only when the process could not be run to
// completion, including cancellation of ctx.
func (r *ExtractionAgentRepository) RunExtraction(ctx context.Context, filePaths []string) (models.ExtractionResult, error) {
	args := append(slices.Clone(r.args), filePaths...)
	cmd := exec.CommandContext(ctx, r.command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	result := models.ExtractionResult{
		RawOutput:  stdout.String(),
		Stderr:     stderr.String(),
		DurationMs: time.Since(start).Milliseconds(),
	}

	switch {
	case ctx.Err() != nil:
		result.ExitCode = -1
		return result, errors.Wrap(ctx.Err(), "extraction agent interrupted")
	case err == nil:
		return result, nil
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		result.ExitCode = -1
		return result, errors.Wrap(err, "can't run extraction agent")
	}
}
