package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCaseStatusCanTransition(t *testing.T) {
	tests := []struct {
		from    CaseStatus
		to      CaseStatus
		allowed bool
	}{
		{CaseUploading, CaseAnalyzing, true},
		{CaseUploading, CaseCompleted, false},
		{CaseUploading, CaseFailed, false},
		{CaseAnalyzing, CaseCompleted, true},
		{CaseAnalyzing, CaseFailed, true},
		{CaseAnalyzing, CaseUploading, false},
		{CaseCompleted, CaseAnalyzing, false},
		{CaseCompleted, CaseFailed, false},
		{CaseFailed, CaseAnalyzing, false},
		{CaseFailed, CaseCompleted, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to),
			"transition %s -> %s", tt.from, tt.to)
	}
}

func TestCaseStatusIsTerminal(t *testing.T) {
	assert.False(t, CaseUploading.IsTerminal())
	assert.False(t, CaseAnalyzing.IsTerminal())
	assert.True(t, CaseCompleted.IsTerminal())
	assert.True(t, CaseFailed.IsTerminal())
}

func TestCaseStatusFrom(t *testing.T) {
	assert.Equal(t, CaseAnalyzing, CaseStatusFrom("analyzing"))
	assert.Equal(t, CaseUnknownStatus, CaseStatusFrom("nonsense"))
	assert.Equal(t, CaseUnknownStatus, CaseStatusFrom(""))
}

func TestNewCaseId(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	id := NewCaseId(now)
	assert.True(t, strings.HasPrefix(id, "KYC-20260314-"), "got %s", id)
	assert.Len(t, id, len("KYC-20260314-")+8)

	// random suffix: two ids generated at the same instant must differ
	assert.NotEqual(t, id, NewCaseId(now))
}

func TestFilesForExtraction(t *testing.T) {
	c := Case{Files: []string{"/tmp/a.pdf", "/tmp/b.pdf", "/tmp/c.pdf"}}

	assert.Equal(t, []string{"/tmp/a.pdf"}, c.FilesForExtraction(false))
	assert.Equal(t, c.Files, c.FilesForExtraction(true))

	empty := Case{}
	assert.Empty(t, empty.FilesForExtraction(false))
	assert.False(t, empty.HasFiles())
}

func TestValidateCasePriority(t *testing.T) {
	p, err := ValidateCasePriority("")
	assert.NoError(t, err)
	assert.Equal(t, CasePriorityStandard, p)

	p, err = ValidateCasePriority("urgent")
	assert.NoError(t, err)
	assert.Equal(t, CasePriorityUrgent, p)

	_, err = ValidateCasePriority("asap")
	assert.ErrorIs(t, err, BadParameterError)
}

func TestQueuePriority(t *testing.T) {
	assert.Equal(t, 1, CasePriorityUrgent.QueuePriority())
	assert.Equal(t, 2, CasePriorityHigh.QueuePriority())
	assert.Equal(t, 3, CasePriorityStandard.QueuePriority())
}
