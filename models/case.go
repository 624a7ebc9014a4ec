package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Case struct {
	Id                 string
	Status             CaseStatus
	Priority           CasePriority
	CustomerData       CustomerData
	Files              []string
	AnalysisResults    AnalysisResults
	RiskAssessment     RiskAssessment
	Events             []CaseEvent
	CreatedAt          time.Time
	DocumentsProcessed int
}

func (c Case) HasFiles() bool {
	return len(c.Files) > 0
}

// FilesForExtraction returns the files submitted to the extraction subsystem.
// The historical behavior is to only process the first uploaded file; processing
// every file is opt-in through the worker configuration.
func (c Case) FilesForExtraction(allFiles bool) []string {
	if allFiles || len(c.Files) == 0 {
		return c.Files
	}
	return c.Files[:1]
}

type CaseStatus string

const (
	CaseUploading     CaseStatus = "uploading"
	CaseAnalyzing     CaseStatus = "analyzing"
	CaseCompleted     CaseStatus = "completed"
	CaseFailed        CaseStatus = "failed"
	CaseUnknownStatus CaseStatus = "unknown"
)

var ValidCaseStatuses = []CaseStatus{CaseUploading, CaseAnalyzing, CaseCompleted, CaseFailed}

func CaseStatusFrom(s string) CaseStatus {
	if slices.Contains(ValidCaseStatuses, CaseStatus(s)) {
		return CaseStatus(s)
	}
	return CaseUnknownStatus
}

// CanTransition enforces the forward-only lifecycle
// uploading -> analyzing -> {completed, failed}.
func (s CaseStatus) CanTransition(newStatus CaseStatus) bool {
	switch s {
	case CaseUploading:
		return newStatus == CaseAnalyzing
	case CaseAnalyzing:
		return slices.Contains([]CaseStatus{CaseCompleted, CaseFailed}, newStatus)
	default:
		return false
	}
}

func (s CaseStatus) IsTerminal() bool {
	return s == CaseCompleted || s == CaseFailed
}

type CasePriority string

const (
	CasePriorityStandard CasePriority = "standard"
	CasePriorityHigh     CasePriority = "high"
	CasePriorityUrgent   CasePriority = "urgent"
)

var ValidCasePriorities = []CasePriority{CasePriorityStandard, CasePriorityHigh, CasePriorityUrgent}

func ValidateCasePriority(s string) (CasePriority, error) {
	if s == "" {
		return CasePriorityStandard, nil
	}
	p := CasePriority(s)
	if !slices.Contains(ValidCasePriorities, p) {
		return "", fmt.Errorf("invalid case priority %q: %w", s, BadParameterError)
	}
	return p, nil
}

// QueuePriority maps the case priority to a task queue priority
// (river: 1 is highest, 4 is lowest).
func (p CasePriority) QueuePriority() int {
	switch p {
	case CasePriorityUrgent:
		return 1
	case CasePriorityHigh:
		return 2
	default:
		return 3
	}
}

// NewCaseId keeps the human-readable "KYC-YYYYMMDD-" prefix of the legacy
// system but replaces the name-hash suffix with a random one, so that ids are
// collision-resistant across concurrent creations and not guessable.
func NewCaseId(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("KYC-%s-%s", now.UTC().Format("20060102"), suffix)
}

type CreateCaseAttributes struct {
	CustomerData       CustomerData
	Files              []string
	Priority           CasePriority
	Status             CaseStatus
	AnalysisResults    AnalysisResults
	RiskAssessment     RiskAssessment
	DocumentsProcessed int
}

type UpdateCaseAnalysisAttributes struct {
	Id              string
	Status          CaseStatus
	AnalysisResults AnalysisResults
	// CustomerData replaces the stored customer data when not nil, typically
	// after merging extracted document fields into it.
	CustomerData       *CustomerData
	DocumentsProcessed int
}

type CaseFilters struct {
	Statuses []CaseStatus
	Limit    int
}
