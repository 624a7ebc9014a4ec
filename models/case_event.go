package models

import (
	"slices"
	"time"
)

type CaseEventType string

const (
	CaseCreated       CaseEventType = "case_created"
	AnalysisStarted   CaseEventType = "analysis_started"
	AnalysisCompleted CaseEventType = "analysis_completed"
	AnalysisFailed    CaseEventType = "analysis_failed"
	RiskScored        CaseEventType = "risk_scored"
	CaseUnknownEvent  CaseEventType = "unknown"
)

var ValidCaseEventTypes = []CaseEventType{
	CaseCreated,
	AnalysisStarted,
	AnalysisCompleted,
	AnalysisFailed,
	RiskScored,
}

func CaseEventTypeFrom(s string) CaseEventType {
	if slices.Contains(ValidCaseEventTypes, CaseEventType(s)) {
		return CaseEventType(s)
	}
	return CaseUnknownEvent
}

type CaseEvent struct {
	Id        string
	CaseId    string
	EventType CaseEventType
	Detail    string
	CreatedAt time.Time
}

type CreateCaseEventAttributes struct {
	CaseId    string
	EventType CaseEventType
	Detail    string
}
