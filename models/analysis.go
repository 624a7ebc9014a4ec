package models

// AnalysisResults is what the extraction run left behind on the case: the raw
// agent output on success, the captured diagnostic text on failure.
type AnalysisResults struct {
	RawOutput  string `json:"raw_output,omitempty"`
	AgentNotes string `json:"agent_notes,omitempty"`
	Error      string `json:"error,omitempty"`

	// Bookkeeping fields for the synchronous path, which performs its checks
	// inline instead of going through the extraction subsystem.
	InternalDatabaseCheck string `json:"internal_database_check,omitempty"`
	DocumentAnalysis      string `json:"document_analysis,omitempty"`
	ExternalSearches      string `json:"external_searches,omitempty"`
	WealthAssessment      string `json:"wealth_assessment,omitempty"`
}

func (r AnalysisResults) IsEmpty() bool {
	return r == AnalysisResults{}
}

// ExtractionResult is the outcome of one external extraction subsystem run.
type ExtractionResult struct {
	RawOutput  string
	Stderr     string
	ExitCode   int
	DurationMs int64
}

func (r ExtractionResult) Succeeded() bool {
	return r.ExitCode == 0
}
