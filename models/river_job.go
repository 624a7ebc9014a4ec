package models

const DocumentExtractionQueue = "document_extraction"

// run the document extraction subsystem for one case
type DocumentExtractionArgs struct {
	CaseId string `json:"case_id"`
}

func (DocumentExtractionArgs) Kind() string { return "document_extraction" }
