package dto

import (
	"time"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/pure_utils"
)

type APICase struct {
	Id                 string                  `json:"case_id"`
	Status             string                  `json:"status"`
	Priority           string                  `json:"priority"`
	CustomerData       CustomerDataDto         `json:"customer_data"`
	Files              []string                `json:"files"`
	AnalysisResults    *models.AnalysisResults `json:"analysis_results,omitempty"`
	RiskAssessment     *models.RiskAssessment  `json:"risk_assessment,omitempty"`
	Events             []APICaseEvent          `json:"events,omitempty"`
	CreatedAt          time.Time               `json:"timestamp"`
	DocumentsProcessed int                     `json:"documents_processed"`
}

type APICaseEvent struct {
	Id        string    `json:"id"`
	CaseId    string    `json:"case_id"`
	EventType string    `json:"event_type"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptCaseDto(c models.Case) APICase {
	dto := APICase{
		Id:                 c.Id,
		Status:             string(c.Status),
		Priority:           string(c.Priority),
		CustomerData:       NewCustomerDataDto(c.CustomerData),
		Files:              c.Files,
		Events:             pure_utils.Map(c.Events, NewAPICaseEvent),
		CreatedAt:          c.CreatedAt,
		DocumentsProcessed: c.DocumentsProcessed,
	}

	if !c.AnalysisResults.IsEmpty() {
		results := c.AnalysisResults
		dto.AnalysisResults = &results
	}
	if !c.RiskAssessment.IsEmpty() {
		assessment := c.RiskAssessment
		dto.RiskAssessment = &assessment
	}
	return dto
}

func NewAPICaseEvent(event models.CaseEvent) APICaseEvent {
	return APICaseEvent{
		Id:        event.Id,
		CaseId:    event.CaseId,
		EventType: string(event.EventType),
		Detail:    event.Detail,
		CreatedAt: event.CreatedAt,
	}
}

type CreateCaseBody struct {
	CustomerData CustomerDataDto `json:"customer_data" binding:"required"`
	Files        []string        `json:"files"`
	Priority     string          `json:"priority"`
}

type CaseListDto struct {
	Cases []APICase `json:"cases"`
	Total int       `json:"total"`
}
