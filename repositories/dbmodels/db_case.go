package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/utils"
)

const TABLE_KYC_CASES = "kyc_cases"

type DBCase struct {
	Id                 string    `db:"id"`
	Status             string    `db:"status"`
	Priority           string    `db:"priority"`
	CustomerData       []byte    `db:"customer_data"`
	Files              []string  `db:"files"`
	AnalysisResults    []byte    `db:"analysis_results"`
	RiskAssessment     []byte    `db:"risk_assessment"`
	DocumentsProcessed int       `db:"documents_processed"`
	CreatedAt          time.Time `db:"created_at"`
}

var SelectCaseColumn = utils.ColumnList[DBCase]()

func AdaptCase(db DBCase) (models.Case, error) {
	kycCase := models.Case{
		Id:                 db.Id,
		Status:             models.CaseStatusFrom(db.Status),
		Priority:           models.CasePriority(db.Priority),
		Files:              db.Files,
		DocumentsProcessed: db.DocumentsProcessed,
		CreatedAt:          db.CreatedAt,
	}

	if err := json.Unmarshal(db.CustomerData, &kycCase.CustomerData); err != nil {
		return models.Case{}, errors.Wrap(err, "can't decode customer data")
	}
	if len(db.AnalysisResults) > 0 {
		if err := json.Unmarshal(db.AnalysisResults, &kycCase.AnalysisResults); err != nil {
			return models.Case{}, errors.Wrap(err, "can't decode analysis results")
		}
	}
	if len(db.RiskAssessment) > 0 {
		if err := json.Unmarshal(db.RiskAssessment, &kycCase.RiskAssessment); err != nil {
			return models.Case{}, errors.Wrap(err, "can't decode risk assessment")
		}
	}
	return kycCase, nil
}
