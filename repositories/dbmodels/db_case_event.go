package dbmodels

import (
	"time"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/utils"
)

const TABLE_KYC_CASE_EVENTS = "kyc_case_events"

type DBCaseEvent struct {
	Id        string    `db:"id"`
	CaseId    string    `db:"case_id"`
	EventType string    `db:"event_type"`
	Detail    string    `db:"detail"`
	CreatedAt time.Time `db:"created_at"`
}

var SelectCaseEventColumn = utils.ColumnList[DBCaseEvent]()

func AdaptCaseEvent(db DBCaseEvent) (models.CaseEvent, error) {
	return models.CaseEvent{
		Id:        db.Id,
		CaseId:    db.CaseId,
		EventType: models.CaseEventTypeFrom(db.EventType),
		Detail:    db.Detail,
		CreatedAt: db.CreatedAt,
	}, nil
}
