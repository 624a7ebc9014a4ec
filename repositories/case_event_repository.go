package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/repositories/dbmodels"
)

func (repo *KycDbRepository) CreateCaseEvent(ctx context.Context, exec Executor, attributes models.CreateCaseEventAttributes) error {
	return repo.BatchCreateCaseEvents(ctx, exec, []models.CreateCaseEventAttributes{attributes})
}

func (repo *KycDbRepository) BatchCreateCaseEvents(ctx context.Context, exec Executor, attributes []models.CreateCaseEventAttributes) error {
	if len(attributes) == 0 {
		return nil
	}

	query := NewQueryBuilder().Insert(dbmodels.TABLE_KYC_CASE_EVENTS).
		Columns(
			"id",
			"case_id",
			"event_type",
			"detail",
		)
	for _, attrs := range attributes {
		query = query.Values(
			uuid.NewString(),
			attrs.CaseId,
			attrs.EventType,
			attrs.Detail,
		)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *KycDbRepository) ListCaseEvents(ctx context.Context, exec Executor, caseId string) ([]models.CaseEvent, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseEventColumn...).
			From(dbmodels.TABLE_KYC_CASE_EVENTS).
			Where(squirrel.Eq{"case_id": caseId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptCaseEvent,
	)
}
