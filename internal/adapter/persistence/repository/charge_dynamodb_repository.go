package repository

import (
	"context"
	"fmt"
	"time"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase/interfaces"
)

const (
	defaultChargesTableName = "charges"
	chargesBudgetIDIndex    = "budget_id-index"
)

type chargeItem struct {
	ID           string                 `dynamodbav:"id"`
	BudgetID     string                 `dynamodbav:"budget_id"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// ChargeDynamoRepository persists Charge entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)
type ChargeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb DynamoAPI, tableName string) *ChargeDynamoRepository {
	return &ChargeDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultChargesTableName)}
}

func (r *ChargeDynamoRepository) Create(ctx context.Context, c entities.Charge) (entities.Charge, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toChargeItem(c)); err != nil {
		return entities.Charge{}, err
	}
	return c, nil
}

func (r *ChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Charge, error) {
	it, ok, err := getByID[chargeItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Charge{}, err
	}
	return fromChargeItem(it)
}

func (r *ChargeDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Charge, error) {
	items, err := queryIndex[chargeItem](ctx, r.ddb, r.tableName, chargesBudgetIDIndex, "budget_id", budgetID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Charge, 0, len(items))
	for _, it := range items {
		c, err := fromChargeItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func toChargeItem(c entities.Charge) chargeItem {
	return chargeItem{
		ID:           c.ID,
		BudgetID:     c.BudgetID,
		Date:         c.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(c.Status),
		MPPayload:    c.MPPayload,
		MPPayloadRaw: string(c.MPPayloadRaw),
	}
}

func fromChargeItem(it chargeItem) (entities.Charge, error) {
	date, err := parseTimestamp("date", it.Date)
	if err != nil {
		return entities.Charge{}, fmt.Errorf("charge %s: %w", it.ID, err)
	}
	return entities.Charge{
		ID:           it.ID,
		BudgetID:     it.BudgetID,
		Date:         date,
		Status:       entities.ChargeStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}, nil
}
