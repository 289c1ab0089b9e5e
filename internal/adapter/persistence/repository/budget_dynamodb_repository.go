package repository

import (
	"context"
	"fmt"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultBudgetsTableName = "budgets"

type budgetLineItem struct {
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type budgetItem struct {
	ID        string           `dynamodbav:"id"`
	EventID   string           `dynamodbav:"event_id"`
	Items     []budgetLineItem `dynamodbav:"items"`
	Discount  string           `dynamodbav:"discount"`
	Surcharge string           `dynamodbav:"surcharge"`
	Status    string           `dynamodbav:"status"`
	CreatedAt string           `dynamodbav:"created_at"`
	UpdatedAt string           `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The event id is used as PK (budget ID) to guarantee 1 budget per event.
// The total is not stored.
type BudgetDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb DynamoAPI, tableName string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultBudgetsTableName)}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toBudgetItem(b)); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByEventID(ctx context.Context, eventID string) (entities.Budget, error) {
	// Domain rule: budget ID equals event ID. We can resolve by PK directly.
	it, ok, err := getByID[budgetItem](ctx, r.ddb, r.tableName, eventID)
	if err != nil || !ok {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func (r *BudgetDynamoRepository) UpdateStatusByEventID(ctx context.Context, eventID string, status entities.BudgetStatus) (entities.Budget, error) {
	it, ok, err := updateByID[budgetItem](ctx, r.ddb, r.tableName, eventID, map[string]types.AttributeValue{
		"status": stringValue(string(status)),
	})
	if err != nil || !ok {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func (r *BudgetDynamoRepository) UpdateItemsByEventID(
	ctx context.Context,
	eventID string,
	items []entities.BudgetItem,
	discount, surcharge decimal.Decimal,
) (entities.Budget, error) {
	lines, err := attributevalue.Marshal(toBudgetLines(items))
	if err != nil {
		return entities.Budget{}, err
	}
	it, ok, err := updateByID[budgetItem](ctx, r.ddb, r.tableName, eventID, map[string]types.AttributeValue{
		"items":     lines,
		"discount":  stringValue(discount.String()),
		"surcharge": stringValue(surcharge.String()),
	})
	if err != nil || !ok {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func toBudgetLines(items []entities.BudgetItem) []budgetLineItem {
	out := make([]budgetLineItem, 0, len(items))
	for _, it := range items {
		out = append(out, budgetLineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.String(),
		})
	}
	return out
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:        b.ID,
		EventID:   b.EventID,
		Items:     toBudgetLines(b.Items),
		Discount:  b.Discount.String(),
		Surcharge: b.Surcharge.String(),
		Status:    string(b.Status),
		CreatedAt: formatTimestamp(b.CreatedAt),
		UpdatedAt: formatTimestamp(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) (entities.Budget, error) {
	items := make([]entities.BudgetItem, 0, len(it.Items))
	for i, line := range it.Items {
		price, err := parseAmount(fmt.Sprintf("items[%d].unit_price", i), line.UnitPrice)
		if err != nil {
			return entities.Budget{}, fmt.Errorf("budget %s: %w", it.ID, err)
		}
		items = append(items, entities.BudgetItem{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   price,
		})
	}
	discount, err := parseAmount("discount", it.Discount)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("budget %s: %w", it.ID, err)
	}
	surcharge, err := parseAmount("surcharge", it.Surcharge)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("budget %s: %w", it.ID, err)
	}
	createdAt, err := parseTimestamp("created_at", it.CreatedAt)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("budget %s: %w", it.ID, err)
	}
	updatedAt, err := parseTimestamp("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("budget %s: %w", it.ID, err)
	}
	return entities.Budget{
		ID:        it.ID,
		EventID:   it.EventID,
		Items:     items,
		Discount:  discount,
		Surcharge: surcharge,
		Status:    entities.BudgetStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
