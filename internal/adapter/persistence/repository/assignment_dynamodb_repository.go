package repository

import (
	"context"
	"fmt"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultAssignmentsTableName  = "assignments"
	assignmentsEventIDIndex      = "event_id-index"
	assignmentsFreelancerIDIndex = "freelancer_id-index"
)

type assignmentItem struct {
	ID             string `dynamodbav:"id"`
	EventID        string `dynamodbav:"event_id"`
	FreelancerID   string `dynamodbav:"freelancer_id"`
	FreelancerName string `dynamodbav:"freelancer_name"`
	Role           string `dynamodbav:"role"`
	Value          string `dynamodbav:"value"`
	Bonus          string `dynamodbav:"bonus"`
	BonusReason    string `dynamodbav:"bonus_reason,omitempty"`
	PaymentStatus  string `dynamodbav:"payment_status"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// AssignmentDynamoRepository persists Assignment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: event_id-index (PK: event_id)
//   - GSI: freelancer_id-index (PK: freelancer_id)
//
// Amounts are stored as decimal strings; the bonus-aware total is derived on
// read and never stored.
type AssignmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAssignmentRepository = (*AssignmentDynamoRepository)(nil)

func NewAssignmentDynamoRepository(ddb DynamoAPI, tableName string) *AssignmentDynamoRepository {
	return &AssignmentDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultAssignmentsTableName)}
}

func (r *AssignmentDynamoRepository) Create(ctx context.Context, a entities.Assignment) (entities.Assignment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toAssignmentItem(a)); err != nil {
		return entities.Assignment{}, err
	}
	return a, nil
}

func (r *AssignmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Assignment, error) {
	it, ok, err := getByID[assignmentItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Assignment{}, err
	}
	return fromAssignmentItem(it)
}

func (r *AssignmentDynamoRepository) List(ctx context.Context) ([]entities.Assignment, error) {
	items, err := scanAll[assignmentItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return fromAssignmentItems(items)
}

func (r *AssignmentDynamoRepository) ListByEventID(ctx context.Context, eventID string) ([]entities.Assignment, error) {
	items, err := queryIndex[assignmentItem](ctx, r.ddb, r.tableName, assignmentsEventIDIndex, "event_id", eventID)
	if err != nil {
		return nil, err
	}
	return fromAssignmentItems(items)
}

func (r *AssignmentDynamoRepository) ListByFreelancerID(ctx context.Context, freelancerID string) ([]entities.Assignment, error) {
	items, err := queryIndex[assignmentItem](ctx, r.ddb, r.tableName, assignmentsFreelancerIDIndex, "freelancer_id", freelancerID)
	if err != nil {
		return nil, err
	}
	return fromAssignmentItems(items)
}

func (r *AssignmentDynamoRepository) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Assignment, error) {
	it, ok, err := updateByID[assignmentItem](ctx, r.ddb, r.tableName, id, map[string]types.AttributeValue{
		"payment_status": stringValue(string(status)),
	})
	if err != nil || !ok {
		return entities.Assignment{}, err
	}
	return fromAssignmentItem(it)
}

func (r *AssignmentDynamoRepository) UpdateBonus(ctx context.Context, id string, bonus decimal.Decimal, reason string) (entities.Assignment, error) {
	it, ok, err := updateByID[assignmentItem](ctx, r.ddb, r.tableName, id, map[string]types.AttributeValue{
		"bonus":        stringValue(bonus.String()),
		"bonus_reason": stringValue(reason),
	})
	if err != nil || !ok {
		return entities.Assignment{}, err
	}
	return fromAssignmentItem(it)
}

func toAssignmentItem(a entities.Assignment) assignmentItem {
	return assignmentItem{
		ID:             a.ID,
		EventID:        a.EventID,
		FreelancerID:   a.FreelancerID,
		FreelancerName: a.FreelancerName,
		Role:           string(a.Role),
		Value:          a.Value.String(),
		Bonus:          a.Bonus.String(),
		BonusReason:    a.BonusReason,
		PaymentStatus:  string(a.PaymentStatus),
		CreatedAt:      formatTimestamp(a.CreatedAt),
		UpdatedAt:      formatTimestamp(a.UpdatedAt),
	}
}

func fromAssignmentItem(it assignmentItem) (entities.Assignment, error) {
	value, err := parseAmount("value", it.Value)
	if err != nil {
		return entities.Assignment{}, fmt.Errorf("assignment %s: %w", it.ID, err)
	}
	bonus, err := parseAmount("bonus", it.Bonus)
	if err != nil {
		return entities.Assignment{}, fmt.Errorf("assignment %s: %w", it.ID, err)
	}
	createdAt, err := parseTimestamp("created_at", it.CreatedAt)
	if err != nil {
		return entities.Assignment{}, fmt.Errorf("assignment %s: %w", it.ID, err)
	}
	updatedAt, err := parseTimestamp("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.Assignment{}, fmt.Errorf("assignment %s: %w", it.ID, err)
	}
	return entities.Assignment{
		ID:             it.ID,
		EventID:        it.EventID,
		FreelancerID:   it.FreelancerID,
		FreelancerName: it.FreelancerName,
		Role:           entities.Role(it.Role),
		Value:          value,
		Bonus:          bonus,
		BonusReason:    it.BonusReason,
		PaymentStatus:  entities.PaymentStatus(it.PaymentStatus),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

func fromAssignmentItems(items []assignmentItem) ([]entities.Assignment, error) {
	out := make([]entities.Assignment, 0, len(items))
	for _, it := range items {
		a, err := fromAssignmentItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
