package repository

import (
	"context"
	"fmt"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase/interfaces"
)

const defaultFreelancersTableName = "freelancers"

type freelancerItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Phone          string `dynamodbav:"phone"`
	DefaultRole    string `dynamodbav:"default_role"`
	TelegramChatID string `dynamodbav:"telegram_chat_id,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// FreelancerDynamoRepository persists Freelancer entities in DynamoDB (PK: id).
type FreelancerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFreelancerRepository = (*FreelancerDynamoRepository)(nil)

func NewFreelancerDynamoRepository(ddb DynamoAPI, tableName string) *FreelancerDynamoRepository {
	return &FreelancerDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultFreelancersTableName)}
}

func (r *FreelancerDynamoRepository) Create(ctx context.Context, f entities.Freelancer) (entities.Freelancer, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toFreelancerItem(f)); err != nil {
		return entities.Freelancer{}, err
	}
	return f, nil
}

func (r *FreelancerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Freelancer, error) {
	it, ok, err := getByID[freelancerItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Freelancer{}, err
	}
	return fromFreelancerItem(it)
}

func (r *FreelancerDynamoRepository) List(ctx context.Context) ([]entities.Freelancer, error) {
	items, err := scanAll[freelancerItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Freelancer, 0, len(items))
	for _, it := range items {
		f, err := fromFreelancerItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func toFreelancerItem(f entities.Freelancer) freelancerItem {
	return freelancerItem{
		ID:             f.ID,
		Name:           f.Name,
		Phone:          f.Phone,
		DefaultRole:    string(f.DefaultRole),
		TelegramChatID: f.TelegramChatID,
		CreatedAt:      formatTimestamp(f.CreatedAt),
	}
}

func fromFreelancerItem(it freelancerItem) (entities.Freelancer, error) {
	createdAt, err := parseTimestamp("created_at", it.CreatedAt)
	if err != nil {
		return entities.Freelancer{}, fmt.Errorf("freelancer %s: %w", it.ID, err)
	}
	return entities.Freelancer{
		ID:             it.ID,
		Name:           it.Name,
		Phone:          it.Phone,
		DefaultRole:    entities.Role(it.DefaultRole),
		TelegramChatID: it.TelegramChatID,
		CreatedAt:      createdAt,
	}, nil
}
