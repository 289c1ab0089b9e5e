package repository

import (
	"context"
	"fmt"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase/interfaces"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone"`
	Notes     string `dynamodbav:"notes,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB (PK: id).
type ClientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultClientsTableName)}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toClientItem(c)); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	it, ok, err := getByID[clientItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return fromClientItem(it)
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	items, err := scanAll[clientItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		c, err := fromClientItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: formatTimestamp(c.CreatedAt),
	}
}

func fromClientItem(it clientItem) (entities.Client, error) {
	createdAt, err := parseTimestamp("created_at", it.CreatedAt)
	if err != nil {
		return entities.Client{}, fmt.Errorf("client %s: %w", it.ID, err)
	}
	return entities.Client{
		ID:        it.ID,
		Name:      it.Name,
		Phone:     it.Phone,
		Notes:     it.Notes,
		CreatedAt: createdAt,
	}, nil
}
