package repository

import (
	"context"
	"fmt"
	"time"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/domain/schedule"
	"buffet_festas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEventsTableName = "events"

type eventItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Date      string `dynamodbav:"date"`
	Time      string `dynamodbav:"time,omitempty"`
	Location  string `dynamodbav:"location"`
	ClientID  string `dynamodbav:"client_id,omitempty"`
	Status    string `dynamodbav:"status"`
	Notes     string `dynamodbav:"notes,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EventDynamoRepository persists Event entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The calendar day is stored as YYYY-MM-DD and read back at midnight in the
// business timezone.
type EventDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	loc       *time.Location
}

var _ interfaces.IEventRepository = (*EventDynamoRepository)(nil)

func NewEventDynamoRepository(ddb DynamoAPI, tableName string, loc *time.Location) *EventDynamoRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &EventDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultEventsTableName),
		loc:       loc,
	}
}

func (r *EventDynamoRepository) Create(ctx context.Context, e entities.Event) (entities.Event, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toEventItem(e)); err != nil {
		return entities.Event{}, err
	}
	return e, nil
}

func (r *EventDynamoRepository) GetByID(ctx context.Context, id string) (entities.Event, error) {
	it, ok, err := getByID[eventItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Event{}, err
	}
	return r.fromEventItem(it)
}

func (r *EventDynamoRepository) List(ctx context.Context) ([]entities.Event, error) {
	items, err := scanAll[eventItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Event, 0, len(items))
	for _, it := range items {
		e, err := r.fromEventItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *EventDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.EventStatus) (entities.Event, error) {
	it, ok, err := updateByID[eventItem](ctx, r.ddb, r.tableName, id, map[string]types.AttributeValue{
		"status": stringValue(string(status)),
	})
	if err != nil || !ok {
		return entities.Event{}, err
	}
	return r.fromEventItem(it)
}

func toEventItem(e entities.Event) eventItem {
	return eventItem{
		ID:        e.ID,
		Title:     e.Title,
		Date:      e.Date.Format(schedule.DateLayout),
		Time:      e.Time,
		Location:  e.Location,
		ClientID:  e.ClientID,
		Status:    string(e.Status),
		Notes:     e.Notes,
		CreatedAt: formatTimestamp(e.CreatedAt),
		UpdatedAt: formatTimestamp(e.UpdatedAt),
	}
}

func (r *EventDynamoRepository) fromEventItem(it eventItem) (entities.Event, error) {
	date, err := schedule.ParseDate(it.Date, r.loc)
	if err != nil {
		return entities.Event{}, fmt.Errorf("event %s: %w", it.ID, err)
	}
	createdAt, err := parseTimestamp("created_at", it.CreatedAt)
	if err != nil {
		return entities.Event{}, fmt.Errorf("event %s: %w", it.ID, err)
	}
	updatedAt, err := parseTimestamp("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.Event{}, fmt.Errorf("event %s: %w", it.ID, err)
	}
	return entities.Event{
		ID:        it.ID,
		Title:     it.Title,
		Date:      date,
		Time:      it.Time,
		Location:  it.Location,
		ClientID:  it.ClientID,
		Status:    entities.EventStatus(it.Status),
		Notes:     it.Notes,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
