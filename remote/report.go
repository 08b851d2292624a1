package remote

// go generate: mockery --name ReportStore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/floodwatch/floodwatch-sync-api/models"
)

const reportCollection = "reports"

// ReportStore contains the methods to use with the authoritative report store
type ReportStore interface {
	GetByID(ctx context.Context, id string) (*models.Report, error)
	Set(ctx context.Context, report models.Report) error
	Delete(ctx context.Context, id string) error
	QueryRange(ctx context.Context, filter Filter) ([]models.Report, error)
	Increment(ctx context.Context, id, field string, delta int) error
	Subscribe(ctx context.Context, filter Filter, onSnapshot func([]models.Report), onErr func(error)) (ChangeFeed, error)
}

type reportStore struct {
	db DatabaseHelper
}

// NewReportStore initializes a new instance of report store with the provided db connection
func NewReportStore(db DatabaseHelper) ReportStore {
	return &reportStore{db: db}
}

func (c *reportStore) GetByID(ctx context.Context, id string) (*models.Report, error) {
	report := &models.Report{}
	err := c.db.Collection(reportCollection).FindOne(ctx, bson.M{"_id": id}).Decode(report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, &models.RemoteError{Op: "get report", Err: err}
	}
	return report, nil
}

// Set writes the full record, replacing any previous version. Last writer
// wins at the field level; counters must go through Increment instead.
func (c *reportStore) Set(ctx context.Context, report models.Report) error {
	err := c.db.Collection(reportCollection).ReplaceOne(ctx, bson.M{"_id": report.ID}, report, upsert())
	if err != nil {
		return &models.RemoteError{Op: "set report", Err: err}
	}
	return nil
}

func (c *reportStore) Delete(ctx context.Context, id string) error {
	deleted, err := c.db.Collection(reportCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &models.RemoteError{Op: "delete report", Err: err}
	}
	if deleted == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (c *reportStore) QueryRange(ctx context.Context, filter Filter) ([]models.Report, error) {
	cursor, err := c.db.Collection(reportCollection).Find(ctx, filter.bson())
	if err != nil {
		return nil, &models.RemoteError{Op: "query reports", Err: err}
	}
	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, &models.RemoteError{Op: "decode reports", Err: err}
	}
	return reports, nil
}

// Increment atomically adds delta to a counter field, sidestepping the
// read-modify-write race that a full-record Set would have under concurrent
// voters.
func (c *reportStore) Increment(ctx context.Context, id, field string, delta int) error {
	matched, err := c.db.Collection(reportCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return &models.RemoteError{Op: "increment report", Err: err}
	}
	if matched == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (c *reportStore) Subscribe(ctx context.Context, filter Filter, onSnapshot func([]models.Report), onErr func(error)) (ChangeFeed, error) {
	stream, err := c.db.Collection(reportCollection).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, &models.RemoteError{Op: "subscribe reports", Err: err}
	}
	query := func(ctx context.Context) ([]models.Report, error) {
		return c.QueryRange(ctx, filter)
	}
	return newSnapshotPump(ctx, stream, query, onSnapshot, onErr), nil
}
