package remote

// go generate: mockery --name ThreadStore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/floodwatch/floodwatch-sync-api/models"
)

const threadCollection = "discussion_threads"

// ThreadStore contains the methods to use with the authoritative discussion thread store
type ThreadStore interface {
	GetByID(ctx context.Context, id string) (*models.DiscussionThread, error)
	Set(ctx context.Context, thread models.DiscussionThread) error
	Delete(ctx context.Context, id string) error
	QueryRange(ctx context.Context, filter Filter) ([]models.DiscussionThread, error)
}

type threadStore struct {
	db DatabaseHelper
}

// NewThreadStore initializes a new instance of thread store with the provided db connection
func NewThreadStore(db DatabaseHelper) ThreadStore {
	return &threadStore{db: db}
}

func (c *threadStore) GetByID(ctx context.Context, id string) (*models.DiscussionThread, error) {
	thread := &models.DiscussionThread{}
	err := c.db.Collection(threadCollection).FindOne(ctx, bson.M{"_id": id}).Decode(thread)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, &models.RemoteError{Op: "get thread", Err: err}
	}
	return thread, nil
}

func (c *threadStore) Set(ctx context.Context, thread models.DiscussionThread) error {
	err := c.db.Collection(threadCollection).ReplaceOne(ctx, bson.M{"_id": thread.ThreadID}, thread, upsert())
	if err != nil {
		return &models.RemoteError{Op: "set thread", Err: err}
	}
	return nil
}

func (c *threadStore) Delete(ctx context.Context, id string) error {
	deleted, err := c.db.Collection(threadCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &models.RemoteError{Op: "delete thread", Err: err}
	}
	if deleted == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (c *threadStore) QueryRange(ctx context.Context, filter Filter) ([]models.DiscussionThread, error) {
	cursor, err := c.db.Collection(threadCollection).Find(ctx, filter.bson())
	if err != nil {
		return nil, &models.RemoteError{Op: "query threads", Err: err}
	}
	threads := []models.DiscussionThread{}
	if err := cursor.All(ctx, &threads); err != nil {
		return nil, &models.RemoteError{Op: "decode threads", Err: err}
	}
	return threads, nil
}
