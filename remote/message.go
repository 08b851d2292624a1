package remote

// go generate: mockery --name MessageStore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/floodwatch/floodwatch-sync-api/models"
)

const messageCollection = "discussion_messages"

// MessageStore contains the methods to use with the authoritative discussion message store
type MessageStore interface {
	GetByID(ctx context.Context, id string) (*models.DiscussionMessage, error)
	Set(ctx context.Context, message models.DiscussionMessage) error
	Delete(ctx context.Context, id string) error
	QueryRange(ctx context.Context, filter Filter) ([]models.DiscussionMessage, error)
	Increment(ctx context.Context, id, field string, delta int) error
	Subscribe(ctx context.Context, filter Filter, onSnapshot func([]models.DiscussionMessage), onErr func(error)) (ChangeFeed, error)
}

type messageStore struct {
	db DatabaseHelper
}

// NewMessageStore initializes a new instance of message store with the provided db connection
func NewMessageStore(db DatabaseHelper) MessageStore {
	return &messageStore{db: db}
}

func (c *messageStore) GetByID(ctx context.Context, id string) (*models.DiscussionMessage, error) {
	message := &models.DiscussionMessage{}
	err := c.db.Collection(messageCollection).FindOne(ctx, bson.M{"_id": id}).Decode(message)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, &models.RemoteError{Op: "get message", Err: err}
	}
	return message, nil
}

func (c *messageStore) Set(ctx context.Context, message models.DiscussionMessage) error {
	err := c.db.Collection(messageCollection).ReplaceOne(ctx, bson.M{"_id": message.MessageID}, message, upsert())
	if err != nil {
		return &models.RemoteError{Op: "set message", Err: err}
	}
	return nil
}

func (c *messageStore) Delete(ctx context.Context, id string) error {
	deleted, err := c.db.Collection(messageCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &models.RemoteError{Op: "delete message", Err: err}
	}
	if deleted == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (c *messageStore) QueryRange(ctx context.Context, filter Filter) ([]models.DiscussionMessage, error) {
	cursor, err := c.db.Collection(messageCollection).Find(ctx, filter.bson())
	if err != nil {
		return nil, &models.RemoteError{Op: "query messages", Err: err}
	}
	messages := []models.DiscussionMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, &models.RemoteError{Op: "decode messages", Err: err}
	}
	return messages, nil
}

// Increment atomically bumps a counter field such as upvotes.
func (c *messageStore) Increment(ctx context.Context, id, field string, delta int) error {
	matched, err := c.db.Collection(messageCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return &models.RemoteError{Op: "increment message", Err: err}
	}
	if matched == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (c *messageStore) Subscribe(ctx context.Context, filter Filter, onSnapshot func([]models.DiscussionMessage), onErr func(error)) (ChangeFeed, error) {
	stream, err := c.db.Collection(messageCollection).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, &models.RemoteError{Op: "subscribe messages", Err: err}
	}
	query := func(ctx context.Context) ([]models.DiscussionMessage, error) {
		return c.QueryRange(ctx, filter)
	}
	return newSnapshotPump(ctx, stream, query, onSnapshot, onErr), nil
}
