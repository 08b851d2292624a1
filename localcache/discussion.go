package localcache

// go generate: mockery --name ThreadCache
// go generate: mockery --name MessageCache

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/floodwatch/floodwatch-sync-api/models"
)

// ThreadCache is the local projection of the discussion thread collection.
type ThreadCache interface {
	Get(ctx context.Context, id string) (*models.DiscussionThread, error)
	Put(ctx context.Context, thread models.DiscussionThread) error
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]models.DiscussionThread, error)
	ByReport(ctx context.Context, reportID string) ([]models.DiscussionThread, error)
}

// MessageCache is the local projection of the discussion message collection.
type MessageCache interface {
	Get(ctx context.Context, id string) (*models.DiscussionMessage, error)
	Put(ctx context.Context, message models.DiscussionMessage) error
	Delete(ctx context.Context, id string) error
	ByThread(ctx context.Context, threadID string) ([]models.DiscussionMessage, error)
}

type threadCache struct {
	db *gorm.DB
}

func (c *threadCache) Get(ctx context.Context, id string) (*models.DiscussionThread, error) {
	var thread models.DiscussionThread
	err := c.db.WithContext(ctx).First(&thread, "thread_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, &models.LocalCacheError{Op: "get thread", Err: err}
	}
	return &thread, nil
}

func (c *threadCache) Put(ctx context.Context, thread models.DiscussionThread) error {
	err := c.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&thread).Error
	if err != nil {
		return &models.LocalCacheError{Op: "put thread", Err: err}
	}
	return nil
}

func (c *threadCache) Delete(ctx context.Context, id string) error {
	err := c.db.WithContext(ctx).Delete(&models.DiscussionThread{}, "thread_id = ?", id).Error
	if err != nil {
		return &models.LocalCacheError{Op: "delete thread", Err: err}
	}
	return nil
}

func (c *threadCache) All(ctx context.Context) ([]models.DiscussionThread, error) {
	threads := []models.DiscussionThread{}
	err := c.db.WithContext(ctx).Find(&threads).Error
	if err != nil {
		return nil, &models.LocalCacheError{Op: "list threads", Err: err}
	}
	return threads, nil
}

func (c *threadCache) ByReport(ctx context.Context, reportID string) ([]models.DiscussionThread, error) {
	threads := []models.DiscussionThread{}
	err := c.db.WithContext(ctx).Where("report_id = ?", reportID).Find(&threads).Error
	if err != nil {
		return nil, &models.LocalCacheError{Op: "query threads", Err: err}
	}
	return threads, nil
}

type messageCache struct {
	db *gorm.DB
}

func (c *messageCache) Get(ctx context.Context, id string) (*models.DiscussionMessage, error) {
	var message models.DiscussionMessage
	err := c.db.WithContext(ctx).First(&message, "message_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, &models.LocalCacheError{Op: "get message", Err: err}
	}
	return &message, nil
}

func (c *messageCache) Put(ctx context.Context, message models.DiscussionMessage) error {
	err := c.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&message).Error
	if err != nil {
		return &models.LocalCacheError{Op: "put message", Err: err}
	}
	return nil
}

func (c *messageCache) Delete(ctx context.Context, id string) error {
	err := c.db.WithContext(ctx).Delete(&models.DiscussionMessage{}, "message_id = ?", id).Error
	if err != nil {
		return &models.LocalCacheError{Op: "delete message", Err: err}
	}
	return nil
}

func (c *messageCache) ByThread(ctx context.Context, threadID string) ([]models.DiscussionMessage, error) {
	messages := []models.DiscussionMessage{}
	err := c.db.WithContext(ctx).Where("thread_id = ?", threadID).Find(&messages).Error
	if err != nil {
		return nil, &models.LocalCacheError{Op: "query messages", Err: err}
	}
	return messages, nil
}
