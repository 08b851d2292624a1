package stores

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/floodwatch/floodwatch-sync-api/localcache"
	"github.com/floodwatch/floodwatch-sync-api/models"
	"github.com/floodwatch/floodwatch-sync-api/remote"
	"github.com/floodwatch/floodwatch-sync-api/stream"
)

// MessageStore coordinates discussion messages across the remote store and
// the local cache.
type MessageStore struct {
	Remote remote.MessageStore
	Cache  localcache.MessageCache
}

// NewMessageStore initializes a message coordinator over the given stores.
func NewMessageStore(r remote.MessageStore, c localcache.MessageCache) *MessageStore {
	return &MessageStore{Remote: r, Cache: c}
}

// Create writes the message remote-first with a best-effort cache fill.
func (s *MessageStore) Create(ctx context.Context, message models.DiscussionMessage) (*models.DiscussionMessage, error) {
	if message.MessageID == "" {
		return nil, ErrMissingID
	}
	if err := s.Remote.Set(ctx, message); err != nil {
		return nil, err
	}
	if err := s.Cache.Put(ctx, message); err != nil {
		zap.S().Warnw("message cache fill failed", "messageId", message.MessageID, "error", err)
	}
	return &message, nil
}

// GetByID reads through the cache, falling back to the remote store on miss.
func (s *MessageStore) GetByID(ctx context.Context, id string) (*models.DiscussionMessage, error) {
	cached, cacheErr := s.Cache.Get(ctx, id)
	if cacheErr == nil {
		return cached, nil
	}
	if !errors.Is(cacheErr, models.ErrNotFound) {
		zap.S().Warnw("message cache read failed", "messageId", id, "error", cacheErr)
	}

	message, err := s.Remote.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(cacheErr, models.ErrNotFound) {
			return nil, errors.Join(cacheErr, err)
		}
		return nil, err
	}

	if err := s.Cache.Put(ctx, *message); err != nil {
		zap.S().Warnw("message cache fill failed", "messageId", id, "error", err)
	}
	return message, nil
}

// Delete removes the message remote-first, then purges the cached copy.
func (s *MessageStore) Delete(ctx context.Context, id string) error {
	if err := s.Remote.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Cache.Delete(ctx, id); err != nil {
		zap.S().Warnw("message cache purge failed", "messageId", id, "error", err)
	}
	return nil
}

// ByThread lists a thread's messages, remote-first with cache fallback.
func (s *MessageStore) ByThread(ctx context.Context, threadID string) ([]models.DiscussionMessage, error) {
	messages, err := s.Remote.QueryRange(ctx, remote.Eq("threadId", threadID))
	if err != nil {
		var remoteErr *models.RemoteError
		if errors.As(err, &remoteErr) {
			zap.S().Warnw("message listing falling back to cache", "threadId", threadID, "error", err)
			return s.Cache.ByThread(ctx, threadID)
		}
		return nil, err
	}

	for _, m := range messages {
		if err := s.Cache.Put(ctx, m); err != nil {
			zap.S().Warnw("message cache fill failed", "messageId", m.MessageID, "error", err)
			break
		}
	}
	return messages, nil
}

// Upvote bumps the message's vote counter via an atomic remote increment.
func (s *MessageStore) Upvote(ctx context.Context, id string) error {
	if err := s.Remote.Increment(ctx, id, "upvotes", 1); err != nil {
		return err
	}
	message, err := s.Remote.GetByID(ctx, id)
	if err != nil {
		zap.S().Debugw("message cache refresh skipped", "messageId", id, "error", err)
		return nil
	}
	if err := s.Cache.Put(ctx, *message); err != nil {
		zap.S().Warnw("message cache fill failed", "messageId", id, "error", err)
	}
	return nil
}

// DeleteByThread removes every message in a thread. It exists as an explicit
// operation so the product can decide when thread deletion should cascade;
// nothing calls it implicitly.
func (s *MessageStore) DeleteByThread(ctx context.Context, threadID string) error {
	messages, err := s.Remote.QueryRange(ctx, remote.Eq("threadId", threadID))
	if err != nil {
		return err
	}
	for _, m := range messages {
		if err := s.Delete(ctx, m.MessageID); err != nil && !errors.Is(err, models.ErrNotFound) {
			return err
		}
	}
	return nil
}

// ObserveThread opens a live subscription over a thread's messages.
func (s *MessageStore) ObserveThread(ctx context.Context, threadID string) (*stream.Subscription[models.DiscussionMessage], error) {
	return stream.Subscribe(func(onSnapshot func([]models.DiscussionMessage), onErr func(error)) (stream.Feed, error) {
		return s.Remote.Subscribe(ctx, remote.Eq("threadId", threadID), onSnapshot, onErr)
	})
}
