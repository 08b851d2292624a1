package stores

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/floodwatch/floodwatch-sync-api/localcache"
	"github.com/floodwatch/floodwatch-sync-api/models"
	"github.com/floodwatch/floodwatch-sync-api/remote"
)

// ThreadStore coordinates discussion threads across the remote store and the
// local cache.
type ThreadStore struct {
	Remote remote.ThreadStore
	Cache  localcache.ThreadCache
}

// NewThreadStore initializes a thread coordinator over the given stores.
func NewThreadStore(r remote.ThreadStore, c localcache.ThreadCache) *ThreadStore {
	return &ThreadStore{Remote: r, Cache: c}
}

// Create writes the thread remote-first with a best-effort cache fill.
func (s *ThreadStore) Create(ctx context.Context, thread models.DiscussionThread) (*models.DiscussionThread, error) {
	if thread.ThreadID == "" {
		return nil, ErrMissingID
	}
	if err := s.Remote.Set(ctx, thread); err != nil {
		return nil, err
	}
	if err := s.Cache.Put(ctx, thread); err != nil {
		zap.S().Warnw("thread cache fill failed", "threadId", thread.ThreadID, "error", err)
	}
	return &thread, nil
}

// GetByID reads through the cache, falling back to the remote store on miss.
func (s *ThreadStore) GetByID(ctx context.Context, id string) (*models.DiscussionThread, error) {
	cached, cacheErr := s.Cache.Get(ctx, id)
	if cacheErr == nil {
		return cached, nil
	}
	if !errors.Is(cacheErr, models.ErrNotFound) {
		zap.S().Warnw("thread cache read failed", "threadId", id, "error", cacheErr)
	}

	thread, err := s.Remote.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(cacheErr, models.ErrNotFound) {
			return nil, errors.Join(cacheErr, err)
		}
		return nil, err
	}

	if err := s.Cache.Put(ctx, *thread); err != nil {
		zap.S().Warnw("thread cache fill failed", "threadId", id, "error", err)
	}
	return thread, nil
}

// Delete removes the thread remote-first. Messages are left in place: cascade
// is a product decision the stores deliberately do not take.
func (s *ThreadStore) Delete(ctx context.Context, id string) error {
	if err := s.Remote.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Cache.Delete(ctx, id); err != nil {
		zap.S().Warnw("thread cache purge failed", "threadId", id, "error", err)
	}
	return nil
}

// ByReport lists the threads attached to a report. Listings prefer the
// authoritative store for completeness and fall back to the cached projection
// when the network is unavailable.
func (s *ThreadStore) ByReport(ctx context.Context, reportID string) ([]models.DiscussionThread, error) {
	threads, err := s.Remote.QueryRange(ctx, remote.Eq("reportId", reportID))
	if err != nil {
		var remoteErr *models.RemoteError
		if errors.As(err, &remoteErr) {
			zap.S().Warnw("thread listing falling back to cache", "reportId", reportID, "error", err)
			return s.Cache.ByReport(ctx, reportID)
		}
		return nil, err
	}

	for _, t := range threads {
		if err := s.Cache.Put(ctx, t); err != nil {
			zap.S().Warnw("thread cache fill failed", "threadId", t.ThreadID, "error", err)
			break
		}
	}
	return threads, nil
}
