// Package stores holds the sync coordinators: one per entity, each composing
// the authoritative remote store with its local cache projection. Writes go
// remote-first with a best-effort cache fill; reads prefer the cache and fall
// back to the remote store on a miss. The coordinators keep no entity state
// of their own.
package stores

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/floodwatch/floodwatch-sync-api/geo"
	"github.com/floodwatch/floodwatch-sync-api/localcache"
	"github.com/floodwatch/floodwatch-sync-api/models"
	"github.com/floodwatch/floodwatch-sync-api/remote"
	"github.com/floodwatch/floodwatch-sync-api/stream"
)

// ErrMissingID rejects writes whose entity has no client-assigned identity.
var ErrMissingID = errors.New("entity id is required")

// ReportStore coordinates report reads, writes and live queries across the
// remote store and the local cache.
type ReportStore struct {
	Remote remote.ReportStore
	Cache  localcache.ReportCache
}

// NewReportStore initializes a report coordinator over the given stores.
func NewReportStore(r remote.ReportStore, c localcache.ReportCache) *ReportStore {
	return &ReportStore{Remote: r, Cache: c}
}

// Create writes the report remote-first. The cache fill is best-effort: a
// local failure is logged, never surfaced. On remote failure the cache is
// left untouched so no local-only orphan exists.
func (s *ReportStore) Create(ctx context.Context, report models.Report) (*models.Report, error) {
	if report.ID == "" {
		return nil, ErrMissingID
	}
	if err := s.Remote.Set(ctx, report); err != nil {
		return nil, err
	}
	if err := s.Cache.Put(ctx, report); err != nil {
		zap.S().Warnw("report cache fill failed", "id", report.ID, "error", err)
	}
	return &report, nil
}

// Update has the same write-through order as Create. Full-record replace,
// last writer wins; counters must go through Confirm/Deny.
func (s *ReportStore) Update(ctx context.Context, report models.Report) (*models.Report, error) {
	if report.ID == "" {
		return nil, ErrMissingID
	}
	if err := s.Remote.Set(ctx, report); err != nil {
		return nil, err
	}
	if err := s.Cache.Put(ctx, report); err != nil {
		zap.S().Warnw("report cache fill failed", "id", report.ID, "error", err)
	}
	return &report, nil
}

// GetByID reads through the cache: a hit returns without any network call, a
// miss consults the remote store and populates the cache on the way back.
func (s *ReportStore) GetByID(ctx context.Context, id string) (*models.Report, error) {
	cached, cacheErr := s.Cache.Get(ctx, id)
	if cacheErr == nil {
		return cached, nil
	}
	if !errors.Is(cacheErr, models.ErrNotFound) {
		zap.S().Warnw("report cache read failed", "id", id, "error", cacheErr)
	}

	report, err := s.Remote.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(cacheErr, models.ErrNotFound) {
			// Both stores are unusable; surface both causes.
			return nil, errors.Join(cacheErr, err)
		}
		return nil, err
	}

	if err := s.Cache.Put(ctx, *report); err != nil {
		zap.S().Warnw("report cache fill failed", "id", id, "error", err)
	}
	return report, nil
}

// Delete must succeed against the remote store before the local copy is
// purged, so a failed delete never forgets a record the remote side still
// considers live.
func (s *ReportStore) Delete(ctx context.Context, id string) error {
	if err := s.Remote.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Cache.Delete(ctx, id); err != nil {
		zap.S().Warnw("report cache purge failed", "id", id, "error", err)
	}
	return nil
}

// Confirm registers a confirmation vote via an atomic remote increment, then
// refreshes the cached copy best-effort.
func (s *ReportStore) Confirm(ctx context.Context, id string) error {
	if err := s.Remote.Increment(ctx, id, "confirmedCount", 1); err != nil {
		return err
	}
	s.refresh(ctx, id)
	return nil
}

// Deny registers a denial vote via an atomic remote increment.
func (s *ReportStore) Deny(ctx context.Context, id string) error {
	if err := s.Remote.Increment(ctx, id, "deniedCount", 1); err != nil {
		return err
	}
	s.refresh(ctx, id)
	return nil
}

func (s *ReportStore) refresh(ctx context.Context, id string) {
	report, err := s.Remote.GetByID(ctx, id)
	if err != nil {
		zap.S().Debugw("report cache refresh skipped", "id", id, "error", err)
		return
	}
	if err := s.Cache.Put(ctx, *report); err != nil {
		zap.S().Warnw("report cache fill failed", "id", id, "error", err)
	}
}

// ReportsInRadius answers "within N miles" from the local cache: a coarse
// bounding-box scan narrowed by an exact great-circle check. This is the
// network-independent default path.
func (s *ReportStore) ReportsInRadius(ctx context.Context, center geo.Coordinate, radiusMiles float64) ([]models.Report, error) {
	box := geo.Bounds(center, radiusMiles)
	candidates, err := s.Cache.QueryBox(ctx, box)
	if err != nil {
		return nil, err
	}
	return withinRadius(candidates, center, radiusMiles), nil
}

// ReportsInRadiusRemote is the freshness-over-availability variant: the same
// two-phase filter run against the authoritative store. Results are folded
// back into the cache.
func (s *ReportStore) ReportsInRadiusRemote(ctx context.Context, center geo.Coordinate, radiusMiles float64) ([]models.Report, error) {
	box := geo.Bounds(center, radiusMiles)
	candidates, err := s.Remote.QueryRange(ctx, remote.BoxFilter(box))
	if err != nil {
		return nil, err
	}
	for _, r := range candidates {
		if err := s.Cache.Put(ctx, r); err != nil {
			zap.S().Warnw("report cache fill failed", "id", r.ID, "error", err)
			break
		}
	}
	return withinRadius(candidates, center, radiusMiles), nil
}

// ObserveAll opens a live subscription over every report.
func (s *ReportStore) ObserveAll(ctx context.Context) (*stream.Subscription[models.Report], error) {
	return stream.Subscribe(func(onSnapshot func([]models.Report), onErr func(error)) (stream.Feed, error) {
		return s.Remote.Subscribe(ctx, remote.All(), onSnapshot, onErr)
	})
}

// ObserveInRadius opens a live subscription whose snapshots are exact-filtered
// by distance before delivery, so radius observers never see the bounding
// box's false positives.
func (s *ReportStore) ObserveInRadius(ctx context.Context, center geo.Coordinate, radiusMiles float64) (*stream.Subscription[models.Report], error) {
	box := geo.Bounds(center, radiusMiles)
	return stream.Subscribe(func(onSnapshot func([]models.Report), onErr func(error)) (stream.Feed, error) {
		filtered := func(reports []models.Report) {
			onSnapshot(withinRadius(reports, center, radiusMiles))
		}
		return s.Remote.Subscribe(ctx, remote.BoxFilter(box), filtered, onErr)
	})
}

func withinRadius(reports []models.Report, center geo.Coordinate, radiusMiles float64) []models.Report {
	out := []models.Report{}
	for _, r := range reports {
		loc := geo.Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
		if geo.Distance(loc, center) <= radiusMiles {
			out = append(out, r)
		}
	}
	return out
}
