package localcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/floodwatch/floodwatch-sync-api/geo"
	"github.com/floodwatch/floodwatch-sync-api/localcache"
	"github.com/floodwatch/floodwatch-sync-api/models"
)

func openTestCache(t *testing.T) *localcache.Cache {
	t.Helper()
	c, err := localcache.Open(":memory:")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	return c
}

func TestReportCache_PutGetDelete(t *testing.T) {
	c := openTestCache(t)
	rc := c.Reports()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	report := models.Report{
		ID:             "r-1",
		OwnerID:        "u-1",
		Latitude:       29.43,
		Longitude:      -98.50,
		Description:    "street flooding at the low water crossing",
		PhotoRefs:      []string{"ref-a", "ref-b"},
		Status:         models.StatusPending,
		Severity:       "high",
		CreatedAt:      now,
		UpdatedAt:      now,
		ConfirmedCount: 2,
	}

	assert.NoError(t, rc.Put(ctx, report))

	got, err := rc.Get(ctx, "r-1")
	assert.NoError(t, err)
	assert.Equal(t, report.Description, got.Description)
	assert.Equal(t, []string{"ref-a", "ref-b"}, got.PhotoRefs)
	assert.Equal(t, 2, got.ConfirmedCount)

	assert.NoError(t, rc.Delete(ctx, "r-1"))

	_, err = rc.Get(ctx, "r-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestReportCache_PutOverwrites(t *testing.T) {
	c := openTestCache(t)
	rc := c.Reports()
	ctx := context.Background()

	report := models.Report{ID: "r-1", Description: "v1", Status: models.StatusPending}
	assert.NoError(t, rc.Put(ctx, report))

	report.Description = "v2"
	report.Status = models.StatusConfirmed
	assert.NoError(t, rc.Put(ctx, report))

	got, err := rc.Get(ctx, "r-1")
	assert.NoError(t, err)
	assert.Equal(t, "v2", got.Description)
	assert.Equal(t, models.StatusConfirmed, got.Status)

	all, err := rc.All(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestReportCache_QueryBox(t *testing.T) {
	c := openTestCache(t)
	rc := c.Reports()
	ctx := context.Background()

	inside := models.Report{ID: "near", Latitude: 29.43, Longitude: -98.50}
	outside := models.Report{ID: "far", Latitude: 29.60, Longitude: -98.90}
	assert.NoError(t, rc.Put(ctx, inside))
	assert.NoError(t, rc.Put(ctx, outside))

	box := geo.Bounds(geo.Coordinate{Latitude: 29.4241, Longitude: -98.4936}, 10)
	got, err := rc.QueryBox(ctx, box)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "near", got[0].ID)
}

func TestThreadCache_ByReport(t *testing.T) {
	c := openTestCache(t)
	tc := c.Threads()
	ctx := context.Background()

	assert.NoError(t, tc.Put(ctx, models.DiscussionThread{ThreadID: "t-1", ReportID: "r-1", CreatedBy: "u-1"}))
	assert.NoError(t, tc.Put(ctx, models.DiscussionThread{ThreadID: "t-2", ReportID: "r-1", CreatedBy: "u-2"}))
	assert.NoError(t, tc.Put(ctx, models.DiscussionThread{ThreadID: "t-3", ReportID: "r-2", CreatedBy: "u-1"}))

	threads, err := tc.ByReport(ctx, "r-1")
	assert.NoError(t, err)
	assert.Len(t, threads, 2)
}

func TestMessageCache_ThreadDeleteLeavesMessages(t *testing.T) {
	c := openTestCache(t)
	tc := c.Threads()
	mc := c.Messages()
	ctx := context.Background()

	assert.NoError(t, tc.Put(ctx, models.DiscussionThread{ThreadID: "t-1", ReportID: "r-1"}))
	assert.NoError(t, mc.Put(ctx, models.DiscussionMessage{MessageID: "m-1", ThreadID: "t-1", Text: "water rising"}))
	assert.NoError(t, mc.Put(ctx, models.DiscussionMessage{MessageID: "m-2", ThreadID: "t-1", Text: "avoid the bridge"}))

	// Thread lifecycle is independent of its messages: no cascade.
	assert.NoError(t, tc.Delete(ctx, "t-1"))

	messages, err := mc.ByThread(ctx, "t-1")
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestCache_Reset(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	assert.NoError(t, c.Reports().Put(ctx, models.Report{ID: "r-1"}))
	assert.NoError(t, c.Reset())

	all, err := c.Reports().All(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)
}
