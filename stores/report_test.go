package stores_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/floodwatch/floodwatch-sync-api/geo"
	cachemocks "github.com/floodwatch/floodwatch-sync-api/localcache/mocks"
	"github.com/floodwatch/floodwatch-sync-api/models"
	"github.com/floodwatch/floodwatch-sync-api/remote"
	remotemocks "github.com/floodwatch/floodwatch-sync-api/remote/mocks"
	"github.com/floodwatch/floodwatch-sync-api/stores"
)

var (
	sanAntonio = geo.Coordinate{Latitude: 29.4241, Longitude: -98.4936}

	reportNear = models.Report{ID: "near", Latitude: 29.43, Longitude: -98.50, Status: models.StatusPending}
	reportFar  = models.Report{ID: "far", Latitude: 29.60, Longitude: -98.90, Status: models.StatusPending}
)

func newReport(id string) models.Report {
	now := time.Now().UTC()
	return models.Report{
		ID:        id,
		OwnerID:   "owner-1",
		Latitude:  29.43,
		Longitude: -98.50,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestReportStore_Create_WriteThrough(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	report := newReport("r-1")

	rs.On("Set", mock.Anything, report).Return(nil)
	rc.On("Put", mock.Anything, report).Return(nil)

	created, err := s.Create(context.Background(), report)
	assert.NoError(t, err)
	assert.Equal(t, "r-1", created.ID)

	// After a successful create the record is served from the cache with no
	// network call.
	rc.On("Get", mock.Anything, "r-1").Return(&report, nil)

	got, err := s.GetByID(context.Background(), "r-1")
	assert.NoError(t, err)
	assert.Equal(t, report, *got)

	rs.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	rs.AssertExpectations(t)
	rc.AssertExpectations(t)
}

func TestReportStore_Create_RemoteFailureLeavesCacheUntouched(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	report := newReport("r-1")
	remoteErr := &models.RemoteError{Op: "set report", Err: errors.New("network down")}
	rs.On("Set", mock.Anything, report).Return(remoteErr)

	_, err := s.Create(context.Background(), report)

	var re *models.RemoteError
	assert.ErrorAs(t, err, &re)
	rc.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)

	// No orphan: a lookup afterwards finds nothing in either store.
	rc.On("Get", mock.Anything, "r-1").Return(nil, models.ErrNotFound)
	rs.On("GetByID", mock.Anything, "r-1").Return(nil, models.ErrNotFound)

	_, err = s.GetByID(context.Background(), "r-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestReportStore_Create_CacheFillFailureIsSwallowed(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	report := newReport("r-1")
	rs.On("Set", mock.Anything, report).Return(nil)
	rc.On("Put", mock.Anything, report).Return(&models.LocalCacheError{Op: "put report", Err: errors.New("disk full")})

	created, err := s.Create(context.Background(), report)
	assert.NoError(t, err)
	assert.NotNil(t, created)
}

func TestReportStore_Create_MissingID(t *testing.T) {
	s := stores.NewReportStore(&remotemocks.ReportStore{}, &cachemocks.ReportCache{})

	_, err := s.Create(context.Background(), models.Report{})
	assert.ErrorIs(t, err, stores.ErrMissingID)
}

func TestReportStore_GetByID_MissPopulatesCache(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	report := newReport("r-1")
	rc.On("Get", mock.Anything, "r-1").Return(nil, models.ErrNotFound)
	rs.On("GetByID", mock.Anything, "r-1").Return(&report, nil)
	rc.On("Put", mock.Anything, report).Return(nil)

	got, err := s.GetByID(context.Background(), "r-1")
	assert.NoError(t, err)
	assert.Equal(t, "r-1", got.ID)

	rc.AssertExpectations(t)
}

func TestReportStore_GetByID_BothStoresFailing(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	cacheErr := &models.LocalCacheError{Op: "get report", Err: errors.New("corrupt db")}
	remoteErr := &models.RemoteError{Op: "get report", Err: errors.New("timeout")}
	rc.On("Get", mock.Anything, "r-1").Return(nil, cacheErr)
	rs.On("GetByID", mock.Anything, "r-1").Return(nil, remoteErr)

	_, err := s.GetByID(context.Background(), "r-1")

	var lce *models.LocalCacheError
	var re *models.RemoteError
	assert.ErrorAs(t, err, &lce)
	assert.ErrorAs(t, err, &re)
}

func TestReportStore_Delete_RemoteFirst(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	rs.On("Delete", mock.Anything, "r-1").Return(nil)
	rc.On("Delete", mock.Anything, "r-1").Return(nil)

	assert.NoError(t, s.Delete(context.Background(), "r-1"))
	rc.AssertExpectations(t)
}

func TestReportStore_Delete_RemoteFailureKeepsLocalCopy(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	rs.On("Delete", mock.Anything, "r-1").Return(&models.RemoteError{Op: "delete report", Err: errors.New("offline")})

	err := s.Delete(context.Background(), "r-1")
	assert.Error(t, err)
	rc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestReportStore_CreateDeleteGet_NotFound(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)
	ctx := context.Background()

	report := newReport("r-1")
	rs.On("Set", mock.Anything, report).Return(nil).Once()
	rc.On("Put", mock.Anything, report).Return(nil).Once()
	rs.On("Delete", mock.Anything, "r-1").Return(nil).Once()
	rc.On("Delete", mock.Anything, "r-1").Return(nil).Once()
	rc.On("Get", mock.Anything, "r-1").Return(nil, models.ErrNotFound)
	rs.On("GetByID", mock.Anything, "r-1").Return(nil, models.ErrNotFound)

	_, err := s.Create(ctx, report)
	assert.NoError(t, err)
	assert.NoError(t, s.Delete(ctx, "r-1"))

	_, err = s.GetByID(ctx, "r-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestReportStore_ReportsInRadius_ExactFilter(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	// The cache's box scan over-includes: it hands back the ~25mi report
	// alongside the ~0.6mi one. Only the near report survives the exact
	// great-circle check.
	rc.On("QueryBox", mock.Anything, mock.Anything).Return([]models.Report{reportNear, reportFar}, nil)

	got, err := s.ReportsInRadius(context.Background(), sanAntonio, 10)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "near", got[0].ID)

	rs.AssertNotCalled(t, "QueryRange", mock.Anything, mock.Anything)
}

func TestReportStore_ReportsInRadiusRemote_FillsCache(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	rs.On("QueryRange", mock.Anything, mock.Anything).Return([]models.Report{reportNear, reportFar}, nil)
	rc.On("Put", mock.Anything, reportNear).Return(nil)
	rc.On("Put", mock.Anything, reportFar).Return(nil)

	got, err := s.ReportsInRadiusRemote(context.Background(), sanAntonio, 10)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "near", got[0].ID)

	rc.AssertExpectations(t)
}

func TestReportStore_Confirm_UsesAtomicIncrement(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	confirmed := newReport("r-1")
	confirmed.ConfirmedCount = 3

	rs.On("Increment", mock.Anything, "r-1", "confirmedCount", 1).Return(nil)
	rs.On("GetByID", mock.Anything, "r-1").Return(&confirmed, nil)
	rc.On("Put", mock.Anything, confirmed).Return(nil)

	assert.NoError(t, s.Confirm(context.Background(), "r-1"))

	// The full record is never rewritten: no lost-update window.
	rs.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	rs.AssertExpectations(t)
}

func TestReportStore_Deny_UsesAtomicIncrement(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	rs.On("Increment", mock.Anything, "r-1", "deniedCount", 1).Return(nil)
	rs.On("GetByID", mock.Anything, "r-1").Return(nil, &models.RemoteError{Op: "get report", Err: errors.New("flaky")})

	// The refresh after the increment is best-effort.
	assert.NoError(t, s.Deny(context.Background(), "r-1"))
}

func TestReportStore_ObserveInRadius_FiltersSnapshots(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	feed := &remotemocks.ChangeFeed{}
	feed.On("Close").Return()

	var pushed func([]models.Report)
	rs.On("Subscribe", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(feed, nil).
		Run(func(args mock.Arguments) {
			pushed = args.Get(2).(func([]models.Report))
		})

	sub, err := s.ObserveInRadius(context.Background(), sanAntonio, 10)
	assert.NoError(t, err)

	pushed([]models.Report{reportNear, reportFar})

	got := <-sub.Snapshots()
	assert.Len(t, got, 1)
	assert.Equal(t, "near", got[0].ID)

	sub.Close()
	feed.AssertCalled(t, "Close")
	feed.AssertNumberOfCalls(t, "Close", 1)
}

func TestReportStore_ObserveAll_SubscriptionErrorSurfaces(t *testing.T) {
	rs := &remotemocks.ReportStore{}
	rc := &cachemocks.ReportCache{}
	s := stores.NewReportStore(rs, rc)

	feed := &remotemocks.ChangeFeed{}
	feed.On("Close").Return()

	var fail func(error)
	rs.On("Subscribe", mock.Anything, remote.All(), mock.Anything, mock.Anything).
		Return(feed, nil).
		Run(func(args mock.Arguments) {
			fail = args.Get(3).(func(error))
		})

	sub, err := s.ObserveAll(context.Background())
	assert.NoError(t, err)
	defer sub.Close()

	fail(errors.New("stream torn down"))

	for range sub.Snapshots() {
		t.Fatal("no snapshot expected after terminal error")
	}

	var subErr *models.SubscriptionError
	assert.ErrorAs(t, sub.Err(), &subErr)
}
