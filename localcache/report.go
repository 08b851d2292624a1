package localcache

// go generate: mockery --name ReportCache

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/floodwatch/floodwatch-sync-api/geo"
	"github.com/floodwatch/floodwatch-sync-api/models"
)

// ReportCache is the local projection of the report collection. All
// operations are local and never block on the network. Misses return
// models.ErrNotFound; anything else is a LocalCacheError the caller decides
// whether to surface.
type ReportCache interface {
	Get(ctx context.Context, id string) (*models.Report, error)
	Put(ctx context.Context, report models.Report) error
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]models.Report, error)
	QueryBox(ctx context.Context, box geo.Box) ([]models.Report, error)
}

type reportCache struct {
	db *gorm.DB
}

func (c *reportCache) Get(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	err := c.db.WithContext(ctx).First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, &models.LocalCacheError{Op: "get report", Err: err}
	}
	return &report, nil
}

func (c *reportCache) Put(ctx context.Context, report models.Report) error {
	err := c.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&report).Error
	if err != nil {
		return &models.LocalCacheError{Op: "put report", Err: err}
	}
	return nil
}

func (c *reportCache) Delete(ctx context.Context, id string) error {
	err := c.db.WithContext(ctx).Delete(&models.Report{}, "id = ?", id).Error
	if err != nil {
		return &models.LocalCacheError{Op: "delete report", Err: err}
	}
	return nil
}

func (c *reportCache) All(ctx context.Context) ([]models.Report, error) {
	reports := []models.Report{}
	err := c.db.WithContext(ctx).Find(&reports).Error
	if err != nil {
		return nil, &models.LocalCacheError{Op: "list reports", Err: err}
	}
	return reports, nil
}

// QueryBox returns every cached report inside the degree-space box. The box
// over-includes by construction; exact radius filtering happens upstream.
func (c *reportCache) QueryBox(ctx context.Context, box geo.Box) ([]models.Report, error) {
	reports := []models.Report{}
	err := c.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", box.LatMin, box.LatMax).
		Where("longitude BETWEEN ? AND ?", box.LonMin, box.LonMax).
		Find(&reports).Error
	if err != nil {
		return nil, &models.LocalCacheError{Op: "query reports", Err: err}
	}
	return reports, nil
}
