// Package localcache persists a disposable, rebuildable projection of the
// authoritative store in an embedded sqlite database. It must answer without
// touching the network, so the sync layer stays serviceable offline.
package localcache

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/floodwatch/floodwatch-sync-api/models"
)

// Cache owns the embedded database and hands out the per-entity stores.
type Cache struct {
	db *gorm.DB
}

// Open opens (or creates) the cache database at path and migrates the entity
// tables. Use ":memory:" for an ephemeral cache.
func Open(path string) (*Cache, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	c := &Cache{db: db}
	if err := c.migrate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cache) migrate() error {
	err := c.db.AutoMigrate(
		&models.Report{},
		&models.DiscussionThread{},
		&models.DiscussionMessage{},
	)
	if err != nil {
		return fmt.Errorf("migrate cache db: %w", err)
	}
	return nil
}

// Reset drops every cached projection and recreates the empty tables. The
// remote store is authoritative, so this is always safe.
func (c *Cache) Reset() error {
	err := c.db.Migrator().DropTable(
		&models.Report{},
		&models.DiscussionThread{},
		&models.DiscussionMessage{},
	)
	if err != nil {
		return fmt.Errorf("reset cache db: %w", err)
	}
	return c.migrate()
}

// Reports returns the report projection store.
func (c *Cache) Reports() ReportCache {
	return &reportCache{db: c.db}
}

// Threads returns the discussion thread projection store.
func (c *Cache) Threads() ThreadCache {
	return &threadCache{db: c.db}
}

// Messages returns the discussion message projection store.
func (c *Cache) Messages() MessageCache {
	return &messageCache{db: c.db}
}
