// Package catalog indexes scenario files into a local SQLite database so
// the CLI can list known scenarios without re-parsing them.
package catalog

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/scxtools/scx/pkg/scen"
)

// Entry is one indexed scenario file.
type Entry struct {
	ID           uint   `gorm:"primarykey"`
	Path         string `gorm:"uniqueIndex"`
	Edition      string
	Description  string
	MapWidth     uint32
	MapHeight    uint32
	PlayerCount  uint32
	TriggerCount int
	IndexedAt    time.Time
}

// Catalog wraps the SQLite index.
type Catalog struct {
	db *gorm.DB
}

// Open opens or creates the catalog database at path and migrates the
// schema.
func Open(path string) (*Catalog, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Close releases the underlying database connection.
func (c *Catalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Put records a scenario file, replacing any previous entry for the same
// path.
func (c *Catalog) Put(path string, s *scen.Scenario) error {
	entry := Entry{
		Path:         path,
		Edition:      s.Edition.String(),
		Description:  s.Header.Description,
		MapWidth:     s.Map.Width,
		MapHeight:    s.Map.Height,
		PlayerCount:  s.Header.PlayerCount,
		TriggerCount: len(s.Triggers),
		IndexedAt:    time.Now(),
	}
	return c.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"edition", "description", "map_width", "map_height",
			"player_count", "trigger_count", "indexed_at",
		}),
	}).Create(&entry).Error
}

// List returns all entries ordered by path.
func (c *Catalog) List() ([]Entry, error) {
	var entries []Entry
	if err := c.db.Order("path").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Get returns the entry for a path, or gorm.ErrRecordNotFound.
func (c *Catalog) Get(path string) (Entry, error) {
	var entry Entry
	err := c.db.Where("path = ?", path).First(&entry).Error
	return entry, err
}
