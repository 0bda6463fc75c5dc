package database

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"evently/config"
	"evently/internal/models"
)

// OpenFunc establishes a ready-to-use database handle.
type OpenFunc func() (*gorm.DB, error)

// Cache hands out a single shared database connection per process. The
// first caller opens it; concurrent first callers join the same in-flight
// attempt instead of opening their own. A failed attempt leaves the cache
// empty so the next call retries.
type Cache struct {
	open  OpenFunc
	group singleflight.Group

	mu   sync.RWMutex
	conn *gorm.DB
}

func New(open OpenFunc) *Cache {
	return &Cache{open: open}
}

// Get returns the cached connection, opening it on first use.
func (c *Cache) Get() (*gorm.DB, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn != nil {
		return conn, nil
	}

	v, err, _ := c.group.Do("conn", func() (any, error) {
		// A finished flight may have populated the cache while this
		// caller was waiting to enter.
		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()
		if conn != nil {
			return conn, nil
		}

		db, err := c.open()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.conn = db
		c.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*gorm.DB), nil
}

// Opener builds the production OpenFunc: connect, verify, migrate. gorm
// opens eagerly and pings the pool, so statements never queue waiting for
// an unready connection.
func Opener(cfg *config.Config, logger *slog.Logger) OpenFunc {
	return func() (*gorm.DB, error) {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
			TranslateError: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := models.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}

		logger.Info("database connection established")
		return db, nil
	}
}
