package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/Jerdirlson/api-task/internal/cachestore"
	"github.com/Jerdirlson/api-task/internal/models"
	"gorm.io/gorm"
)

// FactionRepository defines CRUD operations for factions.
type FactionRepository interface {
	GetAll(ctx context.Context) ([]models.Faction, error)
	GetByID(ctx context.Context, id int64) (*models.Faction, error)
	Create(ctx context.Context, faction *models.Faction) error
	Update(ctx context.Context, id int64, faction *models.Faction) error
	Delete(ctx context.Context, id int64) error
}

// NewFactionRepository creates a FactionRepository backed by Postgres with a
// cache-aside layer under the "faction" key namespace.
func NewFactionRepository(db *gorm.DB, cache cachestore.Cache, ttl time.Duration, logger *slog.Logger) FactionRepository {
	return cachestore.New("faction", NewGormBacking[models.Faction](db), cache, ttl, logger)
}
