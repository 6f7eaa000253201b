package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/Jerdirlson/api-task/internal/cachestore"
	"github.com/Jerdirlson/api-task/internal/models"
	"gorm.io/gorm"
)

// CharacterRepository defines CRUD operations for characters. Every read and
// write goes through the cache-aside store; nothing bypasses it.
type CharacterRepository interface {
	GetAll(ctx context.Context) ([]models.Character, error)
	GetByID(ctx context.Context, id int64) (*models.Character, error)
	Create(ctx context.Context, character *models.Character) error
	Update(ctx context.Context, id int64, character *models.Character) error
	Delete(ctx context.Context, id int64) error
}

// NewCharacterRepository creates a CharacterRepository backed by Postgres
// with a cache-aside layer under the "character" key namespace.
func NewCharacterRepository(db *gorm.DB, cache cachestore.Cache, ttl time.Duration, logger *slog.Logger) CharacterRepository {
	return cachestore.New("character", NewGormBacking[models.Character](db), cache, ttl, logger)
}
