package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/Jerdirlson/api-task/internal/cachestore"
	"github.com/Jerdirlson/api-task/internal/models"
	"gorm.io/gorm"
)

// EquipmentRepository defines CRUD operations for equipment.
type EquipmentRepository interface {
	GetAll(ctx context.Context) ([]models.Equipment, error)
	GetByID(ctx context.Context, id int64) (*models.Equipment, error)
	Create(ctx context.Context, equipment *models.Equipment) error
	Update(ctx context.Context, id int64, equipment *models.Equipment) error
	Delete(ctx context.Context, id int64) error
}

// NewEquipmentRepository creates an EquipmentRepository backed by Postgres
// with a cache-aside layer under the "equipment" key namespace.
func NewEquipmentRepository(db *gorm.DB, cache cachestore.Cache, ttl time.Duration, logger *slog.Logger) EquipmentRepository {
	return cachestore.New("equipment", NewGormBacking[models.Equipment](db), cache, ttl, logger)
}
