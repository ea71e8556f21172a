package ordercyclerepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ordercycle"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderCycleRepository implements OrderCycleRepository using GORM.
type GormOrderCycleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderCycleRepository creates a new GORM order cycle repository.
func NewGormOrderCycleRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderCycleRepository {
	return &GormOrderCycleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order cycle to the database. The coordinator enterprise
// must already exist; only its foreign key is written.
func (r *GormOrderCycleRepository) Add(ctx context.Context, aggregate *ordercycle.OrderCycle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order cycle to the database.
func (r *GormOrderCycleRepository) Update(ctx context.Context, aggregate *ordercycle.OrderCycle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderCycleDTO{}).
		Select("*").Omit(clause.Associations, "id").
		Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order cycle by ID with its coordinator.
func (r *GormOrderCycleRepository) Get(ctx context.Context, id kernel.UUID) (*ordercycle.OrderCycle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderCycleDTO
	err := r.db.WithContext(ctx).Preload("Coordinator").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderCycle", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetAllDueToOpen retrieves upcoming cycles whose window start has passed.
func (r *GormOrderCycleRepository) GetAllDueToOpen(ctx context.Context, now time.Time) ([]*ordercycle.OrderCycle, error) {
	return r.getAll(ctx, "status = ? AND opens_at <= ?", ordercycle.Upcoming.String(), now)
}

// GetAllDueToClose retrieves open cycles whose window end has passed.
func (r *GormOrderCycleRepository) GetAllDueToClose(ctx context.Context, now time.Time) ([]*ordercycle.OrderCycle, error) {
	return r.getAll(ctx, "status = ? AND closes_at <= ?", ordercycle.Open.String(), now)
}

func (r *GormOrderCycleRepository) getAll(ctx context.Context, query string, args ...any) ([]*ordercycle.OrderCycle, error) {
	var dtos []OrderCycleDTO
	err := r.db.WithContext(ctx).Preload("Coordinator").
		Where(query, args...).Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	cycles := make([]*ordercycle.OrderCycle, 0, len(dtos))
	for _, dto := range dtos {
		cycle, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, cycle)
	}

	return cycles, nil
}
