package enterpriserepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/enterprise"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEnterpriseRepository implements EnterpriseRepository using GORM.
type GormEnterpriseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEnterpriseRepository creates a new GORM enterprise repository.
func NewGormEnterpriseRepository(db *gorm.DB, tracker aggregateTracker) *GormEnterpriseRepository {
	return &GormEnterpriseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new enterprise to the database.
func (r *GormEnterpriseRepository) Add(ctx context.Context, aggregate *enterprise.Enterprise) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing enterprise to the database.
func (r *GormEnterpriseRepository) Update(ctx context.Context, aggregate *enterprise.Enterprise) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).Select("*").Omit("id").
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

// Get retrieves an enterprise by ID.
func (r *GormEnterpriseRepository) Get(ctx context.Context, id kernel.UUID) (*enterprise.Enterprise, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EnterpriseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("enterprise", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetAllByOwner retrieves all enterprises owned by the given actor identity.
// An owner of nothing gets an empty slice, not an error.
func (r *GormEnterpriseRepository) GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*enterprise.Enterprise, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EnterpriseDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "owner_id = ?", ownerID.Bytes()).Error; err != nil {
		return nil, err
	}

	enterprises := make([]*enterprise.Enterprise, 0, len(dtos))
	for _, dto := range dtos {
		e, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		enterprises = append(enterprises, e)
	}

	return enterprises, nil
}
