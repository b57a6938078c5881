package returnrepo

import (
	"context"
	"errors"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/returns"
	"webshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReturnRepository implements ReturnRepository using GORM.
type GormReturnRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReturnRepository creates a new GORM return repository.
func NewGormReturnRepository(db *gorm.DB, tracker aggregateTracker) *GormReturnRepository {
	return &GormReturnRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new return and its product lines to the database.
func (r *GormReturnRepository) Add(ctx context.Context, aggregate *returns.Return) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing return to the database. Product lines are replaced
// wholesale since they carry no identity of their own.
func (r *GormReturnRepository) Update(ctx context.Context, aggregate *returns.Return) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	var count int64
	if err := r.db.WithContext(ctx).Model(&ReturnDTO{}).
		Where("id = ?", dto.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("return_id = ?", dto.ID).Delete(&ReturnItemDTO{}).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a return with its product lines by ID.
func (r *GormReturnRepository) Get(ctx context.Context, id kernel.UUID) (*returns.Return, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReturnDTO
	if err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("return", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
