package caserepo

import (
	"context"
	"errors"

	"webshop/internal/core/domain/model/casefile"
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCaseRepository implements CaseRepository using GORM.
type GormCaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCaseRepository creates a new GORM case repository.
func NewGormCaseRepository(db *gorm.DB, tracker aggregateTracker) *GormCaseRepository {
	return &GormCaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new case to the database.
func (r *GormCaseRepository) Add(ctx context.Context, aggregate *casefile.Case) error {
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

// Update saves an existing case to the database. Save is used instead of
// Updates so that clearing nullable columns like resolved_at sticks.
func (r *GormCaseRepository) Update(ctx context.Context, aggregate *casefile.Case) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	var count int64
	if err := r.db.WithContext(ctx).Model(&CaseDTO{}).
		Where("id = ?", dto.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a case by ID.
func (r *GormCaseRepository) Get(ctx context.Context, id kernel.UUID) (*casefile.Case, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CaseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("case", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInOpenStatus retrieves all cases still waiting for triage.
func (r *GormCaseRepository) GetAllInOpenStatus(ctx context.Context) ([]*casefile.Case, error) {
	var dtos []CaseDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status = ?", casefile.StatusOpen).Error; err != nil {
		return nil, err
	}

	cases := make([]*casefile.Case, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	return cases, nil
}
