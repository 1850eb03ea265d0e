package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lines").Create(&dto).Error; err != nil {
			return err
		}
		return insertLines(tx, dto.Lines)
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the order row and replaces all of its lines.
//
// The row is only written when its stored version equals aggregate.Version();
// the stored version is then incremented. A stale aggregate gets an
// errs.VersionIsInvalidError and an unknown one an errs.ObjectNotFoundError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ? AND version = ?", dto.ID, dto.Version).
			Updates(map[string]any{
				"customer_id": dto.CustomerID,
				"status":      dto.Status,
				"total_value": dto.TotalValue,
				"version":     gorm.Expr("version + 1"),
				"updated_at":  time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return r.explainMissedUpdate(tx, aggregate)
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderLineDTO{}).Error; err != nil {
			return err
		}
		return insertLines(tx, dto.Lines)
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads an order with its lines in insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteDraftsNotUpdatedSince removes drafts last written before cutoff together with their lines.
func (r *GormOrderRepository) DeleteDraftsNotUpdatedSince(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stale := tx.Model(&OrderDTO{}).
			Select("id").
			Where("status = ? AND updated_at < ?", int(order.Draft), cutoff)

		if err := tx.Where("order_id IN (?)", stale).Delete(&OrderLineDTO{}).Error; err != nil {
			return err
		}

		result := tx.Where("status = ? AND updated_at < ?", int(order.Draft), cutoff).Delete(&OrderDTO{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

func (r *GormOrderRepository) explainMissedUpdate(tx *gorm.DB, aggregate *order.Order) error {
	var stored OrderDTO
	err := tx.Select("version").First(&stored, "id = ?", aggregate.ID().Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	if err != nil {
		return err
	}

	return errs.NewVersionIsInvalidErrorWithCause(
		"order",
		fmt.Errorf("expected %d, stored %d", aggregate.Version(), stored.Version),
	)
}

func insertLines(tx *gorm.DB, lines []OrderLineDTO) error {
	if len(lines) == 0 {
		return nil
	}
	return tx.Create(&lines).Error
}
