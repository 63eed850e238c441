package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/integration/persistence/model"
)

// timelessPaymentRepository implements the adapter.TimelessPaymentRepository interface.
type timelessPaymentRepository struct {
	db *gorm.DB
}

// NewTimelessPaymentRepository creates a new timeless payment repository instance.
func NewTimelessPaymentRepository(db *gorm.DB) adapter.TimelessPaymentRepository {
	return &timelessPaymentRepository{
		db: db,
	}
}

// Create creates a new timeless payment in the database.
func (r *timelessPaymentRepository) Create(ctx context.Context, payment *entity.TimelessPayment) error {
	paymentModel := model.TimelessPaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a timeless payment with its contribution history.
func (r *timelessPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimelessPayment, error) {
	var paymentModel model.TimelessPaymentModel
	result := r.db.WithContext(ctx).
		Preload("Contributions", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		Where("id = ?", id).
		First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewTimelessError(
				domainerror.ErrCodeTimelessNotFound,
				"timeless payment not found",
				domainerror.ErrTimelessNotFound,
			)
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindAll retrieves all timeless payments with their contributions.
func (r *timelessPaymentRepository) FindAll(ctx context.Context) ([]*entity.TimelessPayment, error) {
	var paymentModels []model.TimelessPaymentModel
	result := r.db.WithContext(ctx).
		Preload("Contributions", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		Order("created_at ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.TimelessPayment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// Update updates a timeless payment and upserts its contribution rows.
// History is append-only, so re-saving existing rows is harmless.
func (r *timelessPaymentRepository) Update(ctx context.Context, payment *entity.TimelessPayment) error {
	paymentModel := model.TimelessPaymentFromEntity(payment)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Contributions").Save(paymentModel).Error; err != nil {
			return err
		}
		if len(paymentModel.Contributions) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&paymentModel.Contributions).Error
	})
}

// Delete removes a timeless payment and its contribution history.
func (r *timelessPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.TimelessContributionModel{}, "timeless_payment_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TimelessPaymentModel{}, "id = ?", id).Error
	})
}

// ReplaceAll atomically replaces the stored set with the given payments.
func (r *timelessPaymentRepository) ReplaceAll(ctx context.Context, payments []*entity.TimelessPayment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.TimelessContributionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.TimelessPaymentModel{}).Error; err != nil {
			return err
		}
		for _, payment := range payments {
			if err := tx.Create(model.TimelessPaymentFromEntity(payment)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of stored timeless payments.
func (r *timelessPaymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.TimelessPaymentModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
