package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create creates a new payment in the database.
func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.PaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a payment by its ID.
func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentModel model.PaymentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodePaymentNotFound,
				"payment not found",
				domainerror.ErrPaymentNotFound,
			)
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindAll retrieves all payments ordered by due date.
func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	var paymentModels []model.PaymentModel
	result := r.db.WithContext(ctx).Order("due_date ASC").Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// Update updates an existing payment in the database.
func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.PaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Save(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SaveBatch upserts a set of payments in one transaction.
func (r *paymentRepository) SaveBatch(ctx context.Context, payments []*entity.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, payment := range payments {
			if err := tx.Save(model.PaymentFromEntity(payment)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a payment from the database.
func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ReplaceAll atomically replaces the stored set with the given payments.
func (r *paymentRepository) ReplaceAll(ctx context.Context, payments []*entity.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.PaymentModel{}).Error; err != nil {
			return err
		}
		for _, payment := range payments {
			if err := tx.Create(model.PaymentFromEntity(payment)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of stored payments.
func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.PaymentModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
