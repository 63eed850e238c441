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

// creditCardRepository implements the adapter.CreditCardRepository interface.
type creditCardRepository struct {
	db *gorm.DB
}

// NewCreditCardRepository creates a new credit card repository instance.
func NewCreditCardRepository(db *gorm.DB) adapter.CreditCardRepository {
	return &creditCardRepository{
		db: db,
	}
}

// Create creates a new credit card in the database.
func (r *creditCardRepository) Create(ctx context.Context, card *entity.CreditCard) error {
	cardModel := model.CreditCardFromEntity(card)
	result := r.db.WithContext(ctx).Create(cardModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a credit card by its ID.
func (r *creditCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	var cardModel model.CreditCardModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeCardNotFound,
				"credit card not found",
				domainerror.ErrCardNotFound,
			)
		}
		return nil, result.Error
	}
	return cardModel.ToEntity(), nil
}

// FindAll retrieves all credit cards.
func (r *creditCardRepository) FindAll(ctx context.Context) ([]*entity.CreditCard, error) {
	var cardModels []model.CreditCardModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&cardModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cards := make([]*entity.CreditCard, len(cardModels))
	for i, cm := range cardModels {
		cards[i] = cm.ToEntity()
	}
	return cards, nil
}

// Update updates an existing credit card in the database.
func (r *creditCardRepository) Update(ctx context.Context, card *entity.CreditCard) error {
	cardModel := model.CreditCardFromEntity(card)
	result := r.db.WithContext(ctx).Save(cardModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SaveBatch upserts a set of cards in one transaction.
func (r *creditCardRepository) SaveBatch(ctx context.Context, cards []*entity.CreditCard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, card := range cards {
			if err := tx.Save(model.CreditCardFromEntity(card)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a credit card from the database.
func (r *creditCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CreditCardModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ReplaceAll atomically replaces the stored set with the given cards.
func (r *creditCardRepository) ReplaceAll(ctx context.Context, cards []*entity.CreditCard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.CreditCardModel{}).Error; err != nil {
			return err
		}
		for _, card := range cards {
			if err := tx.Create(model.CreditCardFromEntity(card)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of stored cards.
func (r *creditCardRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CreditCardModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
