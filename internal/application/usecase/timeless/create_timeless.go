package timeless

import (
	"context"
	"fmt"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

// CreateTimelessInput represents the input for timeless payment creation.
type CreateTimelessInput struct {
	Name        string
	TotalAmount float64
}

// CreateTimelessOutput represents the output of timeless payment creation.
type CreateTimelessOutput struct {
	Payment *entity.TimelessPayment
}

// CreateTimelessUseCase handles timeless payment creation.
type CreateTimelessUseCase struct {
	timelessRepo adapter.TimelessPaymentRepository
}

// NewCreateTimelessUseCase creates a new CreateTimelessUseCase instance.
func NewCreateTimelessUseCase(timelessRepo adapter.TimelessPaymentRepository) *CreateTimelessUseCase {
	return &CreateTimelessUseCase{
		timelessRepo: timelessRepo,
	}
}

// Execute performs the timeless payment creation.
func (uc *CreateTimelessUseCase) Execute(ctx context.Context, input CreateTimelessInput) (*CreateTimelessOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewTimelessError(
			domainerror.ErrCodeMissingTimelessFields,
			"name is required",
			nil,
		)
	}
	if input.TotalAmount <= 0 {
		return nil, domainerror.NewTimelessError(
			domainerror.ErrCodeInvalidTotalAmount,
			"total amount must be greater than zero",
			domainerror.ErrInvalidTotalAmount,
		)
	}

	count, err := uc.timelessRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count timeless payments: %w", err)
	}

	payment := entity.NewTimelessPayment(
		input.Name,
		input.TotalAmount,
		entity.PickColor(entity.TimelessColors, int(count)),
	)

	if err := uc.timelessRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create timeless payment: %w", err)
	}

	return &CreateTimelessOutput{Payment: payment}, nil
}
