package gormstore

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// refundRepository implements the repository.RefundRepository interface.
type refundRepository struct {
	db *gorm.DB
}

// NewRefundRepository is the constructor for refundRepository.
func NewRefundRepository(db *gorm.DB) repository.RefundRepository {
	return &refundRepository{
		db: db,
	}
}

// CreateRefund persists a refund request.
func (repo *refundRepository) CreateRefund(ctx context.Context, refund *entity.Refund) error {
	refundM := &model.RefundModel{
		OrderID:  refund.OrderID,
		Reason:   refund.Reason,
		Email:    refund.Email,
		Accepted: refund.Accepted,
	}

	if err := repo.db.WithContext(ctx).Create(refundM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required refund information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create refund")
	}

	refund.ID = refundM.ID
	refund.CreatedAt = refundM.CreatedAt

	return nil
}

// CountRefundsByOrder counts refund requests for an order.
func (repo *refundRepository) CountRefundsByOrder(ctx context.Context, orderID uint) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RefundModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count refunds")
	}

	return count, nil
}
