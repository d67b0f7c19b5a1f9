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

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreatePayment persists a charge record.
func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		ChargeID: payment.ChargeID,
		UserID:   payment.UserID,
		Amount:   payment.Amount,
	}

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// FindPaymentByID retrieves a payment by ID.
func (repo *paymentRepository) FindPaymentByID(ctx context.Context, id uint) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindUnreferencedPayments returns payments no order points at.
func (repo *paymentRepository) FindUnreferencedPayments(ctx context.Context) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM orders WHERE orders.payment_id = payments.id)").
		Order("id ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unreferenced payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:        data.ID,
		ChargeID:  data.ChargeID,
		UserID:    data.UserID,
		Amount:    data.Amount,
		CreatedAt: data.CreatedAt,
	}
}
