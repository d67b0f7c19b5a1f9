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

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// CreateCoupon persists a new coupon.
func (repo *couponRepository) CreateCoupon(ctx context.Context, coupon *entity.Coupon) error {
	couponM := &model.CouponModel{Code: coupon.Code, Amount: coupon.Amount}

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCoupon
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid coupon")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID

	return nil
}

// FindCouponByCode retrieves a coupon by code.
func (repo *couponRepository) FindCouponByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	return repo.findCoupon(ctx, "code = ?", code)
}

// FindCouponByID retrieves a coupon by ID.
func (repo *couponRepository) FindCouponByID(ctx context.Context, id uint) (*entity.Coupon, error) {
	return repo.findCoupon(ctx, "id = ?", id)
}

func (repo *couponRepository) findCoupon(ctx context.Context, query string, arg any) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}

	return &entity.Coupon{ID: couponM.ID, Code: couponM.Code, Amount: couponM.Amount}, nil
}
