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

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDefaultAddress
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uint) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindDefaultAddress retrieves the default address of a type for a user.
func (repo *addressRepository) FindDefaultAddress(ctx context.Context, userID uint, addressType entity.AddressType) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND address_type = ? AND is_default = ?", userID, string(addressType), true).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find default address")
	}

	return toAddressDomain(&addressM), nil
}

// ClearDefault unsets the default flag on the user's addresses of a type.
func (repo *addressRepository) ClearDefault(ctx context.Context, userID uint, addressType entity.AddressType) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ? AND address_type = ? AND is_default = ?", userID, string(addressType), true).
		Update("is_default", false).Error; err != nil {
		return errors.Wrap(err, "failed to clear default address")
	}

	return nil
}

// DeleteAddresses removes addresses by ID. Missing IDs are ignored.
func (repo *addressRepository) DeleteAddresses(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.AddressModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete addresses")
	}

	return nil
}

// FindExistingAddressIDs returns the subset of ids that exist.
func (repo *addressRepository) FindExistingAddressIDs(ctx context.Context, ids []uint) ([]uint, error) {
	existing := []uint{}
	if len(ids) == 0 {
		return existing, nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error; err != nil {
		return nil, errors.Wrap(err, "failed to check address IDs")
	}

	return existing, nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:               data.ID,
		UserID:           data.UserID,
		StreetAddress:    data.StreetAddress,
		ApartmentAddress: data.ApartmentAddress,
		Country:          data.Country,
		Zip:              data.Zip,
		Type:             entity.AddressType(data.AddressType),
		IsDefault:        data.IsDefault,
		CreatedAt:        data.CreatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:               data.ID,
		UserID:           data.UserID,
		StreetAddress:    data.StreetAddress,
		ApartmentAddress: data.ApartmentAddress,
		Country:          data.Country,
		Zip:              data.Zip,
		AddressType:      string(data.Type),
		IsDefault:        data.IsDefault,
		CreatedAt:        data.CreatedAt,
	}
}
