package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for identity persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrProfileNotFound is returned when a user has no profile row.
	ErrProfileNotFound = errors.New("user profile not found")
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrDuplicateDefaultAddress is returned when a second default would exist for (user, type).
	ErrDuplicateDefaultAddress = errors.New("default address already set")
)

// UserRepository manages accounts and profiles in the identity store.
type UserRepository interface {
	// CreateUser persists a user. Its profile is created in the same statement batch.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, id uint) (*entity.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindProfileByUserID retrieves the profile of a user.
	FindProfileByUserID(ctx context.Context, userID uint) (*entity.UserProfile, error)

	// UpdateProfile saves payment preferences.
	UpdateProfile(ctx context.Context, profile *entity.UserProfile) error

	// FindExistingUserIDs returns the subset of ids that exist.
	FindExistingUserIDs(ctx context.Context, ids []uint) ([]uint, error)
}

// AddressRepository manages user addresses in the identity store.
type AddressRepository interface {
	// CreateAddress persists a new address.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by ID.
	FindAddressByID(ctx context.Context, id uint) (*entity.Address, error)

	// FindDefaultAddress retrieves the default address of a type for a user.
	FindDefaultAddress(ctx context.Context, userID uint, addressType entity.AddressType) (*entity.Address, error)

	// ClearDefault unsets the default flag on the user's addresses of a type.
	ClearDefault(ctx context.Context, userID uint, addressType entity.AddressType) error

	// DeleteAddresses removes addresses by ID.
	DeleteAddresses(ctx context.Context, ids []uint) error

	// FindExistingAddressIDs returns the subset of ids that exist.
	FindExistingAddressIDs(ctx context.Context, ids []uint) ([]uint, error)
}
