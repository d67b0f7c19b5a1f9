package model

import (
	"time"

	"storefront/internal/infra/persistence/dbrouter"

	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table in the identity store.
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100)"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RouteMeta places users in the identity store.
func (UserModel) RouteMeta() dbrouter.Meta {
	return dbrouter.Meta{App: "auth", Model: "user"}
}

// AfterCreate creates the user's profile on the same connection, so a user
// inserted inside a transaction always commits together with its profile.
func (u *UserModel) AfterCreate(tx *gorm.DB) error {
	return tx.Create(&UserProfileModel{UserID: u.ID}).Error
}

// UserProfileModel mirrors the 'user_profiles' table. UserID references users.id.
type UserProfileModel struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement"`
	UserID             uint   `gorm:"not null;uniqueIndex"`
	PaymentCustomerRef string `gorm:"type:varchar(50)"`
	OneClickPurchasing bool   `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// RouteMeta places profiles in the identity store.
func (UserProfileModel) RouteMeta() dbrouter.Meta {
	return dbrouter.Meta{App: "userprofile", Model: "userprofile"}
}

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	UserID           uint   `gorm:"not null;index"`
	StreetAddress    string `gorm:"type:varchar(100);not null"`
	ApartmentAddress string `gorm:"type:varchar(100)"`
	Country          string `gorm:"type:varchar(2);not null"`
	Zip              string `gorm:"type:varchar(100);not null"`
	AddressType      string `gorm:"type:varchar(1);not null"`
	IsDefault        bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// RouteMeta places addresses in the identity store.
func (AddressModel) RouteMeta() dbrouter.Meta {
	return dbrouter.Meta{App: "address", Model: "address"}
}
