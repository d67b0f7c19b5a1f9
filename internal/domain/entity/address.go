package entity

import "time"

// AddressType distinguishes shipping from billing addresses.
type AddressType string

const (
	AddressTypeShipping AddressType = "S"
	AddressTypeBilling  AddressType = "B"
)

// Address belongs to a user in the identity store.
// At most one address per (user, type) is the default.
type Address struct {
	ID               uint        `json:"id"`
	UserID           uint        `json:"user_id"`
	StreetAddress    string      `json:"street_address"`
	ApartmentAddress string      `json:"apartment_address"`
	Country          string      `json:"country"`
	Zip              string      `json:"zip"`
	Type             AddressType `json:"address_type"`
	IsDefault        bool        `json:"default"`
	CreatedAt        time.Time   `json:"created_at"`
}

// CopyAs returns an unsaved copy of the address with a different type.
func (a *Address) CopyAs(addressType AddressType) *Address {
	return &Address{
		UserID:           a.UserID,
		StreetAddress:    a.StreetAddress,
		ApartmentAddress: a.ApartmentAddress,
		Country:          a.Country,
		Zip:              a.Zip,
		Type:             addressType,
	}
}
