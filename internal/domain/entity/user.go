package entity

import "time"

// User is an account in the identity store. Other stores refer to it by ID only.
type User struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserProfile is created together with its User and holds payment preferences.
type UserProfile struct {
	ID                 uint   `json:"id"`
	UserID             uint   `json:"user_id"`
	PaymentCustomerRef string `json:"-"`
	OneClickPurchasing bool   `json:"one_click_purchasing"`
}

// HasSavedCard reports whether the gateway holds a reusable customer for this user.
func (p *UserProfile) HasSavedCard() bool {
	return p != nil && p.PaymentCustomerRef != ""
}
