package model

// All returns one zero value of every persistence model.
func All() []any {
	return []any{
		&ItemModel{},
		&UserModel{},
		&UserProfileModel{},
		&AddressModel{},
		&OrderModel{},
		&OrderItemModel{},
		&OrderItemLinkModel{},
		&CouponModel{},
		&PaymentModel{},
		&RefundModel{},
	}
}
