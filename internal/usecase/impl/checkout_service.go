package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// CheckoutServiceParams holds the dependencies of the checkout service, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Items      repository.ItemRepository
	Orders     repository.OrderRepository
	Coupons    repository.CouponRepository
	Addresses  repository.AddressRepository
	Publisher  service.EventPublisher
	Calculator *pricing.Calculator
	Logger     *slog.Logger
}

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	*orderAssembler

	txManager repository.TransactionManager
	addresses repository.AddressRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		orderAssembler: newOrderAssembler(params.Items, params.Orders, params.Coupons, params.Calculator, params.Logger),
		txManager:      params.TxManager,
		addresses:      params.Addresses,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCheckout returns the checkout page model, repairing dangling address ids first.
func (srv *checkoutService) GetCheckout(ctx context.Context, userID uint) (*usecase.CheckoutView, error) {
	order, err := srv.findOpenOrder(ctx, srv.orders, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domainerrors.ErrNoActiveOrder
	}

	if _, err := repairDanglingAddresses(ctx, srv.orders, srv.addresses, srv.logger, order); err != nil {
		return nil, err
	}

	if err := srv.hydrate(ctx, order); err != nil {
		return nil, err
	}

	view := &usecase.CheckoutView{Summary: srv.summarize(order)}

	if view.DefaultShipping, err = srv.defaultAddress(ctx, userID, entity.AddressTypeShipping); err != nil {
		return nil, err
	}
	if view.DefaultBilling, err = srv.defaultAddress(ctx, userID, entity.AddressTypeBilling); err != nil {
		return nil, err
	}

	return view, nil
}

// defaultAddress returns the user's default address of the type, or nil.
func (srv *checkoutService) defaultAddress(ctx context.Context, userID uint, addressType entity.AddressType) (*entity.Address, error) {
	address, err := srv.addresses.FindDefaultAddress(ctx, userID, addressType)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find default address")
	}

	return address, nil
}

// addressPlan is one resolved address slot: an existing row or a row to create.
type addressPlan struct {
	existing   *entity.Address
	create     *entity.Address
	setDefault bool
}

func (p *addressPlan) id() uint {
	if p.existing != nil {
		return p.existing.ID
	}

	return p.create.ID
}

// SubmitAddresses creates the addresses in the identity store, then links them
// to the open order in the transaction store. If the second step fails the
// new addresses are deleted again.
func (srv *checkoutService) SubmitAddresses(ctx context.Context, userID uint, input *usecase.CheckoutInput) (*usecase.OrderSummary, error) {
	if err := validatePaymentOption(input.PaymentOption); err != nil {
		return nil, err
	}

	order, err := srv.findOpenOrder(ctx, srv.orders, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domainerrors.ErrNoActiveOrder
	}

	// 1. Resolve both slots before writing anything
	shipping, billing, err := srv.planAddresses(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	// 2. Identity store: create the new addresses and move defaults
	created, err := srv.createAddresses(ctx, userID, shipping, billing)
	if err != nil {
		return nil, err
	}

	// 3. Transaction store: link the addresses to the order
	shippingID, billingID := shipping.id(), billing.id()
	if err := srv.orders.SetAddresses(ctx, order.ID, &shippingID, &billingID); err != nil {
		srv.compensateAddresses(ctx, order, created)

		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNoActiveOrder
		}

		return nil, errors.Wrap(err, "failed to link addresses to order")
	}

	order.ShippingAddressID = &shippingID
	order.BillingAddressID = &billingID

	srv.log(ctx).Info("Checkout addresses set",
		slog.Uint64("user_id", uint64(userID)),
		slog.Uint64("order_id", uint64(order.ID)),
		slog.Uint64("shipping_address_id", uint64(shippingID)),
		slog.Uint64("billing_address_id", uint64(billingID)),
	)
	publishOrderEvent(ctx, srv.publisher, srv.logger, constants.EventOrderAddressesSet, order)

	if err := srv.hydrate(ctx, order); err != nil {
		return nil, err
	}

	return srv.summarize(order), nil
}

func (srv *checkoutService) planAddresses(ctx context.Context, userID uint, input *usecase.CheckoutInput) (*addressPlan, *addressPlan, error) {
	fields := domainerrors.FieldErrors{}

	shipping := &addressPlan{}
	if input.UseDefaultShipping {
		address, err := srv.defaultAddress(ctx, userID, entity.AddressTypeShipping)
		if err != nil {
			return nil, nil, err
		}
		if address == nil {
			return nil, nil, domainerrors.ErrDefaultAddressNotFound.WithDetails("No default shipping address available")
		}
		shipping.existing = address
	} else {
		validateAddressInput("shipping", input.Shipping, fields)
		if input.Shipping != nil {
			shipping.create = newAddress(userID, entity.AddressTypeShipping, input.Shipping)
			shipping.setDefault = input.SetDefaultShipping
		}
	}

	billing := &addressPlan{}
	switch {
	case input.SameBillingAddress:
		if shipping.existing != nil {
			billing.create = shipping.existing.CopyAs(entity.AddressTypeBilling)
		} else if shipping.create != nil {
			billing.create = shipping.create.CopyAs(entity.AddressTypeBilling)
		}
		billing.setDefault = input.SetDefaultBilling
	case input.UseDefaultBilling:
		address, err := srv.defaultAddress(ctx, userID, entity.AddressTypeBilling)
		if err != nil {
			return nil, nil, err
		}
		if address == nil {
			return nil, nil, domainerrors.ErrDefaultAddressNotFound.WithDetails("No default billing address available")
		}
		billing.existing = address
	default:
		validateAddressInput("billing", input.Billing, fields)
		if input.Billing != nil {
			billing.create = newAddress(userID, entity.AddressTypeBilling, input.Billing)
			billing.setDefault = input.SetDefaultBilling
		}
	}

	if len(fields) > 0 {
		return nil, nil, domainerrors.NewValidationError(fields)
	}

	return shipping, billing, nil
}

// createAddresses writes the new rows in one identity store transaction.
func (srv *checkoutService) createAddresses(ctx context.Context, userID uint, plans ...*addressPlan) ([]uint, error) {
	var created []uint

	err := srv.txManager.InIdentityStore(ctx, func(repos repository.IdentityRepositoryFactory) error {
		addresses := repos.NewAddressRepository()
		created = created[:0]

		for _, plan := range plans {
			if plan.create == nil {
				continue
			}
			if plan.setDefault {
				if err := addresses.ClearDefault(ctx, userID, plan.create.Type); err != nil {
					return err
				}
				plan.create.IsDefault = true
			}
			if err := addresses.CreateAddress(ctx, plan.create); err != nil {
				return err
			}
			created = append(created, plan.create.ID)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save addresses")
	}

	return created, nil
}

// compensateAddresses removes addresses created for an order that could not be updated.
func (srv *checkoutService) compensateAddresses(ctx context.Context, order *entity.Order, created []uint) {
	if len(created) == 0 {
		return
	}

	if err := srv.addresses.DeleteAddresses(context.WithoutCancel(ctx), created); err != nil {
		logConsistencyFault(ctx, srv.logger, faultOrphanAddresses,
			slog.Uint64("order_id", uint64(order.ID)),
			slog.Uint64("user_id", uint64(order.UserID)),
			slog.Any("address_ids", created),
			slog.Any("error", err),
		)
	}
}

func newAddress(userID uint, addressType entity.AddressType, input *usecase.AddressInput) *entity.Address {
	return &entity.Address{
		UserID:           userID,
		StreetAddress:    strings.TrimSpace(input.StreetAddress),
		ApartmentAddress: strings.TrimSpace(input.ApartmentAddress),
		Country:          strings.ToUpper(strings.TrimSpace(input.Country)),
		Zip:              strings.TrimSpace(input.Zip),
		Type:             addressType,
	}
}

func validateAddressInput(prefix string, input *usecase.AddressInput, fields domainerrors.FieldErrors) {
	if input == nil {
		fields[prefix] = "required"

		return
	}
	if strings.TrimSpace(input.StreetAddress) == "" {
		fields[prefix+".street_address"] = "required"
	}
	if strings.TrimSpace(input.Zip) == "" {
		fields[prefix+".zip"] = "required"
	}
	if !isCountryCode(strings.TrimSpace(input.Country)) {
		fields[prefix+".country"] = "must be an ISO 3166 alpha-2 code"
	}
}

func isCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) || r > unicode.MaxASCII {
			return false
		}
	}

	return true
}

func validatePaymentOption(option string) error {
	switch option {
	case constants.PaymentOptionStripe:
		return nil
	case constants.PaymentOptionPaypal:
		return domainerrors.ErrUnsupportedPaymentOption
	default:
		return domainerrors.NewValidationError(domainerrors.FieldErrors{
			"payment_option": "must be stripe or paypal",
		})
	}
}
