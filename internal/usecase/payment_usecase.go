package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"comanda/internal/domain/cart"
	"comanda/internal/domain/entities"
	"comanda/internal/domain/reconciler"
	"comanda/internal/domain/split"
	"comanda/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentMethod       = errors.New("invalid payment method")
	ErrPaymentMethodUnavailable   = errors.New("payment method not available at this restaurant")
	ErrGuestAlreadyPaid           = errors.New("guest already paid")
	ErrNothingToPay               = errors.New("guest share is zero")
	ErrPaymentNotApproved         = errors.New("payment not approved")
	ErrPaymentGatewayNoRedirect   = errors.New("payment gateway returned no redirect url")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// TransferDetails is shown to a guest paying by bank transfer.
type TransferDetails struct {
	Alias  string
	CBU    string
	Holder string
}

type PaymentStart struct {
	Guest       entities.Guest
	Method      entities.PaymentMethod
	Amount      decimal.Decimal
	RedirectURL string
	Transfer    *TransferDetails
}

// CheckoutState is the payment picture of the open bill for one guest.
type CheckoutState struct {
	Guest       entities.Guest
	OrderID     string
	OrderStatus entities.OrderStatus
	Shares      []entities.BillShare
	GrandTotal  decimal.Decimal
	Remaining   decimal.Decimal
	Next        reconciler.Step
}

// IPaymentUseCase settles guest shares.
//
// Payment truth only comes from outside: the gateway return (card/wallet) or
// a staff confirmation (cash/transfer). Once every required share is paid the
// order is closed as PAGADO.
type IPaymentUseCase interface {
	Start(ctx context.Context, tableID, guestID string, method entities.PaymentMethod, returnURL string) (PaymentStart, error)
	HandleReturn(ctx context.Context, tableID, guestID, status string) (CheckoutState, error)
	ConfirmByStaff(ctx context.Context, tableID, guestID string, method entities.PaymentMethod) (CheckoutState, error)
	Checkout(ctx context.Context, tableID, guestID string) (CheckoutState, error)
}

type PaymentUseCase struct {
	restaurants      interfaces.IRestaurantRepository
	menus            interfaces.IMenuRepository
	orders           interfaces.IOrderRepository
	guests           interfaces.IGuestRepository
	items            interfaces.IOrderItemRepository
	gateway          interfaces.IPaymentGateway
	publisher        interfaces.IEventPublisher
	defaultReturnURL string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	restaurants interfaces.IRestaurantRepository,
	menus interfaces.IMenuRepository,
	orders interfaces.IOrderRepository,
	guests interfaces.IGuestRepository,
	items interfaces.IOrderItemRepository,
	gateway interfaces.IPaymentGateway,
	publisher interfaces.IEventPublisher,
	defaultReturnURL string,
) *PaymentUseCase {
	return &PaymentUseCase{
		restaurants:      restaurants,
		menus:            menus,
		orders:           orders,
		guests:           guests,
		items:            items,
		gateway:          gateway,
		publisher:        publisher,
		defaultReturnURL: defaultReturnURL,
	}
}

type bill struct {
	table  entities.Table
	order  entities.Order
	guest  entities.Guest
	guests []entities.Guest
	shares []entities.BillShare
	total  decimal.Decimal
}

func (u *PaymentUseCase) Start(ctx context.Context, tableID, guestID string, method entities.PaymentMethod, returnURL string) (PaymentStart, error) {
	if !method.Valid() {
		return PaymentStart{}, ErrInvalidPaymentMethod
	}
	b, err := u.loadBill(ctx, tableID, guestID)
	if err != nil {
		return PaymentStart{}, err
	}
	if !b.order.IsOpen() {
		return PaymentStart{}, ErrOrderClosed
	}
	if b.guest.Paid {
		return PaymentStart{}, ErrGuestAlreadyPaid
	}
	amount := shareOf(b.shares, b.guest.ID)
	if !amount.IsPositive() {
		return PaymentStart{}, ErrNothingToPay
	}

	cfg, err := u.restaurants.GetPaymentConfig(ctx, b.table.RestaurantID)
	if err != nil {
		return PaymentStart{}, err
	}
	zap.L().Info("[payment][usecase] start",
		zap.String("order_id", b.order.ID),
		zap.String("guest_id", b.guest.ID),
		zap.String("method", string(method)),
		zap.String("amount", amount.String()),
	)

	out := PaymentStart{Method: method, Amount: amount}
	switch method {
	case entities.PaymentMethodMercadoPago:
		if u.gateway == nil {
			return PaymentStart{}, ErrPaymentMethodUnavailable
		}
		redirect, err := u.gateway.CreatePreference(ctx, interfaces.PreferenceRequest{
			Amount:            amount,
			Title:             fmt.Sprintf("Mesa %s - %s", b.table.Number, b.guest.Name),
			ExternalReference: b.order.ID + ":" + b.guest.ID,
			ReturnURL:         u.returnURL(returnURL, b.table.ID, b.guest.ID),
			AccessToken:       cfg.MercadoPagoAccessToken,
		})
		if err != nil {
			zap.L().Error("[payment][usecase] payment gateway failed", zap.String("guest_id", b.guest.ID), zap.Error(err))
			return PaymentStart{}, mapGatewayError(err)
		}
		if strings.TrimSpace(redirect) == "" {
			return PaymentStart{}, ErrPaymentGatewayNoRedirect
		}
		out.RedirectURL = redirect
	case entities.PaymentMethodTransferencia:
		if cfg.TransferAlias == "" && cfg.TransferCBU == "" {
			return PaymentStart{}, ErrPaymentMethodUnavailable
		}
		out.Transfer = &TransferDetails{Alias: cfg.TransferAlias, CBU: cfg.TransferCBU, Holder: cfg.TransferHolder}
	case entities.PaymentMethodEfectivo:
		if cfg.RestaurantID != "" && !cfg.AcceptsCash {
			return PaymentStart{}, ErrPaymentMethodUnavailable
		}
	}

	guest, err := u.guests.UpdatePayment(ctx, b.guest.ID, false, method)
	if err != nil {
		return PaymentStart{}, err
	}
	publish(ctx, u.publisher, entities.GuestEvent(guest, nowUTC()))
	out.Guest = guest
	return out, nil
}

// HandleReturn records the gateway redirect back. Only status=success (or
// approved) marks the guest as paid; repeating it is harmless.
func (u *PaymentUseCase) HandleReturn(ctx context.Context, tableID, guestID, status string) (CheckoutState, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "success", "approved":
	default:
		zap.L().Info("[payment][usecase] gateway return not approved",
			zap.String("guest_id", guestID),
			zap.String("status", status),
		)
		return CheckoutState{}, ErrPaymentNotApproved
	}
	return u.markPaid(ctx, tableID, guestID, entities.PaymentMethodMercadoPago)
}

// ConfirmByStaff is the waiter confirming a cash or transfer payment.
func (u *PaymentUseCase) ConfirmByStaff(ctx context.Context, tableID, guestID string, method entities.PaymentMethod) (CheckoutState, error) {
	if !method.Valid() {
		return CheckoutState{}, ErrInvalidPaymentMethod
	}
	return u.markPaid(ctx, tableID, guestID, method)
}

func (u *PaymentUseCase) Checkout(ctx context.Context, tableID, guestID string) (CheckoutState, error) {
	b, err := u.loadBill(ctx, tableID, guestID)
	if err != nil {
		return CheckoutState{}, err
	}
	return b.state(), nil
}

func (u *PaymentUseCase) markPaid(ctx context.Context, tableID, guestID string, method entities.PaymentMethod) (CheckoutState, error) {
	b, err := u.loadBill(ctx, tableID, guestID)
	if err != nil {
		return CheckoutState{}, err
	}
	if b.guest.Paid {
		// A previous attempt may have paid the guest but failed to close.
		if b.order.IsOpen() {
			return u.settle(ctx, b)
		}
		return b.state(), nil
	}
	if !b.order.IsOpen() {
		return CheckoutState{}, ErrOrderClosed
	}

	guest, err := u.guests.UpdatePayment(ctx, b.guest.ID, true, method)
	if err != nil {
		zap.L().Error("[payment][usecase] mark paid failed", zap.String("guest_id", b.guest.ID), zap.Error(err))
		return CheckoutState{}, err
	}
	zap.L().Info("[payment][usecase] guest paid",
		zap.String("order_id", b.order.ID),
		zap.String("guest_id", guest.ID),
		zap.String("method", string(method)),
	)
	b.guest = guest
	for i := range b.guests {
		if b.guests[i].ID == guest.ID {
			b.guests[i] = guest
		}
	}
	publish(ctx, u.publisher, entities.GuestEvent(guest, nowUTC()))
	return u.settle(ctx, b)
}

// settle closes the order once every required share is paid.
func (u *PaymentUseCase) settle(ctx context.Context, b bill) (CheckoutState, error) {
	r := reconciler.New()
	r.Seed(b.guests)
	if r.AllRequiredPaid(b.shares) {
		closed, err := u.closeOrder(ctx, b.order)
		if err != nil {
			return CheckoutState{}, err
		}
		b.order = closed
	}
	return b.state(), nil
}

// closeOrder moves the order to PAGADO, re-reading it once if a concurrent
// write bumped the version.
func (u *PaymentUseCase) closeOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	closed, err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusPagado, order.Version)
	if errors.Is(err, interfaces.ErrConflict) {
		fresh, rerr := u.orders.GetByID(ctx, order.ID)
		if rerr != nil {
			return entities.Order{}, rerr
		}
		if fresh.Status == entities.OrderStatusPagado {
			return fresh, nil
		}
		closed, err = u.orders.UpdateStatus(ctx, fresh.ID, entities.OrderStatusPagado, fresh.Version)
	}
	if err != nil {
		zap.L().Error("[payment][usecase] close order failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.Order{}, err
	}
	zap.L().Info("[payment][usecase] order closed", zap.String("order_id", closed.ID))
	publish(ctx, u.publisher, entities.OrderEvent(closed, entities.ChangeUpdate))
	return closed, nil
}

func (u *PaymentUseCase) loadBill(ctx context.Context, tableID, guestID string) (bill, error) {
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return bill{}, err
	}
	guest, err := loadGuest(ctx, u.guests, table.ID, guestID)
	if err != nil {
		return bill{}, err
	}
	order, err := u.orders.GetLatestByTableID(ctx, table.ID)
	if err != nil {
		return bill{}, err
	}
	if order.ID == "" {
		return bill{}, ErrOrderNotFound
	}
	guests, err := u.guests.ListByTableID(ctx, table.ID)
	if err != nil {
		return bill{}, err
	}
	lines, err := u.items.ListByTableID(ctx, table.ID)
	if err != nil {
		return bill{}, err
	}
	menu, err := loadMenu(ctx, u.menus, table.RestaurantID)
	if err != nil {
		return bill{}, err
	}

	lines = currentLines(lines, order.ID)
	shares, err := billShares(guests, lines, menu)
	if err != nil {
		return bill{}, err
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(cart.LineTotal(menu, l))
	}
	return bill{table: table, order: order, guest: guest, guests: guests, shares: shares, total: total}, nil
}

func (b bill) state() CheckoutState {
	r := reconciler.New()
	r.Seed(b.guests)
	return CheckoutState{
		Guest:       b.guest,
		OrderID:     b.order.ID,
		OrderStatus: b.order.Status,
		Shares:      r.Shares(b.shares, b.guest.ID),
		GrandTotal:  b.total,
		Remaining:   r.RemainingToSettle(b.shares, b.total),
		Next:        r.Next(b.guest.ID, b.shares),
	}
}

// billShares uses the confirmed split when there is one and falls back to
// everyone paying their own lines.
func billShares(guests []entities.Guest, lines []entities.OrderItem, menu entities.Menu) ([]entities.BillShare, error) {
	confirmed := false
	for _, g := range guests {
		if g.IndividualAmount != nil {
			confirmed = true
			break
		}
	}
	if confirmed {
		shares := make([]entities.BillShare, 0, len(guests))
		for _, g := range guests {
			amount := decimal.Zero
			if g.IndividualAmount != nil {
				amount = *g.IndividualAmount
			}
			shares = append(shares, entities.BillShare{GuestID: g.ID, Amount: amount})
		}
		return shares, nil
	}
	res, err := split.Compute(split.Input{Guests: guests, Lines: lines, Prices: menu, Method: split.MethodPerGuest})
	if err != nil {
		return nil, err
	}
	return res.Shares, nil
}

func shareOf(shares []entities.BillShare, guestID string) decimal.Decimal {
	for _, s := range shares {
		if s.GuestID == guestID {
			return s.Amount
		}
	}
	return decimal.Zero
}

func (u *PaymentUseCase) returnURL(override, tableID, guestID string) string {
	base := strings.TrimSpace(override)
	if base == "" {
		base = u.defaultReturnURL
	}
	if base == "" {
		return ""
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := parsed.Query()
	q.Set("table_id", tableID)
	q.Set("guest_id", guestID)
	parsed.RawQuery = q.Encode()
	return parsed.String()
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
