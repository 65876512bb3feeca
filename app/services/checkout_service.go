package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/app/pricing"
	"github.com/shashiranjanraj/fruitfuel/app/store"
	"github.com/shashiranjanraj/fruitfuel/pkg/logger"
	"github.com/shashiranjanraj/fruitfuel/pkg/reqid"
)

// deliveryLead is how long after checkout an order is due.
const deliveryLead = 24 * time.Hour

// Receipt is the outcome of a checkout.
type Receipt struct {
	Order   models.Order    `json:"order"`
	Summary pricing.Summary `json:"summary"`
}

type CheckoutService struct {
	store    StateStore
	payments PaymentProvider
	newID    func() string
}

func NewCheckoutService(st StateStore, payments PaymentProvider) *CheckoutService {
	return &CheckoutService{store: st, payments: payments, newID: uuid.NewString}
}

// Checkout turns the current cart into a pending order, hands it to the
// payment provider and records it. The cart is kept until the payment is
// confirmed.
func (s *CheckoutService) Checkout(ctx context.Context, now time.Time) (Receipt, error) {
	ctx = reqid.Ensure(ctx)
	log := logger.WithCtx(ctx)

	st := s.store.State()
	user, ok := st.User.Get()
	if !ok {
		return Receipt{}, store.ErrNoUser
	}
	if len(st.Cart) == 0 {
		return Receipt{}, &store.ValidationError{Field: "cart", Reason: "cart is empty"}
	}

	summary := pricing.Summarize(st.Cart, st.User)
	order := models.Order{
		ID:           s.newID(),
		UserID:       user.ID,
		Items:        slices.Clone(st.Cart),
		Total:        pricing.RoundCents(summary.Total),
		Status:       models.OrderPending,
		CreatedAt:    now,
		DeliveryDate: now.Add(deliveryLead),
	}

	ref, err := s.payments.RequestPayment(ctx, PaymentRequest{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Items:     order.Items,
		Total:     order.Total,
		Timestamp: now,
	})
	if err != nil {
		log.Error("payment hand-off failed", "order_id", order.ID, "error", err)
		return Receipt{}, fmt.Errorf("checkout: request payment: %w", err)
	}
	order.QRCodeURL = ref

	if err := s.store.Dispatch(store.RecordOrder{Order: order}); err != nil {
		return Receipt{}, fmt.Errorf("checkout: record order: %w", err)
	}

	log.Info("order recorded", "order_id", order.ID, "user_id", order.UserID, "total", order.Total)
	return Receipt{Order: order, Summary: summary}, nil
}

// ConfirmPayment marks the shopper's pending order as paid and empties the
// cart.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, orderID string) (models.Order, error) {
	ctx = reqid.Ensure(ctx)
	if _, err := s.ownOrder(orderID); err != nil {
		return models.Order{}, err
	}
	if err := s.store.Dispatch(store.SetOrderStatus{OrderID: orderID, Status: models.OrderConfirmed}); err != nil {
		return models.Order{}, fmt.Errorf("checkout: confirm %s: %w", orderID, err)
	}
	if err := s.store.Dispatch(store.ClearCart{}); err != nil {
		return models.Order{}, fmt.Errorf("checkout: clear cart: %w", err)
	}

	order, _ := s.store.State().Order(orderID)
	logger.WithCtx(ctx).Info("payment confirmed", "order_id", order.ID, "total", order.Total)
	return order, nil
}

// Cancel abandons an order. The cart is left as it is so the shopper can
// try again.
func (s *CheckoutService) Cancel(ctx context.Context, orderID string) (models.Order, error) {
	ctx = reqid.Ensure(ctx)
	if _, err := s.ownOrder(orderID); err != nil {
		return models.Order{}, err
	}
	if err := s.store.Dispatch(store.SetOrderStatus{OrderID: orderID, Status: models.OrderCancelled}); err != nil {
		return models.Order{}, fmt.Errorf("checkout: cancel %s: %w", orderID, err)
	}

	order, _ := s.store.State().Order(orderID)
	logger.WithCtx(ctx).Info("order cancelled", "order_id", order.ID)
	return order, nil
}

// ownOrder finds orderID among the logged-in user's orders.
func (s *CheckoutService) ownOrder(orderID string) (models.Order, error) {
	st := s.store.State()
	user, ok := st.User.Get()
	if !ok {
		return models.Order{}, store.ErrNoUser
	}
	order, ok := st.Order(orderID)
	if !ok || order.UserID != user.ID {
		return models.Order{}, &store.NotFoundError{Kind: "order", ID: orderID}
	}
	return order, nil
}
