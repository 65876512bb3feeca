package store

import (
	"fmt"
	"slices"

	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/pkg/collection"
)

// Reducer applies actions to a state. It never writes to the state it is
// given: slices that change are copied, so earlier snapshots stay valid.
type Reducer struct {
	// EnforceStock rejects AddToCart for products that are out of stock.
	// Off by default: the storefront has always let shoppers add them.
	EnforceStock bool
}

// Reduce applies a with the default Reducer.
func Reduce(s models.AppState, a Action) (models.AppState, error) {
	return Reducer{}.Reduce(s, a)
}

// Reduce returns the state after a. On error the returned state is s.
func (r Reducer) Reduce(s models.AppState, a Action) (models.AppState, error) {
	switch a := a.(type) {
	case SetUser:
		return setUser(s, a)
	case AddToCart:
		return r.addToCart(s, a)
	case RemoveFromCart:
		return removeFromCart(s, a.ProductID), nil
	case UpdateCartQuantity:
		return updateCartQuantity(s, a)
	case ClearCart:
		s.Cart = []models.CartItem{}
		return s, nil
	case SetMembership:
		return setMembership(s, a)
	case RecordOrder:
		return recordOrder(s, a)
	case SetOrderStatus:
		return setOrderStatus(s, a)
	default:
		return s, fmt.Errorf("store: unhandled action %T", a)
	}
}

func setUser(s models.AppState, a SetUser) (models.AppState, error) {
	u, ok := a.User.Get()
	if !ok {
		s.User = a.User
		return s, nil
	}
	if err := invalid(u); err != nil {
		return s, err
	}
	if m, ok := u.Membership.Get(); ok {
		if err := invalid(m); err != nil {
			return s, err
		}
		u.Membership = models.Some(detachMembership(m))
	}
	s.User = models.Some(u)
	return s, nil
}

func (r Reducer) addToCart(s models.AppState, a AddToCart) (models.AppState, error) {
	product, ok := s.Product(a.Product.ID)
	if !ok {
		return s, &NotFoundError{Kind: "product", ID: a.Product.ID}
	}
	if r.EnforceStock && !product.InStock {
		return s, &ValidationError{Field: "product", Reason: product.Name + " is out of stock"}
	}

	if i := s.CartIndex(product.ID); i >= 0 {
		cart := slices.Clone(s.Cart)
		cart[i].Quantity++
		s.Cart = cart
		return s, nil
	}
	s.Cart = append(slices.Clip(s.Cart), models.CartItem{Product: product, Quantity: 1})
	return s, nil
}

func removeFromCart(s models.AppState, productID string) models.AppState {
	if s.CartIndex(productID) < 0 {
		return s
	}
	s.Cart = collection.Reject(s.Cart, func(item models.CartItem) bool {
		return item.Product.ID == productID
	})
	return s
}

func updateCartQuantity(s models.AppState, a UpdateCartQuantity) (models.AppState, error) {
	switch {
	case a.Quantity < 0:
		return s, &ValidationError{Field: "quantity", Reason: fmt.Sprintf("%d is negative", a.Quantity)}
	case a.Quantity == 0:
		return removeFromCart(s, a.ProductID), nil
	}

	i := s.CartIndex(a.ProductID)
	if i < 0 {
		return s, nil
	}
	cart := slices.Clone(s.Cart)
	cart[i].Quantity = a.Quantity
	s.Cart = cart
	return s, nil
}

func setMembership(s models.AppState, a SetMembership) (models.AppState, error) {
	user, ok := s.User.Get()
	if !ok {
		return s, ErrNoUser
	}
	if err := invalid(a.Membership); err != nil {
		return s, err
	}
	user.Membership = models.Some(detachMembership(a.Membership))
	s.User = models.Some(user)
	return s, nil
}

// detachMembership copies the plan's slices so the caller's payload can
// change without reaching into stored snapshots.
func detachMembership(m models.Membership) models.Membership {
	m.Features = slices.Clone(m.Features)
	return m
}

func recordOrder(s models.AppState, a RecordOrder) (models.AppState, error) {
	if err := invalid(a.Order); err != nil {
		return s, err
	}
	order := a.Order
	order.Items = slices.Clone(order.Items)
	s.Orders = append(slices.Clip(s.Orders), order)
	return s, nil
}

// orderTransitions lists the statuses an order may move to from each status.
var orderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPending:    {models.OrderConfirmed, models.OrderCancelled},
	models.OrderConfirmed:  {models.OrderProcessing, models.OrderCancelled},
	models.OrderProcessing: {models.OrderDelivered},
}

func setOrderStatus(s models.AppState, a SetOrderStatus) (models.AppState, error) {
	if !slices.Contains(models.OrderStatuses, a.Status) {
		return s, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown order status %q", a.Status)}
	}
	i := slices.IndexFunc(s.Orders, func(o models.Order) bool { return o.ID == a.OrderID })
	if i < 0 {
		return s, &NotFoundError{Kind: "order", ID: a.OrderID}
	}
	from := s.Orders[i].Status
	if !slices.Contains(orderTransitions[from], a.Status) {
		return s, &PreconditionError{Reason: fmt.Sprintf("order %q cannot move from %s to %s", a.OrderID, from, a.Status)}
	}

	orders := slices.Clone(s.Orders)
	orders[i].Status = a.Status
	s.Orders = orders
	return s, nil
}
