package store

import (
	"encoding/json"
	"fmt"

	"github.com/shashiranjanraj/fruitfuel/app/models"
)

// Action is a closed set of state transitions. Only the types declared in
// this file implement it.
type Action interface {
	Kind() string
	action()
}

// SetUser replaces the current user. An absent user means logout; the cart
// is left as it is.
type SetUser struct {
	User models.Optional[models.User] `json:"user"`
}

// AddToCart adds one unit of a catalogue product.
type AddToCart struct {
	Product models.Product `json:"product"`
}

// RemoveFromCart drops a product's line from the cart.
type RemoveFromCart struct {
	ProductID string `json:"productId"`
}

// UpdateCartQuantity sets a line's quantity. Zero removes the line.
type UpdateCartQuantity struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ClearCart empties the cart.
type ClearCart struct{}

// SetMembership attaches a plan to the logged-in user.
type SetMembership struct {
	Membership models.Membership `json:"membership"`
}

// RecordOrder appends a checked-out order.
type RecordOrder struct {
	Order models.Order `json:"order"`
}

// SetOrderStatus moves a recorded order along its lifecycle:
// pending to confirmed or cancelled, confirmed to processing or cancelled,
// processing to delivered.
type SetOrderStatus struct {
	OrderID string             `json:"orderId"`
	Status  models.OrderStatus `json:"status"`
}

const (
	KindSetUser            = "set_user"
	KindAddToCart          = "add_to_cart"
	KindRemoveFromCart     = "remove_from_cart"
	KindUpdateCartQuantity = "update_cart_quantity"
	KindClearCart          = "clear_cart"
	KindSetMembership      = "set_membership"
	KindRecordOrder        = "record_order"
	KindSetOrderStatus     = "set_order_status"
)

func (SetUser) Kind() string            { return KindSetUser }
func (AddToCart) Kind() string          { return KindAddToCart }
func (RemoveFromCart) Kind() string     { return KindRemoveFromCart }
func (UpdateCartQuantity) Kind() string { return KindUpdateCartQuantity }
func (ClearCart) Kind() string          { return KindClearCart }
func (SetMembership) Kind() string      { return KindSetMembership }
func (RecordOrder) Kind() string        { return KindRecordOrder }
func (SetOrderStatus) Kind() string     { return KindSetOrderStatus }

func (SetUser) action()            {}
func (AddToCart) action()          {}
func (RemoveFromCart) action()     {}
func (UpdateCartQuantity) action() {}
func (ClearCart) action()          {}
func (SetMembership) action()      {}
func (RecordOrder) action()        {}
func (SetOrderStatus) action()     {}

// Login is shorthand for SetUser with a present user.
func Login(u models.User) SetUser { return SetUser{User: models.Some(u)} }

// Logout is shorthand for SetUser with no user.
func Logout() SetUser { return SetUser{User: models.None[models.User]()} }

// DecodeAction builds an Action from its kind and JSON payload, as found in
// scripted sessions. An empty payload is allowed for ClearCart and Logout.
func DecodeAction(kind string, payload json.RawMessage) (Action, error) {
	var a Action
	switch kind {
	case KindSetUser:
		a = &SetUser{}
	case KindAddToCart:
		a = &AddToCart{}
	case KindRemoveFromCart:
		a = &RemoveFromCart{}
	case KindUpdateCartQuantity:
		a = &UpdateCartQuantity{}
	case KindClearCart:
		return ClearCart{}, nil
	case KindSetMembership:
		a = &SetMembership{}
	case KindRecordOrder:
		a = &RecordOrder{}
	case KindSetOrderStatus:
		a = &SetOrderStatus{}
	default:
		return nil, fmt.Errorf("store: unknown action kind %q", kind)
	}

	if len(payload) > 0 {
		if err := json.Unmarshal(payload, a); err != nil {
			return nil, fmt.Errorf("store: decode %s: %w", kind, err)
		}
	}

	switch v := a.(type) {
	case *SetUser:
		return *v, nil
	case *AddToCart:
		return *v, nil
	case *RemoveFromCart:
		return *v, nil
	case *UpdateCartQuantity:
		return *v, nil
	case *SetMembership:
		return *v, nil
	case *RecordOrder:
		return *v, nil
	case *SetOrderStatus:
		return *v, nil
	}
	return nil, fmt.Errorf("store: unknown action kind %q", kind)
}
