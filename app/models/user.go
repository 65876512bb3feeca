package models

import "time"

// Role decides which surfaces a user may see.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is the signed-in shopper. There is no password: login only records
// a name and email.
type User struct {
	ID         string               `json:"id"                   validate:"required"`
	Name       string               `json:"name"                 validate:"required,max=255"`
	Email      string               `json:"email"                validate:"nullable,email"`
	Role       Role                 `json:"role"                 validate:"required,in=customer,admin"`
	Membership Optional[Membership] `json:"membership,omitzero"`
	Avatar     string               `json:"avatar,omitempty"`
}

// IsAdmin reports whether the user may open the admin dashboard.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every order status in lifecycle order.
var OrderStatuses = []OrderStatus{OrderPending, OrderConfirmed, OrderProcessing, OrderDelivered, OrderCancelled}

// Order is a checked-out cart handed to the payment collaborator.
type Order struct {
	ID           string      `json:"id"        validate:"required"`
	UserID       string      `json:"userId"    validate:"required"`
	Items        []CartItem  `json:"items"`
	Total        float64     `json:"total"     validate:"gte=0"`
	Status       OrderStatus `json:"status"    validate:"required,in=pending,confirmed,processing,delivered,cancelled"`
	CreatedAt    time.Time   `json:"createdAt"`
	DeliveryDate time.Time   `json:"deliveryDate"`
	QRCodeURL    string      `json:"qrCodeUrl,omitempty"`
}
