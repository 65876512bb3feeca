// Package pricing derives cart totals and member prices from store state.
// Every function is pure; amounts are unrounded until RoundCents or FormatUSD.
package pricing

import (
	"fmt"
	"math"

	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/pkg/collection"
)

// Subtotal is the sum of price × quantity over the cart.
func Subtotal(cart []models.CartItem) float64 {
	return collection.Sum(cart, func(item models.CartItem) float64 {
		return item.Product.Price * float64(item.Quantity)
	})
}

// DiscountPercent is the user's membership discount, or 0 when there is no
// user or no membership.
func DiscountPercent(user models.Optional[models.User]) float64 {
	u, ok := user.Get()
	if !ok {
		return 0
	}
	m, ok := u.Membership.Get()
	if !ok {
		return 0
	}
	return m.Discount
}

// DiscountAmount is the money taken off the subtotal.
func DiscountAmount(cart []models.CartItem, user models.Optional[models.User]) float64 {
	return Subtotal(cart) * DiscountPercent(user) / 100
}

// Total is the subtotal less the membership discount.
func Total(cart []models.CartItem, user models.Optional[models.User]) float64 {
	return Subtotal(cart) - DiscountAmount(cart, user)
}

// DiscountedUnitPrice is what the user pays for one unit of p.
func DiscountedUnitPrice(p models.Product, user models.Optional[models.User]) float64 {
	return p.Price * (1 - DiscountPercent(user)/100)
}

// Summary is the cart panel: counts and the unrounded money figures.
type Summary struct {
	Lines           int     `json:"lines"`
	Units           int     `json:"units"`
	Subtotal        float64 `json:"subtotal"`
	DiscountPercent float64 `json:"discountPercent"`
	DiscountAmount  float64 `json:"discountAmount"`
	Total           float64 `json:"total"`
}

// Summarize computes a Summary for the cart and user.
func Summarize(cart []models.CartItem, user models.Optional[models.User]) Summary {
	sub := Subtotal(cart)
	pct := DiscountPercent(user)
	discount := sub * pct / 100
	return Summary{
		Lines: len(cart),
		Units: collection.Reduce(cart, 0, func(n int, item models.CartItem) int {
			return n + item.Quantity
		}),
		Subtotal:        sub,
		DiscountPercent: pct,
		DiscountAmount:  discount,
		Total:           sub - discount,
	}
}

// roundingSlack absorbs binary representation error so that values like
// 2.145 round up as they read.
const roundingSlack = 1e-9

// RoundCents rounds half-up (away from zero) to two decimal places.
func RoundCents(x float64) float64 {
	if x < 0 {
		return -RoundCents(-x)
	}
	return math.Floor(x*100+0.5+roundingSlack) / 100
}

// FormatUSD renders x as dollars and cents, e.g. "$19.32".
func FormatUSD(x float64) string {
	return fmt.Sprintf("$%.2f", RoundCents(x))
}
