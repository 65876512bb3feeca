package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/fruitfuel/app/catalog"
	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/app/pricing"
	"github.com/shashiranjanraj/fruitfuel/pkg/collection"
)

// moneyDelta absorbs float error in unrounded amounts.
const moneyDelta = 1e-9

// AssertStepOutcome checks a step failed (or not) the way the scenario says.
func AssertStepOutcome(t *testing.T, s *Scenario, r StepResult) {
	t.Helper()
	want := s.Steps[r.Index].ExpectError
	got := ErrorKind(r.Err)

	switch want {
	case "":
		assert.NoError(t, r.Err, "[%s] step %d (%s) should succeed", s.Name, r.Index, r.Action)
	case "any":
		assert.Error(t, r.Err, "[%s] step %d (%s) should fail", s.Name, r.Index, r.Action)
	default:
		assert.Equal(t, want, got, "[%s] step %d (%s) error kind, err=%v", s.Name, r.Index, r.Action, r.Err)
	}
}

// AssertExpectation checks the final state of d against s.Expect.
func AssertExpectation(t *testing.T, s *Scenario, d Dispatcher) {
	t.Helper()
	st := d.State()
	e := s.Expect

	if e.Cart != nil {
		got := collection.Map(st.Cart, func(item models.CartItem) CartLine {
			return CartLine{ProductID: item.Product.ID, Quantity: item.Quantity}
		})
		assert.Equal(t, *e.Cart, got, "[%s] cart", s.Name)
	}

	sum := pricing.Summarize(st.Cart, st.User)
	if e.Subtotal != nil {
		assert.InDelta(t, *e.Subtotal, sum.Subtotal, moneyDelta, "[%s] subtotal", s.Name)
	}
	if e.DiscountAmount != nil {
		assert.InDelta(t, *e.DiscountAmount, sum.DiscountAmount, moneyDelta, "[%s] discount amount", s.Name)
	}
	if e.Total != nil {
		assert.InDelta(t, *e.Total, sum.Total, moneyDelta, "[%s] total", s.Name)
	}
	if e.TotalFormatted != "" {
		assert.Equal(t, e.TotalFormatted, pricing.FormatUSD(sum.Total), "[%s] formatted total", s.Name)
	}

	if e.VisibleProducts != nil {
		visible := collection.Map(catalog.VisibleProducts(st.Products, st.User), func(p models.Product) string {
			return p.ID
		})
		assert.Equal(t, *e.VisibleProducts, visible, "[%s] visible products", s.Name)
	}

	if e.LoggedIn != nil {
		assert.Equal(t, *e.LoggedIn, st.User.IsSome(), "[%s] logged in", s.Name)
	}
	if e.Membership != nil {
		name := ""
		if u, ok := st.User.Get(); ok {
			if m, ok := u.Membership.Get(); ok {
				name = m.Name
			}
		}
		assert.Equal(t, *e.Membership, name, "[%s] membership", s.Name)
	}
	if e.Orders != nil {
		assert.Len(t, st.Orders, *e.Orders, "[%s] orders", s.Name)
	}
	if e.OrderStatuses != nil {
		got := collection.Map(st.Orders, func(o models.Order) string { return string(o.Status) })
		assert.Equal(t, *e.OrderStatuses, got, "[%s] order statuses", s.Name)
	}
	if e.Version != nil {
		if v, ok := d.(Versioned); assert.True(t, ok, "[%s] dispatcher has no version", s.Name) {
			assert.Equal(t, *e.Version, v.Version(), "[%s] version", s.Name)
		}
	}
}
