package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/app/store"
	"github.com/shashiranjanraj/fruitfuel/database/seeders"
	"github.com/shashiranjanraj/fruitfuel/pkg/logger"
)

func seeded(t *testing.T) models.AppState {
	t.Helper()
	st, err := seeders.InitialState("")
	require.NoError(t, err)
	return st
}

func newStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	return store.New(seeded(t), append([]store.Option{store.WithLogger(logger.Discard())}, opts...)...)
}

func product(t *testing.T, st models.AppState, id string) models.Product {
	t.Helper()
	p, ok := st.Product(id)
	require.True(t, ok, "seed product %s", id)
	return p
}

func customer() models.User {
	return models.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: models.RoleCustomer}
}

func weeklyBoost() models.Membership {
	return models.Membership{ID: "2", Type: models.MembershipWeekly, Name: "Weekly Boost", Price: 24.99, Discount: 10, DeliveriesPerWeek: 3}
}

func TestDispatch(t *testing.T) {
	t.Run("AddToCart_TwiceMergesIntoOneLine", func(t *testing.T) {
		s := newStore(t)
		p := product(t, s.State(), "1")

		require.NoError(t, s.Dispatch(store.AddToCart{Product: p}))
		require.NoError(t, s.Dispatch(store.AddToCart{Product: p}))

		cart := s.State().Cart
		require.Len(t, cart, 1)
		assert.Equal(t, 2, cart[0].Quantity)
		assert.Equal(t, uint64(2), s.Version())
	})

	t.Run("AddToCart_KeepsFirstAddOrder", func(t *testing.T) {
		s := newStore(t)
		st := s.State()
		for _, id := range []string{"3", "1", "3", "5"} {
			require.NoError(t, s.Dispatch(store.AddToCart{Product: product(t, st, id)}))
		}

		cart := s.State().Cart
		require.Len(t, cart, 3)
		assert.Equal(t, "3", cart[0].Product.ID)
		assert.Equal(t, 2, cart[0].Quantity)
		assert.Equal(t, "1", cart[1].Product.ID)
		assert.Equal(t, "5", cart[2].Product.ID)
	})

	t.Run("AddToCart_UnknownProductIsNotFound", func(t *testing.T) {
		s := newStore(t)
		err := s.Dispatch(store.AddToCart{Product: models.Product{ID: "404", Name: "Kiwi", Price: 1}})

		require.Error(t, err)
		assert.True(t, store.IsNotFound(err))
		assert.Empty(t, s.State().Cart)
		assert.Zero(t, s.Version())
	})

	t.Run("AddToCart_StoresCatalogueCopyNotPayload", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Dispatch(store.AddToCart{Product: models.Product{ID: "2", Price: 0.01}}))
		assert.Equal(t, 3.49, s.State().Cart[0].Product.Price)
	})

	t.Run("UpdateToZeroEqualsRemove", func(t *testing.T) {
		a, b := newStore(t), newStore(t)
		for _, s := range []*store.Store{a, b} {
			st := s.State()
			require.NoError(t, s.Dispatch(store.AddToCart{Product: product(t, st, "1")}))
			require.NoError(t, s.Dispatch(store.AddToCart{Product: product(t, st, "2")}))
		}

		require.NoError(t, a.Dispatch(store.UpdateCartQuantity{ProductID: "1", Quantity: 0}))
		require.NoError(t, b.Dispatch(store.RemoveFromCart{ProductID: "1"}))

		assert.Equal(t, a.State().Cart, b.State().Cart)
		assert.Len(t, a.State().Cart, 1)
	})

	t.Run("UpdateCartQuantity_NegativeIsRejected", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Dispatch(store.AddToCart{Product: product(t, s.State(), "1")}))
		before := s.State()

		err := s.Dispatch(store.UpdateCartQuantity{ProductID: "1", Quantity: -1})
		require.Error(t, err)
		assert.True(t, store.IsValidation(err))
		assert.Equal(t, before, s.State())
	})

	t.Run("UpdateCartQuantity_AbsentProductIsNoop", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Dispatch(store.UpdateCartQuantity{ProductID: "1", Quantity: 3}))
		assert.Empty(t, s.State().Cart)
	})

	t.Run("ClearCart_IsIdempotent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Dispatch(store.AddToCart{Product: product(t, s.State(), "4")}))

		require.NoError(t, s.Dispatch(store.ClearCart{}))
		once := s.State().Cart
		require.NoError(t, s.Dispatch(store.ClearCart{}))

		assert.Empty(t, once)
		assert.Equal(t, once, s.State().Cart)
	})

	t.Run("SetMembership_WithoutUserLeavesStateUntouched", func(t *testing.T) {
		s := newStore(t)
		before, version := s.State(), s.Version()

		err := s.Dispatch(store.SetMembership{Membership: weeklyBoost()})
		require.Error(t, err)
		assert.True(t, store.IsPrecondition(err))
		assert.ErrorIs(t, err, store.ErrNoUser)
		assert.Equal(t, before, s.State())
		assert.Equal(t, version, s.Version())
	})

	t.Run("SetMembership_DiscountOutOfRangeIsRejected", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Dispatch(store.Login(customer())))

		m := weeklyBoost()
		m.Discount = 101
		err := s.Dispatch(store.SetMembership{Membership: m})
		require.Error(t, err)
		assert.True(t, store.IsValidation(err))

		u, _ := s.State().User.Get()
		assert.False(t, u.Membership.IsSome())
	})

	t.Run("SetMembership_AttachesPlan", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Dispatch(store.Login(customer())))
		require.NoError(t, s.Dispatch(store.SetMembership{Membership: weeklyBoost()}))

		u, ok := s.State().User.Get()
		require.True(t, ok)
		m, ok := u.Membership.Get()
		require.True(t, ok)
		assert.Equal(t, "Weekly Boost", m.Name)
	})

	t.Run("Logout_KeepsCart", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Dispatch(store.Login(customer())))
		require.NoError(t, s.Dispatch(store.AddToCart{Product: product(t, s.State(), "1")}))
		require.NoError(t, s.Dispatch(store.Logout()))

		assert.False(t, s.State().User.IsSome())
		assert.Len(t, s.State().Cart, 1)
	})

	t.Run("EnforceStock_RejectsOutOfStock", func(t *testing.T) {
		initial := seeded(t)
		initial.Products[0].InStock = false
		s := store.New(initial, store.WithLogger(logger.Discard()), store.WithReducer(store.Reducer{EnforceStock: true}))

		err := s.Dispatch(store.AddToCart{Product: initial.Products[0]})
		assert.True(t, store.IsValidation(err))

		loose := store.New(initial, store.WithLogger(logger.Discard()))
		assert.NoError(t, loose.Dispatch(store.AddToCart{Product: initial.Products[0]}))
	})

	t.Run("RecordOrder_ValidatesAndAppends", func(t *testing.T) {
		s := newStore(t)
		err := s.Dispatch(store.RecordOrder{Order: models.Order{ID: "o1", UserID: "u1", Total: -1, Status: models.OrderPending}})
		assert.True(t, store.IsValidation(err))

		require.NoError(t, s.Dispatch(store.RecordOrder{Order: models.Order{ID: "o1", UserID: "u1", Total: 5, Status: models.OrderPending}}))
		assert.Len(t, s.State().Orders, 1)
	})
}

func TestSnapshotsAreNeverModified(t *testing.T) {
	s := newStore(t)
	p := product(t, s.State(), "1")
	require.NoError(t, s.Dispatch(store.AddToCart{Product: p}))

	snap := s.State()
	require.NoError(t, s.Dispatch(store.AddToCart{Product: p}))
	require.NoError(t, s.Dispatch(store.AddToCart{Product: product(t, snap, "2")}))
	require.NoError(t, s.Dispatch(store.UpdateCartQuantity{ProductID: "1", Quantity: 7}))
	require.NoError(t, s.Dispatch(store.Login(customer())))
	require.NoError(t, s.Dispatch(store.SetMembership{Membership: weeklyBoost()}))

	require.Len(t, snap.Cart, 1)
	assert.Equal(t, 1, snap.Cart[0].Quantity)
	assert.False(t, snap.User.IsSome())
}

func TestSubscribe(t *testing.T) {
	t.Run("DeliversEveryTransitionInOrder", func(t *testing.T) {
		s := newStore(t)
		var versions []uint64
		var kinds []string
		s.Subscribe(func(tr store.Transition) {
			versions = append(versions, tr.Version)
			kinds = append(kinds, tr.Action.Kind())
		})

		p := product(t, s.State(), "1")
		require.NoError(t, s.Dispatch(store.AddToCart{Product: p}))
		require.Error(t, s.Dispatch(store.UpdateCartQuantity{ProductID: "1", Quantity: -2}))
		require.NoError(t, s.Dispatch(store.ClearCart{}))

		assert.Equal(t, []uint64{1, 2}, versions)
		assert.Equal(t, []string{store.KindAddToCart, store.KindClearCart}, kinds)
	})

	t.Run("TransitionCarriesBothStates", func(t *testing.T) {
		s := newStore(t)
		var got store.Transition
		s.Subscribe(func(tr store.Transition) { got = tr })

		require.NoError(t, s.Dispatch(store.AddToCart{Product: product(t, s.State(), "5")}))
		assert.Empty(t, got.Before.Cart)
		assert.Len(t, got.After.Cart, 1)
	})

	t.Run("DispatchFromSubscriberIsQueuedInOrder", func(t *testing.T) {
		s := newStore(t)
		p := product(t, s.State(), "1")

		var order []uint64
		s.Subscribe(func(tr store.Transition) {
			order = append(order, tr.Version)
			if tr.Version == 1 {
				require.NoError(t, s.Dispatch(store.AddToCart{Product: p}))
			}
		})

		require.NoError(t, s.Dispatch(store.AddToCart{Product: p}))
		assert.Equal(t, []uint64{1, 2}, order)
		assert.Equal(t, 2, s.State().Cart[0].Quantity)
	})

	t.Run("Unsubscribe", func(t *testing.T) {
		s := newStore(t)
		calls := 0
		unsubscribe := s.Subscribe(func(store.Transition) { calls++ })

		require.NoError(t, s.Dispatch(store.ClearCart{}))
		unsubscribe()
		require.NoError(t, s.Dispatch(store.ClearCart{}))
		assert.Equal(t, 1, calls)
	})

	t.Run("ConcurrentDispatchDeliversEachOnce", func(t *testing.T) {
		s := newStore(t)
		p := product(t, s.State(), "3")

		var mu sync.Mutex
		seen := map[uint64]int{}
		s.Subscribe(func(tr store.Transition) {
			mu.Lock()
			seen[tr.Version]++
			mu.Unlock()
		})

		const n = 50
		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, s.Dispatch(store.AddToCart{Product: p}))
			}()
		}
		wg.Wait()

		assert.Equal(t, n, s.State().Cart[0].Quantity)
		mu.Lock()
		defer mu.Unlock()
		assert.Len(t, seen, n)
		for v, c := range seen {
			assert.Equal(t, 1, c, "version %d", v)
		}
	})
}

func TestSubscriberPanicDoesNotStopDelivery(t *testing.T) {
	s := newStore(t)

	var panicking, steady []uint64
	s.Subscribe(func(tr store.Transition) {
		panicking = append(panicking, tr.Version)
		if tr.Version == 1 {
			panic("subscriber bug")
		}
	})
	s.Subscribe(func(tr store.Transition) { steady = append(steady, tr.Version) })

	for range 3 {
		require.NotPanics(t, func() {
			assert.NoError(t, s.Dispatch(store.ClearCart{}))
		})
	}

	assert.Equal(t, uint64(3), s.Version())
	assert.Equal(t, []uint64{1, 2, 3}, panicking)
	assert.Equal(t, []uint64{1, 2, 3}, steady)
}

func TestDispatchNilAction(t *testing.T) {
	s := newStore(t)

	var err error
	require.NotPanics(t, func() { err = s.Dispatch(nil) })
	assert.True(t, store.IsValidation(err))
	assert.Zero(t, s.Version())
}

func TestPayloadSlicesAreCopied(t *testing.T) {
	t.Run("SetMembershipFeatures", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Dispatch(store.Login(customer())))

		m := weeklyBoost()
		m.Features = []string{"3 deliveries per week"}
		require.NoError(t, s.Dispatch(store.SetMembership{Membership: m}))
		m.Features[0] = "changed"

		u, _ := s.State().User.Get()
		got, _ := u.Membership.Get()
		assert.Equal(t, []string{"3 deliveries per week"}, got.Features)
	})

	t.Run("SetUserMembershipFeatures", func(t *testing.T) {
		s := newStore(t)
		m := weeklyBoost()
		m.Features = []string{"priority"}
		u := customer()
		u.Membership = models.Some(m)
		require.NoError(t, s.Dispatch(store.Login(u)))
		m.Features[0] = "changed"

		stored, _ := s.State().User.Get()
		got, _ := stored.Membership.Get()
		assert.Equal(t, []string{"priority"}, got.Features)
	})

	t.Run("RecordOrderItems", func(t *testing.T) {
		s := newStore(t)
		items := []models.CartItem{{Product: product(t, s.State(), "1"), Quantity: 2}}
		require.NoError(t, s.Dispatch(store.RecordOrder{Order: pendingOrder("o1", items)}))
		items[0].Quantity = 99

		assert.Equal(t, 2, s.State().Orders[0].Items[0].Quantity)
	})
}

func pendingOrder(id string, items []models.CartItem) models.Order {
	return models.Order{ID: id, UserID: "u1", Items: items, Total: 17.98, Status: models.OrderPending}
}

func TestSetOrderStatus(t *testing.T) {
	newWithOrder := func(t *testing.T) *store.Store {
		s := newStore(t)
		require.NoError(t, s.Dispatch(store.RecordOrder{Order: pendingOrder("o1", nil)}))
		return s
	}

	t.Run("PendingToConfirmed", func(t *testing.T) {
		s := newWithOrder(t)
		before := s.State()

		require.NoError(t, s.Dispatch(store.SetOrderStatus{OrderID: "o1", Status: models.OrderConfirmed}))
		assert.Equal(t, models.OrderConfirmed, s.State().Orders[0].Status)
		assert.Equal(t, models.OrderPending, before.Orders[0].Status, "earlier snapshot untouched")
	})

	t.Run("UnknownOrder", func(t *testing.T) {
		s := newWithOrder(t)
		err := s.Dispatch(store.SetOrderStatus{OrderID: "nope", Status: models.OrderConfirmed})
		assert.True(t, store.IsNotFound(err))
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		s := newWithOrder(t)
		err := s.Dispatch(store.SetOrderStatus{OrderID: "o1", Status: "shipped"})
		assert.True(t, store.IsValidation(err))
	})

	t.Run("IllegalMove", func(t *testing.T) {
		s := newWithOrder(t)
		require.NoError(t, s.Dispatch(store.SetOrderStatus{OrderID: "o1", Status: models.OrderCancelled}))

		err := s.Dispatch(store.SetOrderStatus{OrderID: "o1", Status: models.OrderConfirmed})
		assert.True(t, store.IsPrecondition(err))
		assert.Equal(t, models.OrderCancelled, s.State().Orders[0].Status)
	})
}
