package models

// CartItem is one cart line. Quantity is always at least 1; a line that
// would drop to zero is removed instead.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// AppState is the whole storefront state. Products and Memberships are fixed
// after seeding; User and Cart change only through store actions.
type AppState struct {
	User        Optional[User] `json:"user"`
	Cart        []CartItem     `json:"cart"`
	Products    []Product      `json:"products"`
	Orders      []Order        `json:"orders"`
	Memberships []Membership   `json:"memberships"`
}

// CartIndex returns the position of productID in the cart, or -1.
func (s AppState) CartIndex(productID string) int {
	for i, item := range s.Cart {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// Product looks up a catalogue entry by ID.
func (s AppState) Product(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Plan looks up an available membership plan by ID.
func (s AppState) Plan(id string) (Membership, bool) {
	for _, m := range s.Memberships {
		if m.ID == id {
			return m, true
		}
	}
	return Membership{}, false
}

// Order looks up a recorded order by ID.
func (s AppState) Order(id string) (Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
