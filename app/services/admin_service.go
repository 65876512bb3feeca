package services

import (
	"cmp"

	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/app/store"
	"github.com/shashiranjanraj/fruitfuel/pkg/collection"
	"github.com/shashiranjanraj/fruitfuel/pkg/rbac"
)

const (
	recentOrdersShown = 4
	topProductsShown  = 4
)

var adminOnly = rbac.HasRole(string(models.RoleAdmin))

// Stats are the headline figures on the dashboard.
type Stats struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	ActiveMembers int     `json:"activeMembers"`
	ProductsSold  int     `json:"productsSold"`
	AverageRating float64 `json:"averageRating"`
}

// BaselineStats are the fixed figures the dashboard shows before any live
// orders exist.
var BaselineStats = Stats{
	TotalUsers:    1247,
	TotalOrders:   856,
	TotalRevenue:  24567,
	ActiveMembers: 432,
	ProductsSold:  2341,
	AverageRating: 4.8,
}

// OrderRow is one line of the recent-orders table.
type OrderRow struct {
	ID       string             `json:"id"`
	Customer string             `json:"customer"`
	Total    float64            `json:"total"`
	Status   models.OrderStatus `json:"status"`
	Date     string             `json:"date"`
}

// ProductSales is one line of the top-products table.
type ProductSales struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Sales     int     `json:"sales"`
	Revenue   float64 `json:"revenue"`
}

// Dashboard is the admin overview.
type Dashboard struct {
	Stats        Stats          `json:"stats"`
	RecentOrders []OrderRow     `json:"recentOrders"`
	TopProducts  []ProductSales `json:"topProducts"`
}

type AdminService struct {
	store StateStore
}

func NewAdminService(st StateStore) *AdminService {
	return &AdminService{store: st}
}

// Dashboard builds the overview for the logged-in admin. Figures are the
// baseline plus whatever orders have been recorded in this session.
func (s *AdminService) Dashboard() (Dashboard, error) {
	st := s.store.State()
	user, ok := st.User.Get()
	if !ok {
		return Dashboard{}, store.ErrNoUser
	}
	if err := adminOnly.Check(string(user.Role)); err != nil {
		return Dashboard{}, &store.PreconditionError{Reason: "admin dashboard", Err: err}
	}

	lines := collection.Flatten(collection.Map(st.Orders, func(o models.Order) []models.CartItem {
		return o.Items
	}))

	stats := BaselineStats
	stats.TotalOrders += len(st.Orders)
	stats.TotalRevenue += collection.Sum(st.Orders, func(o models.Order) float64 { return o.Total })
	stats.ProductsSold += collection.Reduce(lines, 0, func(n int, item models.CartItem) int {
		return n + item.Quantity
	})

	return Dashboard{
		Stats:        stats,
		RecentOrders: recentOrders(st, user),
		TopProducts:  topProducts(lines),
	}, nil
}

func recentOrders(st models.AppState, viewer models.User) []OrderRow {
	newest := collection.Take(collection.Reverse(st.Orders), recentOrdersShown)
	return collection.Map(newest, func(o models.Order) OrderRow {
		customer := o.UserID
		if o.UserID == viewer.ID {
			customer = viewer.Name
		}
		return OrderRow{
			ID:       o.ID,
			Customer: customer,
			Total:    o.Total,
			Status:   o.Status,
			Date:     o.CreatedAt.Format("2006-01-02"),
		}
	})
}

func topProducts(lines []models.CartItem) []ProductSales {
	groups := collection.GroupBy(lines, func(item models.CartItem) string { return item.Product.ID })

	sales := make([]ProductSales, 0, len(groups))
	for id, items := range groups {
		sales = append(sales, ProductSales{
			ProductID: id,
			Name:      items[0].Product.Name,
			Sales: collection.Reduce(items, 0, func(n int, item models.CartItem) int {
				return n + item.Quantity
			}),
			Revenue: collection.Sum(items, func(item models.CartItem) float64 {
				return item.Product.Price * float64(item.Quantity)
			}),
		})
	}

	sorted := collection.SortBy(sales, func(a, b ProductSales) int {
		if c := cmp.Compare(b.Sales, a.Sales); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	return collection.Take(sorted, topProductsShown)
}
