package seeders

import "github.com/shashiranjanraj/fruitfuel/app/models"

func init() {
	Register("products", SeedProducts)
	Register("memberships", SeedMemberships)
}

// SeedProducts installs the five-fruit launch catalogue.
func SeedProducts(st *models.AppState) error {
	st.Products = []models.Product{
		{
			ID:          "1",
			Name:        "Premium Strawberries",
			Category:    "berries",
			Price:       8.99,
			Unit:        "lb",
			Image:       "https://images.pexels.com/photos/89778/strawberries-frisch-ripe-sweet-89778.jpeg?auto=compress&cs=tinysrgb&w=600",
			Description: "Fresh, juicy strawberries picked at peak ripeness",
			InStock:     true,
			Featured:    true,
			Nutrition:   models.Nutrition{Calories: 32, Fiber: 2, VitaminC: 58},
		},
		{
			ID:          "2",
			Name:        "Tropical Mango",
			Category:    "tropical",
			Price:       3.49,
			Unit:        "each",
			Image:       "https://images.pexels.com/photos/2294471/pexels-photo-2294471.jpeg?auto=compress&cs=tinysrgb&w=600",
			Description: "Sweet, ripe mangoes with tropical flavor",
			InStock:     true,
			Featured:    true,
			Nutrition:   models.Nutrition{Calories: 60, Fiber: 3, VitaminC: 36},
		},
		{
			ID:          "3",
			Name:        "Organic Blueberries",
			Category:    "berries",
			Price:       6.99,
			Unit:        "container",
			Image:       "https://images.pexels.com/photos/357573/pexels-photo-357573.jpeg?auto=compress&cs=tinysrgb&w=600",
			Description: "Antioxidant-rich organic blueberries",
			InStock:     true,
			Featured:    true,
			Nutrition:   models.Nutrition{Calories: 84, Fiber: 4, VitaminC: 14},
		},
		{
			ID:          "4",
			Name:        "Fresh Avocados",
			Category:    "tropical",
			Price:       2.99,
			Unit:        "each",
			Image:       "https://images.pexels.com/photos/557659/pexels-photo-557659.jpeg?auto=compress&cs=tinysrgb&w=600",
			Description: "Creamy, perfectly ripe avocados",
			InStock:     true,
			Featured:    false,
			Nutrition:   models.Nutrition{Calories: 160, Fiber: 7, VitaminC: 10},
		},
		{
			ID:          "5",
			Name:        "Navel Oranges",
			Category:    "citrus",
			Price:       4.99,
			Unit:        "bag",
			Image:       "https://images.pexels.com/photos/161559/background-bitter-breakfast-bright-161559.jpeg?auto=compress&cs=tinysrgb&w=600",
			Description: "Sweet, juicy navel oranges",
			InStock:     true,
			Featured:    false,
			Nutrition:   models.Nutrition{Calories: 62, Fiber: 3, VitaminC: 92},
		},
	}
	return nil
}

// SeedMemberships installs the three subscription plans. None is active
// until a user picks one.
func SeedMemberships(st *models.AppState) error {
	st.Memberships = []models.Membership{
		{
			ID:                "1",
			Type:              models.MembershipDaily,
			Name:              "Daily Fresh",
			Price:             9.99,
			Discount:          0,
			Features:          []string{"Single delivery", "Basic fruit selection", "Pay-per-use"},
			DeliveriesPerWeek: 1,
		},
		{
			ID:                "2",
			Type:              models.MembershipWeekly,
			Name:              "Weekly Boost",
			Price:             24.99,
			Discount:          10,
			Features:          []string{"3 deliveries per week", "Expanded fruit selection", "10% discount on add-ons"},
			DeliveriesPerWeek: 3,
		},
		{
			ID:                "3",
			Type:              models.MembershipMonthly,
			Name:              "Monthly Premium",
			Price:             89.99,
			Discount:          20,
			Features:          []string{"Daily delivery options", "Premium fruit selection", "20% discount on all orders", "Priority delivery"},
			DeliveriesPerWeek: 7,
		},
	}
	return nil
}
