// Package catalog derives the product lists a shopper sees.
package catalog

import (
	"slices"
	"strings"

	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/pkg/collection"
)

// GuestShowcaseSize caps the showcase for shoppers without a membership.
const GuestShowcaseSize = 3

// VisibleProducts applies the membership showcase policy:
//
//	monthly   every product
//	weekly    featured products and all berries
//	daily     featured products
//	none      the first three featured products
//
// This is a presentation rule only; stock is not consulted.
func VisibleProducts(products []models.Product, user models.Optional[models.User]) []models.Product {
	featured := func(p models.Product) bool { return p.Featured }

	switch tier(user) {
	case models.MembershipMonthly:
		return slices.Clone(products)
	case models.MembershipWeekly:
		return collection.Filter(products, func(p models.Product) bool {
			return p.Featured || p.Category == "berries"
		})
	case models.MembershipDaily:
		return collection.Filter(products, featured)
	default:
		return collection.Take(collection.Filter(products, featured), GuestShowcaseSize)
	}
}

func tier(user models.Optional[models.User]) models.MembershipType {
	u, ok := user.Get()
	if !ok {
		return ""
	}
	m, ok := u.Membership.Get()
	if !ok {
		return ""
	}
	return m.Type
}

// Filter keeps products whose name or description contains searchTerm
// (case-insensitive) and whose category equals category. The category
// models.AllCategories matches everything; an empty term matches everything.
func Filter(products []models.Product, searchTerm, category string) []models.Product {
	term := strings.ToLower(searchTerm)
	return collection.Filter(products, func(p models.Product) bool {
		matchesSearch := strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
		matchesCategory := category == models.AllCategories || p.Category == category
		return matchesSearch && matchesCategory
	})
}

// Find returns the product with the given ID.
func Find(products []models.Product, id string) (models.Product, bool) {
	return collection.First(products, func(p models.Product) bool { return p.ID == id })
}

// Categories returns the filter vocabulary in display order.
func Categories() []models.Category {
	return slices.Clone(models.Categories)
}
