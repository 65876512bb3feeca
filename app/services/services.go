// Package services holds the storefront use cases that sit between the view
// and the store: login, plan selection, checkout, and the admin dashboard.
package services

import (
	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/app/store"
)

// StateStore is the part of *store.Store the services need.
type StateStore interface {
	State() models.AppState
	Dispatch(a store.Action) error
}
