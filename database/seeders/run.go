// Package seeders builds the initial storefront state.
//
// Seeders register themselves from init():
//
//	func init() {
//	    seeders.Register("products", SeedProducts)
//	}
//
// InitialState runs them in registration order and validates the result.
package seeders

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/pkg/logger"
	"github.com/shashiranjanraj/fruitfuel/pkg/validate"
)

// SeederFunc fills part of the initial state.
type SeederFunc func(st *models.AppState) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// RunAll executes every registered seeder in registration order.
// It stops on the first error.
func RunAll(st *models.AppState) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		if err := e.fn(st); err != nil {
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
		logger.Debug("seeder done", "seeder", e.name)
	}
	return nil
}

// InitialState returns the state a new store starts from: an empty cart,
// no user, and the seeded catalogue and plans. A non-empty seedFile replaces
// the registered seeders.
func InitialState(seedFile string) (models.AppState, error) {
	st := models.AppState{
		Cart:   []models.CartItem{},
		Orders: []models.Order{},
	}

	run := RunAll
	if seedFile != "" {
		run = FromFile(seedFile)
	}
	if err := run(&st); err != nil {
		return models.AppState{}, err
	}
	if err := Check(st); err != nil {
		return models.AppState{}, err
	}
	return st, nil
}

// Check validates every seeded product and plan and rejects duplicate IDs.
func Check(st models.AppState) error {
	seen := make(map[string]bool, len(st.Products))
	for _, p := range st.Products {
		if err := validate.Check(p); err != nil {
			return fmt.Errorf("product %q: %w", p.ID, err)
		}
		if seen[p.ID] {
			return fmt.Errorf("product %q: duplicate id", p.ID)
		}
		seen[p.ID] = true
	}

	seen = make(map[string]bool, len(st.Memberships))
	for _, m := range st.Memberships {
		if err := validate.Check(m); err != nil {
			return fmt.Errorf("membership %q: %w", m.ID, err)
		}
		if seen[m.ID] {
			return fmt.Errorf("membership %q: duplicate id", m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}

// seedFile is the YAML layout accepted by FromFile.
type seedFile struct {
	Products    []models.Product    `yaml:"products"`
	Memberships []models.Membership `yaml:"memberships"`
}

// FromFile returns a seeder that loads products and plans from a YAML file.
func FromFile(path string) SeederFunc {
	return func(st *models.AppState) error {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
		var sf seedFile
		if err := yaml.Unmarshal(raw, &sf); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		st.Products = sf.Products
		st.Memberships = sf.Memberships
		return nil
	}
}
