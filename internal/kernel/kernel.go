// Package kernel wires the storefront together: seeded state, the store,
// its metrics, and the services that drive it.
//
// The CLI calls Boot once; tests call New with explicit options.
package kernel

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shashiranjanraj/fruitfuel/app/services"
	"github.com/shashiranjanraj/fruitfuel/app/store"
	"github.com/shashiranjanraj/fruitfuel/config"
	"github.com/shashiranjanraj/fruitfuel/database/seeders"
	"github.com/shashiranjanraj/fruitfuel/pkg/logger"
	"github.com/shashiranjanraj/fruitfuel/pkg/metrics"
)

// Options controls how the kernel is assembled.
type Options struct {
	SeedFile         string
	EnforceStock     bool
	MetricsNamespace string
	Logger           *slog.Logger
	Payments         services.PaymentProvider
}

// App is a booted storefront.
type App struct {
	Store    *store.Store
	Registry *prometheus.Registry
	Metrics  *metrics.StoreMetrics
	Log      *slog.Logger

	Auth        *services.AuthService
	Memberships *services.MembershipService
	Checkout    *services.CheckoutService
	Admin       *services.AdminService
}

// FromConfig returns the options described by the loaded configuration.
func FromConfig() Options {
	return Options{
		SeedFile:         config.SeedFile(),
		EnforceStock:     config.EnforceStock(),
		MetricsNamespace: config.MetricsNamespace(),
		Logger:           logger.L,
		Payments:         services.NewQRCodeProvider(),
	}
}

// Boot assembles the storefront from configuration.
func Boot() (*App, error) {
	return New(FromConfig())
}

// New assembles the storefront from opts. Zero-valued fields get defaults.
func New(opts Options) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = logger.L
	}
	if opts.Payments == nil {
		opts.Payments = services.NewQRCodeProvider()
	}

	initial, err := seeders.InitialState(opts.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("kernel: seed: %w", err)
	}

	reg := metrics.NewRegistry()
	m := metrics.NewStoreMetrics(reg, opts.MetricsNamespace)

	st := store.New(initial,
		store.WithLogger(opts.Logger),
		store.WithMetrics(m),
		store.WithReducer(store.Reducer{EnforceStock: opts.EnforceStock}),
	)

	opts.Logger.Debug("kernel booted",
		"products", len(initial.Products),
		"plans", len(initial.Memberships),
		"enforce_stock", opts.EnforceStock,
	)

	return &App{
		Store:       st,
		Registry:    reg,
		Metrics:     m,
		Log:         opts.Logger,
		Auth:        services.NewAuthService(st),
		Memberships: services.NewMembershipService(st),
		Checkout:    services.NewCheckoutService(st, opts.Payments),
		Admin:       services.NewAdminService(st),
	}, nil
}
