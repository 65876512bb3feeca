package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/fruitfuel/app/catalog"
	"github.com/shashiranjanraj/fruitfuel/app/pricing"
	"github.com/shashiranjanraj/fruitfuel/internal/kernel"
	"github.com/shashiranjanraj/fruitfuel/pkg/metrics"
	"github.com/shashiranjanraj/fruitfuel/pkg/testkit"
	"github.com/shashiranjanraj/fruitfuel/pkg/workerpool"
)

var (
	nowFunc     = time.Now
	workersFlag int
)

// fruitfuel simulate
var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.json>",
	Short: "Replay a scripted session and print the resulting cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := replay(cmd.OutOrStdout(), args[0])
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), app)
		return nil
	},
}

// fruitfuel metrics
var metricsCmd = &cobra.Command{
	Use:   "metrics [scenario.json...]",
	Short: "Replay sessions into one store and dump its Prometheus metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := kernel.Boot()
		if err != nil {
			return err
		}

		// Sessions share one store, so their actions interleave.
		pool := workerpool.New(workersFlag)
		for _, path := range args {
			if err := pool.Submit(func() error {
				s, err := testkit.LoadScenario(path)
				if err != nil {
					return err
				}
				_, err = testkit.Replay(app.Store, s)
				return err
			}); err != nil {
				return err
			}
		}
		if err := pool.Wait(); err != nil {
			return err
		}
		return metrics.WriteText(cmd.OutOrStdout(), app.Registry)
	},
}

func replay(out io.Writer, path string) (*kernel.App, error) {
	s, err := testkit.LoadScenario(path)
	if err != nil {
		return nil, err
	}

	opts := kernel.FromConfig()
	opts.EnforceStock = opts.EnforceStock || s.EnforceStock
	app, err := kernel.New(opts)
	if err != nil {
		return nil, err
	}

	results, err := testkit.Replay(app.Store, s)
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = fmt.Sprintf("rejected (%s): %v", testkit.ErrorKind(r.Err), r.Err)
		}
		fmt.Fprintf(out, "%2d  %-22s %s\n", r.Index+1, r.Action, status)
	}
	return app, err
}

func printSummary(out io.Writer, app *kernel.App) {
	st := app.Store.State()
	sum := pricing.Summarize(st.Cart, st.User)

	fmt.Fprintln(out)
	if u, ok := st.User.Get(); ok {
		plan := "no plan"
		if m, ok := u.Membership.Get(); ok {
			plan = m.Name
		}
		fmt.Fprintf(out, "user:     %s (%s)\n", u.Name, plan)
	} else {
		fmt.Fprintln(out, "user:     guest")
	}
	for _, item := range st.Cart {
		fmt.Fprintf(out, "  %-22s x%-3d %s\n", item.Product.Name, item.Quantity,
			pricing.FormatUSD(item.Product.Price*float64(item.Quantity)))
	}
	fmt.Fprintf(out, "subtotal: %s\n", pricing.FormatUSD(sum.Subtotal))
	if sum.DiscountPercent > 0 {
		fmt.Fprintf(out, "discount: -%s (%g%%)\n", pricing.FormatUSD(sum.DiscountAmount), sum.DiscountPercent)
	}
	fmt.Fprintf(out, "total:    %s\n", pricing.FormatUSD(sum.Total))
	fmt.Fprintf(out, "showcase: %d of %d products\n",
		len(catalog.VisibleProducts(st.Products, st.User)), len(st.Products))
	fmt.Fprintf(out, "version:  %d\n", app.Store.Version())
}

func init() {
	metricsCmd.Flags().IntVarP(&workersFlag, "workers", "w", 4, "Sessions replayed concurrently")
}
