package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/fruitfuel/app/catalog"
	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/app/pricing"
	"github.com/shashiranjanraj/fruitfuel/internal/kernel"
)

var (
	searchFlag   string
	categoryFlag string
	planFlag     string
)

// fruitfuel catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List products",
	Long: `Without --plan, lists the catalogue filtered by --search and --category.
With --plan, logs in a demo shopper on that plan and shows their showcase
with member prices.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := kernel.Boot()
		if err != nil {
			return err
		}

		products := app.Store.State().Products
		if planFlag != "" {
			if _, err := app.Auth.Login("", ""); err != nil {
				return err
			}
			if _, err := subscribeByType(app, models.MembershipType(planFlag)); err != nil {
				return err
			}
			products = catalog.VisibleProducts(products, app.Store.State().User)
		}
		products = catalog.Filter(products, searchFlag, categoryFlag)

		user := app.Store.State().User
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tYOUR PRICE\tSTOCK")
		for _, p := range products {
			stock := "in stock"
			if !p.InStock {
				stock = "sold out"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s/%s\t%s\t%s\n",
				p.ID, p.Name, p.Category,
				pricing.FormatUSD(p.Price), p.Unit,
				pricing.FormatUSD(pricing.DiscountedUnitPrice(p, user)),
				stock,
			)
		}
		return w.Flush()
	},
}

// fruitfuel plans
var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List membership plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := kernel.Boot()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPLAN\tTYPE\tPRICE\tDISCOUNT\tDELIVERIES/WEEK")
		for _, m := range app.Memberships.Plans() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g%%\t%d\n",
				m.ID, m.Name, m.Type, pricing.FormatUSD(m.Price), m.Discount, m.DeliveriesPerWeek)
		}
		return w.Flush()
	},
}

func subscribeByType(app *kernel.App, t models.MembershipType) (models.Membership, error) {
	for _, m := range app.Memberships.Plans() {
		if m.Type == t {
			return app.Memberships.Subscribe(m.ID, nowFunc())
		}
	}
	return models.Membership{}, fmt.Errorf("no %q plan; want daily, weekly or monthly", t)
}

func init() {
	catalogCmd.Flags().StringVarP(&searchFlag, "search", "s", "", "Match product name or description")
	catalogCmd.Flags().StringVarP(&categoryFlag, "category", "c", models.AllCategories, "Category id (all, berries, tropical, citrus, seasonal)")
	catalogCmd.Flags().StringVarP(&planFlag, "plan", "p", "", "Show the showcase for a daily, weekly or monthly member")
}
