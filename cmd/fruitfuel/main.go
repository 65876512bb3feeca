package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/fruitfuel/config"
	"github.com/shashiranjanraj/fruitfuel/pkg/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "fruitfuel",
	Short:         "FruitFuel storefront core",
	Long:          "Browse the catalogue, list plans and replay scripted shopping sessions against the storefront state store.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		logger.Use(logger.New(cmd.ErrOrStderr(), config.AppEnv(), config.LogLevel()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(metricsCmd)
}
