// Command pricingctl runs the browse filter and bulk list pricing rules offline.
package main

import (
	"fmt"
	"os"

	"resale/internal/currency"
	"resale/internal/domain/models"

	"github.com/spf13/cobra"
)

type options struct {
	currencyFile string
	currencyCode string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "pricingctl",
		Short:         "Build browse filters and preview bulk list edits",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.currencyFile, "currencies", "config/currencies.yml", "currency table (YAML)")
	root.PersistentFlags().StringVar(&opts.currencyCode, "currency", "SGD", "currency code")

	root.AddCommand(
		newFilterCmd(),
		newRangeCmd(opts),
		newPriceOptionsCmd(opts),
		newBulkPreviewCmd(),
	)
	return root
}

func (o *options) currency() (models.Currency, error) {
	table, err := currency.LoadTable(o.currencyFile)
	if err != nil {
		return models.Currency{}, err
	}
	cur, ok := table.ByCode(o.currencyCode)
	if !ok {
		return models.Currency{}, fmt.Errorf("unknown currency %q (have %v)", o.currencyCode, table.Codes())
	}
	return cur, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
