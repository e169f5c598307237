package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"resale/internal/browse"
	"resale/internal/bulklist"
	"resale/internal/currency"
	"resale/internal/domain/models"
	"resale/internal/utils"

	"github.com/spf13/cobra"
)

func newFilterCmd() *cobra.Command {
	var withDefaults bool
	cmd := &cobra.Command{
		Use:   "filter [json|-]",
		Short: "Print the index filter string for a filter state",
		Long:  "Reads a filter state as a JSON object (argument, or stdin with -) and prints the filter string.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readArg(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			var state browse.FilterState
			if err := json.Unmarshal(raw, &state); err != nil {
				return fmt.Errorf("parse filters: %w", err)
			}
			if withDefaults {
				if state, err = browse.DefaultFilters().Merge(state); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), browse.BuildFilterString(state))
			return nil
		},
	}
	cmd.Flags().BoolVar(&withDefaults, "defaults", false, "lay the state over the default filters")
	return cmd
}

func newRangeCmd(opts *options) *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "range <from> <to>",
		Short: "Print a lowest_listing_price range filter",
		Long:  "Bounds of 0 are open. With --local the bounds are in --currency and converted to base first.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("from: %w", err)
			}
			to, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("to: %w", err)
			}
			if local {
				cur, err := opts.currency()
				if err != nil {
					return err
				}
				from, to = currency.ToBaseCurrency(from, cur), currency.ToBaseCurrency(to, cur)
			}
			fmt.Fprintln(cmd.OutOrStdout(), browse.BuildRangeFilterString(from, to))
			return nil
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "bounds are in the selected currency")
	return cmd
}

func newPriceOptionsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "price-options",
		Short: "Print the browse price buckets for --currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cur, err := opts.currency()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, o := range browse.PriceFilterOptions(cur) {
				fmt.Fprintf(w, "%s\t%s\n", o.Name, o.Value)
			}
			return w.Flush()
		},
	}
}

func newBulkPreviewCmd() *cobra.Command {
	var (
		option string
		value  float64
		ids    string
	)
	cmd := &cobra.Command{
		Use:   "bulk-preview <lists.json|->",
		Short: "Preview a bulk list edit over offer lists read from JSON",
		Long:  "Reads a JSON array of offer lists (with currency and product_stat) and prints the new prices. Exits non-zero when any list would be invalid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edit, err := bulklist.ParseEdit(option, value)
			if err != nil {
				return err
			}
			raw, err := readArg(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			var lists []models.OfferList
			if err := json.Unmarshal(raw, &lists); err != nil {
				return fmt.Errorf("parse lists: %w", err)
			}
			if ids != "" {
				keep, err := utils.ParseIDList(ids)
				if err != nil {
					return err
				}
				lists = selectLists(lists, keep)
			}
			return printPreview(cmd.OutOrStdout(), bulklist.NewCalculator(), lists, edit)
		},
	}
	cmd.Flags().StringVar(&option, "option", "", "edit option (increaseByValue, decreaseByValue, beatLowestListByValue, setToValue)")
	cmd.Flags().Float64Var(&value, "value", 0, "edit amount in the lists' currency")
	cmd.Flags().StringVar(&ids, "ids", "", "only these list ids (comma separated)")
	_ = cmd.MarkFlagRequired("option")
	return cmd
}

func printPreview(out io.Writer, calc bulklist.Calculator, lists []models.OfferList, edit bulklist.Edit) error {
	invalid := map[int64]bool{}
	for _, l := range calc.InvalidLists(lists, edit) {
		invalid[l.ID] = true
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCT\tSIZE\tOLD\tNEW\t")
	for i, u := range calc.UpdatedLists(lists, edit) {
		mark := ""
		if invalid[u.ID] {
			mark = "below minimum " + currency.DisplayPrecise(lists[i].Currency.MinListPrice, lists[i].Currency)
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n", u.ID, u.ProductID, u.Size,
			currency.DisplayPrecise(u.OldPrice, lists[i].Currency),
			currency.DisplayPrecise(u.NewPrice, lists[i].Currency),
			mark)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%d of %d lists would be invalid", len(invalid), len(lists))
	}
	return nil
}

func selectLists(lists []models.OfferList, ids []int64) []models.OfferList {
	want := map[int64]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := []models.OfferList{}
	for _, l := range lists {
		if want[l.ID] {
			out = append(out, l)
		}
	}
	return out
}

func readArg(stdin io.Reader, arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(stdin)
	}
	if len(arg) > 0 && (arg[0] == '{' || arg[0] == '[') {
		return []byte(arg), nil
	}
	return os.ReadFile(arg)
}
