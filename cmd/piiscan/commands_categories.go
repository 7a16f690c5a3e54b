package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/piiscan/internal/types"
)

func newCategoriesCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List PII categories and whether they are enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, category := range types.AllCategories() {
				mark := " "
				if state.cfg.CategoryEnabled(category) {
					mark = "x"
				}
				fmt.Fprintf(out, "[%s] %-15s %s\n", mark, category, category.Label())
			}
			if state.cfg.CategoryEnabled(types.CategoryStreetAddress) {
				fmt.Fprintf(out, "street_suffixes=%s\n", strings.Join(state.cfg.StreetSuffixes, ","))
			}
			return nil
		},
	}
}
