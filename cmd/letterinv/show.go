package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/tien-han/LetterInventory/inventory"
)

var letterStyle = lipgloss.NewStyle().Bold(true)

func newShowCmd() *cobra.Command {
	var phrase bool

	cmd := &cobra.Command{
		Use:   "show TEXT...",
		Short: "Print the inventory of each argument",
		Long: `Print the bracketed inventory and letter count of each argument.

Without --phrase every character must be a letter, so "Washington State"
is rejected because of the space.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, text := range args {
				var (
					inv *inventory.LetterInventory
					err error
				)
				if phrase {
					inv, err = inventory.FromPhrase(text)
				} else {
					inv, err = inventory.FromText(text)
				}
				if err != nil {
					return fmt.Errorf("%q: %w", text, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", inv, inv.Size())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&phrase, "phrase", "p", false, "skip characters that are not letters instead of failing")

	return cmd
}

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count PHRASE...",
		Short: "Print a table of the letters used by a phrase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := inventory.FromPhrase(strings.Join(args, " "))
			if err != nil {
				return err
			}

			tbl := table.New("LETTER", "COUNT").WithWriter(cmd.OutOrStdout()).WithPadding(2)
			tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
				return letterStyle.Render(fmt.Sprintf(format, vals...))
			})
			tbl.WithWidthFunc(lipgloss.Width)

			for i, count := range inv.Counts() {
				if count > 0 {
					tbl.AddRow(string(inventory.Letter(i)), count)
				}
			}
			tbl.Print()
			fmt.Fprintf(cmd.OutOrStdout(), "%d letters\n", inv.Size())
			return nil
		},
	}
}

func newArithCmd(op string) *cobra.Command {
	short := "Add the letters of two phrases"
	if op == "minus" {
		short = "Remove the letters of the second phrase from the first"
	}

	return &cobra.Command{
		Use:   op + " PHRASE PHRASE",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := inventory.FromPhrase(args[0])
			if err != nil {
				return err
			}
			b, err := inventory.FromPhrase(args[1])
			if err != nil {
				return err
			}

			var result *inventory.LetterInventory
			if op == "minus" {
				result, err = a.Minus(b)
			} else {
				result, err = a.Plus(b)
			}
			if err != nil {
				return fmt.Errorf("%q %s %q: %w", args[0], op, args[1], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
