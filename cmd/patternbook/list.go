// List command prints the demo catalog grouped by pattern family.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all demos grouped by pattern",
	Long: `List prints every registered demo grouped by its pattern family.

Example:
  patternbook list
  patternbook run strategy/payment`,
	Args: cobra.NoArgs,
	RunE: runListCmd,
}

func runListCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	s := styles()

	for _, pattern := range registry.Patterns() {
		fmt.Fprintln(out, s.Step(pattern))
		for _, d := range registry.ByPattern(pattern) {
			fmt.Fprintf(out, "  %-28s %s\n", d.Name, d.Title)
		}
		fmt.Fprintln(out)
	}
	return nil
}
