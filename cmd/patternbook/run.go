// Run command executes one or more demos by name.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/patternbook/internal/demo"
)

// flagRunAll runs the whole catalog in registration order.
var flagRunAll bool

var runCmd = &cobra.Command{
	Use:   "run [demo...]",
	Short: "Run one or more demos by name",
	Long: `Run executes demos by name, in the order given. Demo names are
<pattern>/<example> as printed by "patternbook list".

Example:
  patternbook run strategy/payment
  patternbook run state/vending-machine observer/stock-market
  patternbook run --all`,
	RunE: runRunCmd,
}

func init() {
	runCmd.Flags().BoolVar(&flagRunAll, "all", false, "run every demo in order")
}

func runRunCmd(cmd *cobra.Command, args []string) error {
	r := newRunner(cmd)

	if flagRunAll {
		if len(args) > 0 {
			return fmt.Errorf("--all takes no demo names")
		}
		return registry.RunAll(r)
	}

	if len(args) == 0 {
		return fmt.Errorf("no demos specified; valid names:\n  %s",
			strings.Join(registry.Names(), "\n  "))
	}

	for _, name := range args {
		if err := registry.Run(r, name); err != nil {
			if errors.Is(err, demo.ErrDemoNotFound) {
				return fmt.Errorf("%w; valid names:\n  %s",
					err, strings.Join(registry.Names(), "\n  "))
			}
			return err
		}
		fmt.Fprintln(r.Out)
	}
	return nil
}
