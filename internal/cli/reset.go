package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resetMonthCmd)
}

var resetMonthCmd = &cobra.Command{
	Use:   "reset-month",
	Short: "Clear all scheduled content for a fresh month",
	Long: `Clear the entire content collection. Brands and financial history
remain untouched. This cannot be undone, so it asks before acting.`,
	RunE: runResetMonth,
}

func runResetMonth(cmd *cobra.Command, args []string) error {
	p, cleanup, err := openPlanner(terminalConfirmer())
	if err != nil {
		return err
	}
	defer cleanup()

	if err := p.ResetMonth(context.Background()); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Content calendar cleared.")
	return nil
}
