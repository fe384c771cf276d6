package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agencyflow/agencyflow/internal/app/planner"
	"github.com/agencyflow/agencyflow/internal/domain"
	"github.com/agencyflow/agencyflow/internal/infra/sqlite"
)

// ─── Brand Commands ─────────────────────────────────────────────────────────
// Terminal-side client management. Same planner core as the HTTP API;
// confirmation happens on stdin.

func init() {
	rootCmd.AddCommand(brandCmd)
	brandCmd.AddCommand(brandListCmd)
	brandCmd.AddCommand(brandAddCmd)
	brandCmd.AddCommand(brandRemoveCmd)

	brandAddCmd.Flags().StringP("name", "n", "", "Brand display name")
	brandAddCmd.Flags().StringP("handle", "H", "", "Social handle (with or without @)")
}

var brandCmd = &cobra.Command{
	Use:   "brand",
	Short: "Manage client brands",
}

var brandListCmd = &cobra.Command{
	Use:   "list",
	Short: "List client brands",
	RunE:  runBrandList,
}

func runBrandList(cmd *cobra.Command, args []string) error {
	p, cleanup, err := openPlanner(terminalConfirmer())
	if err != nil {
		return err
	}
	defer cleanup()

	for _, b := range p.Snapshot().Brands {
		fmt.Fprintf(os.Stdout, "%s  %-24s %s\n", b.ID, b.Name, b.Handle)
	}
	return nil
}

var brandAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a client brand",
	RunE:  runBrandAdd,
}

func runBrandAdd(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	handle, _ := cmd.Flags().GetString("handle")

	p, cleanup, err := openPlanner(terminalConfirmer())
	if err != nil {
		return err
	}
	defer cleanup()

	brand, err := p.AddBrand(context.Background(), name, handle)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Added %s (%s)\n", brand.Name, brand.Handle)
	return nil
}

var brandRemoveCmd = &cobra.Command{
	Use:   "remove BRAND_ID",
	Short: "Remove a brand and all of its content and finances",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrandRemove,
}

func runBrandRemove(cmd *cobra.Command, args []string) error {
	p, cleanup, err := openPlanner(terminalConfirmer())
	if err != nil {
		return err
	}
	defer cleanup()

	if err := p.DeleteBrand(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Brand removed.")
	return nil
}

// openPlanner wires config, store, and planner for one-shot commands.
func openPlanner(confirm domain.Confirmer) (*planner.Planner, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := sqlite.Open(cfg.Storage.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open state store: %w", err)
	}
	p := planner.New(context.Background(), store, confirm)
	return p, func() { store.Close() }, nil
}
