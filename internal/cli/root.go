// Package cli implements the agencyflow command tree.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agencyflow/agencyflow/internal/daemon"
	"github.com/agencyflow/agencyflow/internal/domain"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "agencyflow",
	Short: "Content planning and finance tracking for social-media agencies",
	Long: `AgencyFlow keeps a local record of scheduled content and financial
entries per client brand, and serves calendar, list, dashboard, and ledger
views over it. State lives in a local database; nothing leaves the machine
except caption-generation requests.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.agencyflow/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the --config flag to a daemon configuration.
func loadConfig() (daemon.Config, error) {
	path := configPath
	if path == "" {
		path = daemon.DefaultPath()
	}
	return daemon.Load(path)
}

// terminalConfirmer asks the user on stdin before a destructive mutation.
func terminalConfirmer() domain.Confirmer {
	return domain.ConfirmFunc(func(_ context.Context, prompt string) bool {
		fmt.Fprintf(os.Stdout, "%s [y/N]: ", prompt)
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	})
}
