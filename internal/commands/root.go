package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Stefasaur/bank-bee-csv/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bankbee",
		Short:   "Parse and summarize bank statement exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newBanksCommand())
	rootCmd.AddCommand(newTransactionsCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}
