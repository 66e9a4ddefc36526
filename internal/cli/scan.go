package cli

import (
	"fmt"

	"github.com/agentfiles-labs/agentfiles/internal/scanner"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "List agent files discovered in a directory",
	Long: `Scan a directory (default ".") for agent files under known provider
prefixes (.claude/, .opencode/, ...) and bare skills/, commands/, and
agents/ directories.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		files, err := scanner.Scan(path)
		if err != nil {
			return err
		}

		if len(files) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No agent files found in %s\n", path)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Found %d agent file(s):\n\n", len(files))
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "  [%-7s] %s\n", f.Kind, f.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
