package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentfiles-labs/agentfiles/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a package manifest against the schema",
	Long: `Validate an agentfiles.json document. path may be the manifest file
or a directory containing it (default ".").`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, manifest.FileName)
		}

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}

		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid.\n", path)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s has %d issue(s):\n\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			loc := issue.Path
			if loc == "" {
				loc = "/"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", loc, issue.Message)
		}
		return fmt.Errorf("%s: %w", path, manifest.ErrValidation)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
