package cli

import (
	"fmt"

	"github.com/agentfiles-labs/agentfiles/internal/installer"
	"github.com/agentfiles-labs/agentfiles/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	targetProvider string
	targetScope    string
	targetRoot     string
)

var targetCmd = &cobra.Command{
	Use:   "target <kind>",
	Short: "Print the target directory for a file kind",
	Long: `Resolve the directory a file kind installs into for a given provider
and scope, without touching the filesystem.

Example:
  agentfiles target skill --scope global
  agentfiles target command --provider cursor --root /path/to/project`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := manifest.ParseKind(args[0])
		if !ok {
			return fmt.Errorf("unknown file kind %q, expected skill, agent, or command", args[0])
		}

		inst, ok := installer.Parse(targetProvider)
		if !ok {
			return fmt.Errorf("unknown provider %q, expected one of: %s", targetProvider, providerList())
		}

		scope, ok := installer.ParseScope(targetScope)
		if !ok {
			return fmt.Errorf("unknown scope %q, expected global or local", targetScope)
		}

		root, err := expandRoot(targetRoot)
		if err != nil {
			return err
		}

		dir, err := inst.TargetDir(scope, kind, root)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	},
}

func init() {
	targetCmd.Flags().StringVarP(&targetProvider, "provider", "p", "claude-code", "Target provider")
	targetCmd.Flags().StringVarP(&targetScope, "scope", "s", "local", `Install scope: "global" or "local"`)
	targetCmd.Flags().StringVarP(&targetRoot, "root", "r", "", "Project root for local scope (defaults to the current directory)")
	rootCmd.AddCommand(targetCmd)
}
