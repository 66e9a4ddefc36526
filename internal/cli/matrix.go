package cli

import (
	"fmt"
	"strings"

	"github.com/agentfiles-labs/agentfiles/internal/installer"
	"github.com/agentfiles-labs/agentfiles/internal/manifest"
	"github.com/spf13/cobra"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Show which file kinds each provider supports",
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := manifest.AllKinds()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-14s", "Provider")
		for _, kind := range kinds {
			fmt.Fprintf(out, "%-10s", kind)
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, strings.Repeat("-", 14+10*len(kinds)))

		for _, inst := range installer.All() {
			fmt.Fprintf(out, "%-14s", inst.Name())
			for _, kind := range kinds {
				mark := "-"
				if inst.SupportsKind(kind) {
					mark = "yes"
				}
				fmt.Fprintf(out, "%-10s", mark)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}
