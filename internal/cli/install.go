package cli

import (
	"fmt"
	"strings"

	"github.com/agentfiles-labs/agentfiles/internal/config"
	"github.com/agentfiles-labs/agentfiles/internal/installer"
	"github.com/agentfiles-labs/agentfiles/internal/manifest"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

var (
	installScope     string
	installRoot      string
	installProviders []string
	installStrategy  string
)

var installCmd = &cobra.Command{
	Use:   "install [path]",
	Short: "Install agent files from a package manifest",
	Long: `Install the agent files declared in agentfiles.json into each target
tool's directory convention. path may be the manifest document or the
package directory containing it (default ".").

Example:
  agentfiles install
  agentfiles install ./my-package --scope global
  agentfiles install --provider claude-code --provider cursor --strategy link`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installScope, "scope", "s", "local", `Install scope: "global" or "local"`)
	installCmd.Flags().StringVarP(&installRoot, "root", "r", "", "Project root for local scope (defaults to the current directory)")
	installCmd.Flags().StringSliceVarP(&installProviders, "provider", "p", nil, "Target providers (default: configured providers, or all)")
	installCmd.Flags().StringVar(&installStrategy, "strategy", "", `Placement override for copy-default mappings: "copy" or "link"`)
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	if len(m.Files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No files declared in %s. Add mappings or run '%s scan' to discover some.\n",
			manifest.FileName, rootCmd.Name())
		return nil
	}

	scope, ok := installer.ParseScope(installScope)
	if !ok {
		return fmt.Errorf("unknown scope %q, expected global or local", installScope)
	}

	root, err := expandRoot(installRoot)
	if err != nil {
		return err
	}

	providers, err := resolveProviders(installProviders)
	if err != nil {
		return err
	}

	strategyName := installStrategy
	if strategyName == "" {
		strategyName = config.DefaultStrategy()
	}
	if strategyName != "" {
		strategy, ok := manifest.ParseStrategy(strategyName)
		if !ok {
			return fmt.Errorf("unknown strategy %q, expected copy or link", strategyName)
		}
		applyStrategyOverride(m, strategy)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installing %s (v%s): %d file(s)\n\n", m.Name, m.Version, len(m.Files))

	placed := 0
	unchanged := 0

	for _, inst := range providers {
		filtered, skipped := filterSupported(m, inst)
		for _, kind := range skipped {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s: no directory for %s files, skipped\n", inst.Name(), kind)
		}
		if len(filtered.Files) == 0 {
			continue
		}

		report, err := inst.Install(filtered, scope, root)
		if err != nil {
			return err
		}

		for _, r := range report.Results {
			note := ""
			if r.Unchanged {
				note = " (unchanged)"
				unchanged++
			} else {
				placed++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s: %s -> %s (%s)%s\n",
				inst.Name(), r.Source, r.Target, r.Strategy, note)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout())
	switch {
	case placed == 0 && unchanged == 0:
		fmt.Fprintln(cmd.OutOrStdout(), "No files installed (no compatible provider/kind combinations found).")
	case placed == 0:
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Everything already up to date (%d unchanged).\n", unchanged)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Installed %d file(s).", placed)
		if unchanged > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), " %d unchanged.", unchanged)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

// expandRoot expands a user-supplied project root ("~/..." forms included).
// An empty root stays empty so scope defaults apply downstream.
func expandRoot(root string) (string, error) {
	if root == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(root)
	if err != nil {
		return "", fmt.Errorf("expanding root %s: %w", root, err)
	}
	return expanded, nil
}

// resolveProviders maps provider names to installers. Precedence: explicit
// flags, then the configured default, then all known providers.
func resolveProviders(names []string) ([]installer.Installer, error) {
	if len(names) == 0 {
		names = config.DefaultProviders()
	}
	if len(names) == 0 {
		return installer.All(), nil
	}

	providers := make([]installer.Installer, 0, len(names))
	for _, name := range names {
		inst, ok := installer.Parse(name)
		if !ok {
			return nil, fmt.Errorf("unknown provider %q, expected one of: %s",
				name, providerList())
		}
		providers = append(providers, inst)
	}
	return providers, nil
}

// providerList renders the canonical provider names for error messages.
func providerList() string {
	return strings.Join(installer.Names(), ", ")
}

// applyStrategyOverride upgrades copy-default mappings to the given
// strategy. Mappings that explicitly declare link are left alone.
func applyStrategyOverride(m *manifest.Manifest, strategy manifest.FileStrategy) {
	for i := range m.Files {
		if m.Files[i].EffectiveStrategy() == manifest.StrategyCopy {
			m.Files[i].Strategy = strategy
		}
	}
}

// filterSupported returns a manifest copy holding only the mappings the
// installer supports, plus the kinds that were dropped.
func filterSupported(m *manifest.Manifest, inst installer.Installer) (*manifest.Manifest, []manifest.FileKind) {
	filtered := *m
	filtered.Files = nil

	var skipped []manifest.FileKind
	seen := make(map[manifest.FileKind]bool)

	for _, fm := range m.Files {
		if inst.SupportsKind(fm.Kind) {
			filtered.Files = append(filtered.Files, fm)
			continue
		}
		if !seen[fm.Kind] {
			seen[fm.Kind] = true
			skipped = append(skipped, fm.Kind)
		}
	}
	return &filtered, skipped
}
