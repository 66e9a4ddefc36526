package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentfiles-labs/agentfiles/internal/manifest"
	"github.com/agentfiles-labs/agentfiles/internal/scanner"
	"github.com/spf13/cobra"
)

var initName string

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create an agentfiles.json manifest",
	Long: `Create an agentfiles.json in the given directory (default "."),
prepopulating the files list with any agent files discovered there.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Package name (defaults to the directory name)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving path %s: %w", dir, err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	manifestPath := filepath.Join(abs, manifest.FileName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists at %s", manifest.FileName, manifestPath)
	}

	name := initName
	if name == "" {
		name = scanner.InferName(abs)
	}

	files, err := scanner.Scan(abs)
	if err != nil {
		return err
	}

	m := &manifest.Manifest{
		Name:    name,
		Version: "0.1.0",
		Files:   files,
	}

	path, err := manifest.Save(m, abs)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s", path)
	if len(files) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " with %d discovered file(s)", len(files))
	}
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "Install with '%s install' or edit %s directly.\n",
		rootCmd.Name(), manifest.FileName)
	return nil
}
