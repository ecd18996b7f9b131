package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/richclip/internal/scheme"
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List and manage color schemes",
	Long: `Schemes lists the available color schemes. Builtins ship with
richclip; user schemes are JSON files in the user scheme directory and
are added with the import subcommand.`,
	RunE: runSchemesList,
}

var schemesShowCmd = &cobra.Command{
	Use:   "show name",
	Short: "Print a scheme as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchemesShow,
}

var schemesExportCmd = &cobra.Command{
	Use:   "export name",
	Short: "Write a scheme to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchemesExport,
}

var schemesImportCmd = &cobra.Command{
	Use:   "import file.json",
	Short: "Install a scheme into the user scheme directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchemesImport,
}

func init() {
	rootCmd.AddCommand(schemesCmd)
	schemesCmd.AddCommand(schemesShowCmd)
	schemesCmd.AddCommand(schemesExportCmd)
	schemesCmd.AddCommand(schemesImportCmd)

	schemesExportCmd.Flags().StringP("output", "o", "", "output file (default: <name>.json)")
}

func runSchemesList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	builtins := scheme.NewRegistry()
	reg := schemeRegistry()
	for _, name := range reg.Names() {
		origin := "user"
		if _, ok := builtins.Get(name); ok {
			origin = "builtin"
		}
		fmt.Fprintf(out, "%-24s %s\n", name, origin)
	}
	return nil
}

func runSchemesShow(cmd *cobra.Command, args []string) error {
	s, err := resolveScheme(args[0])
	if err != nil {
		return err
	}
	data, err := scheme.Marshal(s)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runSchemesExport(cmd *cobra.Command, args []string) error {
	s, err := resolveScheme(args[0])
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path = schemeSlug(s.Name) + ".json"
	}
	if err := scheme.SaveFile(path, s); err != nil {
		return fmt.Errorf("writing scheme: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func runSchemesImport(cmd *cobra.Command, args []string) error {
	s, err := scheme.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("loading scheme: %w", err)
	}
	dir := userSchemeDir()
	if dir == "" {
		return errors.New("no user config directory available")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating scheme directory: %w", err)
	}
	dst := filepath.Join(dir, schemeSlug(s.Name)+".json")
	if err := scheme.SaveFile(dst, s); err != nil {
		return fmt.Errorf("writing scheme: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported scheme %q to %s\n", s.Name, dst)
	return nil
}

// schemeSlug turns a scheme display name into a file name.
func schemeSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "scheme"
	}
	return slug
}
