package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/richclip/internal/highlight"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Long: `Languages lists the built-in lexers with the file extensions
each one claims. Files with other extensions export unhighlighted.`,
	RunE: runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	reg := highlight.DefaultRegistry()
	for _, lang := range reg.Languages() {
		l, ok := reg.GetByLanguage(lang)
		if !ok {
			continue
		}
		fmt.Fprintf(out, "%-12s %s\n", lang, strings.Join(l.FileExtensions(), " "))
	}
	return nil
}
