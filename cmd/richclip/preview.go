package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/richclip/internal/engine/caret"
	"github.com/dshills/richclip/internal/log"
	"github.com/dshills/richclip/internal/preview"
	"github.com/dshills/richclip/internal/richtext"
	"github.com/dshills/richclip/internal/serialize/pack"
)

var previewCmd = &cobra.Command{
	Use:   "preview [flags] file",
	Short: "View a styled artifact in the terminal",
	Long: `Preview renders an exported msgpack artifact (.mp) in the
terminal. Any other file is exported on the fly and shown highlighted.
While watching, the view reloads whenever the file changes on disk;
press r to reload by hand and q to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	f := previewCmd.Flags()
	f.StringP("language", "l", "", "language lexer (default: by file name)")
	f.StringP("scheme", "s", "", "color scheme name or JSON file")
	f.Bool("artifact", false, "treat the file as a msgpack artifact regardless of extension")
	f.Bool("watch", true, "reload when the file changes")
	f.Int("tab-width", 4, "columns per tab stop")
}

func runPreview(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return errors.New("preview needs a terminal")
	}
	path := args[0]
	if path == "-" {
		return errors.New("preview cannot read stdin")
	}
	flags := cmd.Flags()

	asArtifact, _ := flags.GetBool("artifact")
	asArtifact = asArtifact || strings.EqualFold(filepath.Ext(path), ".mp")

	var loader func() (*richtext.SyntaxInfo, error)
	if asArtifact {
		loader = func() (*richtext.SyntaxInfo, error) {
			return decodeArtifact(path)
		}
	} else {
		language, _ := flags.GetString("language")
		lexer, err := resolveLexer(language, path)
		if err != nil {
			return err
		}
		schemeName, _ := flags.GetString("scheme")
		if schemeName == "" {
			schemeName = cfg.Export.Scheme
		}
		base, err := resolveScheme(schemeName)
		if err != nil {
			return err
		}
		sch := exportScheme(base, cfg.Fonts, "", 0)
		exporter := richtext.NewExporter(
			richtext.WithScheme(sch),
			richtext.WithResolver(buildResolver(cfg.Fonts)),
			richtext.WithStripIndents(false),
			richtext.WithLogger(log.L(cmd.Context())),
		)
		loader = func() (*richtext.SyntaxInfo, error) {
			text, err := loadText(path)
			if err != nil {
				return nil, err
			}
			carets := caret.NewSet(caret.FromRange(text.FullRange()))
			return exporter.Export(text, carets, lexer, nil)
		}
	}

	info, err := loader()
	if err != nil {
		return err
	}

	tabWidth, _ := flags.GetInt("tab-width")
	opts := []preview.Option{
		preview.WithTitle(filepath.Base(path)),
		preview.WithTabWidth(tabWidth),
		preview.WithLoader(loader),
	}
	watch := cfg.Preview.LiveReload
	if flags.Changed("watch") {
		watch, _ = flags.GetBool("watch")
	}
	if watch {
		opts = append(opts, preview.WithLiveReload(path))
	}

	log.L(cmd.Context()).Debug("starting preview",
		zap.String("path", path),
		zap.Bool("artifact", asArtifact),
		zap.Bool("watch", watch))
	return preview.New(info, opts...).Run(cmd.Context())
}

// decodeArtifact reads one msgpack artifact from disk.
func decodeArtifact(path string) (*richtext.SyntaxInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening artifact: %w", err)
	}
	defer f.Close()
	info, err := pack.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}
