package main

import (
	"errors"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/richclip/internal/log"
	"github.com/dshills/richclip/internal/richtext"
	"github.com/dshills/richclip/internal/serialize"
	"github.com/dshills/richclip/internal/serialize/ansi"
	"github.com/dshills/richclip/internal/serialize/html"
	"github.com/dshills/richclip/internal/serialize/pack"
	"github.com/dshills/richclip/internal/serialize/rtf"
	"github.com/dshills/richclip/internal/serialize/script"
)

var exportCmd = &cobra.Command{
	Use:   "export [flags] file",
	Short: "Export styled text from a source file",
	Long: `Export highlights the selected byte ranges of a file (or stdin
with "-") and writes them as one styled artifact. Disjoint selections
are stitched together; a single selection has its common leading
indentation stripped. Pass --plain, or set export.enabled = false in
the settings file, to get the flattened text without styling.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	f := exportCmd.Flags()
	f.StringP("format", "f", "", "output format (html|rtf|ansi|pack)")
	f.StringP("output", "o", "", "write to a file instead of stdout")
	f.StringP("language", "l", "", "language lexer (default: by file name)")
	f.StringP("scheme", "s", "", "color scheme name or JSON file")
	f.StringArrayP("selection", "r", nil, "byte range start:end (repeatable; default: whole file)")
	f.StringArray("mark", nil, "overlay range start:end[:attrs] (repeatable)")
	f.Bool("strip-indents", true, "strip common leading indentation")
	f.Bool("plain", false, "flattened text only, no styling")
	f.String("color-profile", "", "ansi palette (truecolor|ansi256|ansi|ascii)")
	f.String("font", "", "font family recorded in the artifact")
	f.Int("font-size", 0, "font size in points")
	f.String("script", "", "Lua serializer file (overrides --format)")
	f.Bool("standalone", false, "wrap HTML output in a complete document")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	text, err := loadText(args[0])
	if err != nil {
		return err
	}

	selections, _ := flags.GetStringArray("selection")
	carets, err := parseSelections(selections, text)
	if err != nil {
		return err
	}

	plain, _ := flags.GetBool("plain")
	plain = plain || !cfg.Export.Enabled

	marks, _ := flags.GetStringArray("mark")
	model, err := parseMarks(marks, text)
	if err != nil {
		return err
	}

	language, _ := flags.GetString("language")
	lexer, err := resolveLexer(language, args[0])
	if err != nil {
		return err
	}
	if plain {
		lexer = nil
		model = nil
	}

	schemeName, _ := flags.GetString("scheme")
	if schemeName == "" {
		schemeName = cfg.Export.Scheme
	}
	base, err := resolveScheme(schemeName)
	if err != nil {
		return err
	}
	family, _ := flags.GetString("font")
	size, _ := flags.GetInt("font-size")
	sch := exportScheme(base, cfg.Fonts, family, size)

	strip := cfg.Export.StripIndents
	if flags.Changed("strip-indents") {
		strip, _ = flags.GetBool("strip-indents")
	}

	exporter := richtext.NewExporter(
		richtext.WithScheme(sch),
		richtext.WithResolver(buildResolver(cfg.Fonts)),
		richtext.WithStripIndents(strip),
		richtext.WithLogger(log.L(ctx)),
	)
	info, err := exporter.Export(text, carets, lexer, model)
	if err != nil {
		return err
	}
	if info == nil {
		return errors.New("rectangular block selections cannot be exported")
	}

	outPath, _ := flags.GetString("output")
	if plain {
		return writeOutput(outPath, func(w io.Writer) error {
			_, err := io.WriteString(w, info.Text)
			return err
		})
	}

	ser, err := selectSerializer(cmd)
	if err != nil {
		return err
	}
	if ser.Format() == "pack" && (outPath == "" || outPath == "-") && isTerminal(os.Stdout) {
		return errors.New("refusing to write msgpack to a terminal, use -o")
	}

	log.L(ctx).Debug("serializing artifact",
		zap.String("format", ser.Format()),
		zap.String("scheme", sch.Name),
		zap.Int("runs", len(info.Runs)),
		zap.Int("bytes", len(info.Text)))
	return writeOutput(outPath, func(w io.Writer) error {
		return ser.Serialize(w, info)
	})
}

// selectSerializer picks the output serializer from the flags and
// settings: a Lua script when given, otherwise the named format from
// the registry.
func selectSerializer(cmd *cobra.Command) (serialize.Serializer, error) {
	flags := cmd.Flags()
	scriptPath, _ := flags.GetString("script")
	if scriptPath != "" {
		return script.NewFromFile(scriptPath)
	}

	profileName, _ := flags.GetString("color-profile")
	if profileName == "" {
		profileName = cfg.Export.ColorProfile
	}
	profile := termenv.TrueColor
	if profileName != "" {
		var err error
		profile, err = ansi.ParseProfile(profileName)
		if err != nil {
			return nil, err
		}
	}

	standalone, _ := flags.GetBool("standalone")
	reg := serialize.NewRegistry()
	reg.Register(html.New(html.WithStandalone(standalone)))
	reg.Register(rtf.New())
	reg.Register(ansi.New(ansi.WithProfile(profile)))
	reg.Register(pack.New())

	format, _ := flags.GetString("format")
	if format == "" {
		format = cfg.Export.Format
	}
	if format == "" {
		format = "html"
	}
	return reg.Lookup(format)
}
