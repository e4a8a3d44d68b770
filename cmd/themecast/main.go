package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajramos/themecast/internal/config"
	"github.com/ajramos/themecast/internal/palette"
	"github.com/ajramos/themecast/internal/preview"
	"github.com/ajramos/themecast/internal/render"
	"github.com/ajramos/themecast/internal/services"
	"github.com/ajramos/themecast/internal/version"
)

func main() {
	// Essential command line flags only (GNU-style double dashes)
	themeFlag := flag.String("theme", "", "Theme id or filename to resolve (default: the configured default theme)")
	formatFlag := flag.String("format", "css", "Output format: css, json or summary")
	selectorFlag := flag.String("selector", "", "Selector scoping stylesheet output (default: the configured selector)")
	listFlag := flag.Bool("list", false, "List available themes and exit")
	checkFlag := flag.Bool("check", false, "Print a contrast report for the resolved palette and exit")
	previewFlag := flag.Bool("preview", false, "Open an interactive palette preview")
	configPathFlag := flag.String("config", "", "Path to JSON configuration file (default: ~/.config/themecast/config.json)")
	versionFlag := flag.Bool("version", false, "Show version information and exit")

	// Override flag usage text to show clean, simple usage
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n\n", version.GetVersionString())
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s                           # Stylesheet for the default theme\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --theme dracula           # Stylesheet for a specific theme\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --format summary          # Aligned palette summary\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --theme dracula --check   # Contrast report\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --preview                 # Interactive palette preview\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --list                    # List available themes\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprintf(os.Stderr, "  --theme string\n        %s\n", "Theme id or filename to resolve (default: the configured default theme)")
		fmt.Fprintf(os.Stderr, "  --format string\n        %s\n", "Output format: css, json or summary")
		fmt.Fprintf(os.Stderr, "  --selector string\n        %s\n", "Selector scoping stylesheet output (default: the configured selector)")
		fmt.Fprintf(os.Stderr, "  --list\n        %s\n", "List available themes and exit")
		fmt.Fprintf(os.Stderr, "  --check\n        %s\n", "Print a contrast report for the resolved palette and exit")
		fmt.Fprintf(os.Stderr, "  --preview\n        %s\n", "Open an interactive palette preview")
		fmt.Fprintf(os.Stderr, "  --config string\n        %s\n", "Path to JSON configuration file (default: ~/.config/themecast/config.json)")
		fmt.Fprintf(os.Stderr, "  --version\n        %s\n\n", "Show version information and exit")
		fmt.Fprintf(os.Stderr, "Environment Variables:\n")
		fmt.Fprintf(os.Stderr, "  THEMECAST_CONFIG   Override default config file path\n\n")
		fmt.Fprintf(os.Stderr, "For theme directories, default theme and selector, edit the config file.\n")
	}

	flag.Parse()

	// Handle version flag
	if *versionFlag {
		fmt.Println(version.GetDetailedVersionString())
		return
	}

	// Load configuration with smart defaults and environment variable support
	configPath := config.ConfigPath(expandPath(*configPathFlag))

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: could not load configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	logger, closeLogger := newLogger(cfg.LogFile)
	defer closeLogger()

	svc := services.NewThemeService(expandPath(cfg.ThemesDir), expandPath(cfg.CustomThemesDir), nil)
	svc.SetLogger(logger)

	ctx := context.Background()

	if *listFlag {
		metas, err := svc.ListAvailableThemes(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		renderThemeList(os.Stdout, metas)
		return
	}

	themeID := themeIDFromArg(*themeFlag)
	if themeID == "" {
		themeID = cfg.DefaultTheme
	}

	resolved, err := svc.ResolveTheme(ctx, themeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *previewFlag {
		if err := preview.Run(resolved); err != nil {
			fmt.Fprintf(os.Stderr, "Error running preview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *checkFlag {
		fmt.Print(render.ContrastReport(resolved))
		return
	}

	selector := *selectorFlag
	if selector == "" {
		selector = cfg.Selector
	}

	if err := writeOutput(os.Stdout, resolved, *formatFlag, selector); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// themeIDFromArg accepts either a bare theme id or a theme filename and
// returns the id the theme service expects.
func themeIDFromArg(arg string) string {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".json", ".yaml", ".yml":
		return strings.TrimSuffix(arg, filepath.Ext(arg))
	}
	return arg
}

// renderThemeList writes one line per discovered theme.
func renderThemeList(w io.Writer, metas []palette.Meta) {
	fmt.Fprintf(w, "%-24s %-6s %-8s %s\n", "ID", "KIND", "ORIGIN", "NAME")
	for _, m := range metas {
		fmt.Fprintf(w, "%-24s %-6s %-8s %s\n", m.ID, m.Kind, m.Origin, m.Label)
	}
}

// writeOutput renders the resolved theme in the requested format.
func writeOutput(w io.Writer, resolved *palette.ResolvedTheme, format, selector string) error {
	switch format {
	case "css":
		fmt.Fprintln(w, resolved.Palette.Stylesheet(selector))
	case "json":
		data, err := json.MarshalIndent(resolved, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode theme as JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "summary":
		fmt.Fprint(w, render.Summary(resolved))
	default:
		return fmt.Errorf("unknown format %q (expected css, json or summary)", format)
	}
	return nil
}

// newLogger builds the diagnostic logger, appending to the configured log
// file when one is set and falling back to stderr otherwise.
func newLogger(logFile string) (*log.Logger, func()) {
	if logFile != "" {
		path := expandPath(logFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				return log.New(f, "[themecast] ", log.LstdFlags|log.Lmicroseconds), func() { _ = f.Close() }
			}
		}
		log.Printf("Warning: could not open log file %s, logging to stderr", path)
	}
	return log.New(os.Stderr, "[themecast] ", log.LstdFlags|log.Lmicroseconds), func() {}
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}
