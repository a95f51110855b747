package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/tsea/internal/config"
	"github.com/vvka-141/tsea/internal/files/enumerator"
	"github.com/vvka-141/tsea/internal/files/scanner"
	"github.com/vvka-141/tsea/internal/format"
	"github.com/vvka-141/tsea/internal/logging"
	"github.com/vvka-141/tsea/internal/services"
	"github.com/vvka-141/tsea/internal/tui"
	"github.com/vvka-141/tsea/pkg/tsea"
)

// Environment variables consulted when the matching flag is not set.
const (
	envDir   = "TSEA_DIR"
	envColor = "TSEA_COLOR"
)

type searchFlagValues struct {
	dir        string
	color      string
	noColor    bool
	configPath string
}

var searchFlags searchFlagValues

func init() {
	rootCmd.Flags().StringVarP(&searchFlags.dir, "dir", "d", "",
		"Directory whose .txt files are searched (default: $TSEA_DIR, config dir, or .)")
	rootCmd.Flags().StringVar(&searchFlags.color, "color", "",
		"Color output: auto|always|never\n"+
			"(default: $TSEA_COLOR, config color, or auto)")
	rootCmd.Flags().BoolVar(&searchFlags.noColor, "no-color", false,
		"Disable color output (same as --color never)")
	rootCmd.Flags().StringVar(&searchFlags.configPath, "config", "",
		"Path to a YAML config file (default: "+config.ConfigFileName+" if present)")

	_ = rootCmd.RegisterFlagCompletionFunc("dir", completeDirectories)
	_ = rootCmd.RegisterFlagCompletionFunc("color", completeColorModes)
}

// searchOptions is the fully resolved configuration of one search.
type searchOptions struct {
	dir       string
	colorMode tui.ColorMode
	palette   tui.Palette
	excludes  []string
}

// loadProjectConfig reads the config file named by --config, or the default
// config file when the flag is empty. A missing default file is not an error.
func loadProjectConfig(configPath string) (*config.ProjectConfig, error) {
	if configPath == "" {
		cfg, err := config.Load(".")
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return cfg, err
	}

	cfg, err := config.LoadFile(configPath)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("config file %s not found: %w", configPath, tsea.ErrInvalidConfig)
	}
	return cfg, err
}

// resolveSearchOptions merges flags, environment and project config.
// Precedence: flag > environment variable > config file > default.
func resolveSearchOptions(flags searchFlagValues, projectCfg *config.ProjectConfig) (searchOptions, error) {
	if projectCfg == nil {
		projectCfg = &config.ProjectConfig{}
	}

	opts := searchOptions{
		dir:      firstNonEmpty(flags.dir, os.Getenv(envDir), projectCfg.Dir, tsea.DefaultDirectory),
		excludes: projectCfg.Exclude,
	}

	colorMode, err := resolveColorMode(flags, projectCfg.Color)
	if err != nil {
		return searchOptions{}, err
	}
	opts.colorMode = colorMode

	palette, err := tui.DefaultPalette().WithOverrides(projectCfg.Palette.Path, projectCfg.Palette.Line)
	if err != nil {
		return searchOptions{}, fmt.Errorf("%v: %w", err, tsea.ErrInvalidConfig)
	}
	opts.palette = palette

	return opts, nil
}

func resolveColorMode(flags searchFlagValues, configured string) (tui.ColorMode, error) {
	if flags.noColor {
		if flags.color != "" && flags.color != string(tui.ColorNever) {
			return "", fmt.Errorf("--no-color cannot be combined with --color %s: %w", flags.color, tsea.ErrUsage)
		}
		return tui.ColorNever, nil
	}

	if flags.color != "" {
		mode, err := tui.ParseColorMode(flags.color)
		if err != nil {
			return "", fmt.Errorf("--color: %v: %w", err, tsea.ErrUsage)
		}
		return mode, nil
	}

	if env := os.Getenv(envColor); env != "" {
		mode, err := tui.ParseColorMode(env)
		if err != nil {
			return "", fmt.Errorf("%s: %v: %w", envColor, err, tsea.ErrInvalidConfig)
		}
		return mode, nil
	}

	mode, err := tui.ParseColorMode(configured)
	if err != nil {
		return "", fmt.Errorf("color: %v: %w", err, tsea.ErrInvalidConfig)
	}
	return mode, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	verbose := getVerboseFlag(cmd)

	_ = godotenv.Load()

	projectCfg, err := loadProjectConfig(searchFlags.configPath)
	if err != nil {
		return err
	}

	opts, err := resolveSearchOptions(searchFlags, projectCfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger := logging.NewConsoleLogger(cmd.ErrOrStderr(), verbose)
	formatter := format.New(format.Style{
		Enabled: opts.colorMode.Enabled(out),
		Palette: opts.palette,
	})

	searcher := services.NewSearchService(
		enumerator.NewEnumerator(opts.excludes),
		scanner.NewScanner(logger),
		logger,
	)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	// Stop between files on Ctrl-C
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	req := tsea.SearchRequest{Query: query, Dir: opts.dir}
	_, err = searcher.Search(ctx, req, func(rec tsea.MatchRecord) error {
		return formatter.Write(out, rec)
	})
	return err
}
