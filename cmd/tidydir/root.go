package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tidydir/pkg/config"
	"github.com/walteh/tidydir/pkg/organize"
	"github.com/walteh/tidydir/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the command-line overrides for the defaults file
type rootFlags struct {
	configFile    string
	target        string
	dryRun        bool
	noDryRun      bool
	renamePattern string
	excludes      []string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "tidydir",
		Short: "Organize a directory's files into category subfolders",
		Long: `tidydir moves each file in a directory into a category subfolder
(Images, Videos, Documents, Audio, Archives, Code, Others) chosen from its
extension. Dry-run is the default; pass --no-dry-run to actually move files.`,
		Example: `  # preview what would happen to ~/Downloads
  tidydir

  # actually organize a directory
  tidydir -t ~/Downloads --no-dry-run

  # organize with sequential renaming per category
  tidydir -t ~/Downloads --no-dry-run -r "{index}_{name}"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configFile, "config", "c", "", "defaults file path (default: discover .tidydir.* in the working directory)")
	f.StringVarP(&flags.target, "target", "t", "", "target directory to organize (default ~/Downloads)")
	f.BoolVar(&flags.dryRun, "dry-run", true, "preview changes without making them")
	f.BoolVar(&flags.noDryRun, "no-dry-run", false, "actually move files (disables dry-run)")
	f.StringVarP(&flags.renamePattern, "rename", "r", "", `rename pattern, e.g. "{index}_{name}" (placeholders: {index}, {name}, {ext})`)
	f.StringArrayVar(&flags.excludes, "exclude", nil, "glob of filenames to skip (repeatable)")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// run loads the defaults file, applies flag overrides and executes one
// organization pass. Per-file failures are reported in the summary and do
// not fail the command; only directory and pattern errors do.
func run(cmd *cobra.Command, flags *rootFlags) error {
	ctx := cmd.Context()

	var cfg *config.Config
	var err error
	if flags.configFile != "" {
		cfg, err = config.Load(ctx, flags.configFile)
	} else {
		cfg, err = config.Discover(ctx, ".")
	}
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	applyFlags(cmd, cfg, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)
	ctx = logger.WithContext(ctx)
	if cfg.Verbose {
		pterm.EnableDebugMessages()
	}

	org, err := organize.New(organize.Options{
		TargetDir:     cfg.Target,
		Simulate:      cfg.Simulate(),
		RenamePattern: cfg.Rename,
		Excludes:      cfg.Exclude,
		Reporter:      status.NewUserReporter(cfg.Verbose),
	})
	if err != nil {
		return err
	}

	_, err = org.Run(ctx)
	return err
}

// applyFlags overlays explicitly-set flags onto the loaded defaults
func applyFlags(cmd *cobra.Command, cfg *config.Config, flags *rootFlags) {
	fs := cmd.Flags()
	if fs.Changed("target") {
		cfg.Target = flags.target
	}
	if fs.Changed("rename") {
		cfg.Rename = flags.renamePattern
	}
	if fs.Changed("exclude") {
		cfg.Exclude = flags.excludes
	}
	if flags.verbose {
		cfg.Verbose = true
	}
	switch {
	case flags.noDryRun:
		off := false
		cfg.DryRun = &off
	case fs.Changed("dry-run"):
		v := flags.dryRun
		cfg.DryRun = &v
	}
}

// newLogger configures zerolog console output based on verbosity. The
// reporter owns the user-facing lines, so the structured log stays at
// warnings unless verbose asks for everything.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}
	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}
