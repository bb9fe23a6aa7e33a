package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/wheel-picker/internal/config"
	"github.com/iburimskiy/wheel-picker/internal/game"
	"github.com/iburimskiy/wheel-picker/internal/namefile"
)

// globalFlags are shared by the root command and its subcommands.
type globalFlags struct {
	cfgFile   string
	namesFile string
	watch     bool
	duration  int
	seed      int64
	verbose   bool
}

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "wheelpicker",
		Short: "Spin a wheel of names to pick a winner",
		Long: `Wheel Picker draws a wheel with one slice per name and spins it to pick a
winner at random. The winner can be removed from the wheel or kept for the
next round.

Names come from the config file, a plain text file (one name per line) or the
panel next to the wheel.`,
		Example: `  # Open the wheel with the default names
  wheelpicker

  # Seed the wheel from a file and reload it when it changes
  wheelpicker --names-file team.txt --watch

  # Pick without opening a window
  wheelpicker pick Alice Bob Cara`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			return game.Run(cmd.Context(), cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.cfgFile, "config", "c", "", "config file path")
	pf.StringVarP(&flags.namesFile, "names-file", "f", "", "text file with one name per line")
	pf.Int64Var(&flags.seed, "seed", 0, "random seed for spins (0 picks one from the clock)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "reload the names file when it changes")
	rootCmd.Flags().IntVarP(&flags.duration, "duration", "d", 0, "spin duration in seconds")

	rootCmd.AddCommand(newPickCommand(flags))
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// load reads the configuration, applies flags on top and sets up logging.
func (f *globalFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(f.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	changed := cmd.Flags().Changed
	if changed("names-file") {
		cfg.NamesFile.Path = f.namesFile
	}
	if changed("watch") {
		cfg.NamesFile.Watch = f.watch
	}
	if changed("duration") {
		cfg.Spin.DurationSeconds = min(max(f.duration, cfg.Spin.MinSeconds), cfg.Spin.MaxSeconds)
	}
	if changed("seed") {
		cfg.Spin.Seed = f.seed
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := setupLogging(cfg.Log); err != nil {
		return nil, err
	}

	if cfg.NamesFile.Path != "" {
		names, err := namefile.Load(cfg.NamesFile.Path)
		if err != nil {
			return nil, err
		}
		cfg.Wheel.Names = names
		log.Debug().Str("file", cfg.NamesFile.Path).Int("names", len(names)).Msg("loaded names file")
	}
	return cfg, nil
}

func setupLogging(lc config.LogConfig) error {
	level, err := zerolog.ParseLevel(strings.ToLower(lc.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	if lc.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return nil
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "dev" || version == "" {
				version = "development"
			}
			if commit == "none" || commit == "" {
				commit = "local-build"
			}
			if date == "unknown" || date == "" {
				date = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wheel Picker %s (%s) built on %s\n", version, commit, date)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
