package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/wheel-picker/internal/wheel"
)

func newPickCommand(flags *globalFlags) *cobra.Command {
	var (
		count  int
		remove bool
	)

	pickCmd := &cobra.Command{
		Use:   "pick [names...]",
		Short: "Pick a winner without opening a window",
		Long: `Pick spins the wheel instantly and prints the winner. Names given as
arguments replace the configured list.

With --count, the wheel is spun several times in a row. --remove takes each
winner off the wheel before the next spin.`,
		Example: `  # One winner from the configured names
  wheelpicker pick

  # Three distinct winners from a file, reproducibly
  wheelpicker pick --names-file team.txt --count 3 --remove --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			names := cfg.Wheel.Names
			if len(args) > 0 {
				names = wheel.ParseNames(strings.Join(args, "\n"))
			}
			opts, err := cfg.PickerOptions()
			if err != nil {
				return err
			}
			return runPicks(cmd.OutOrStdout(), names, opts, count, remove)
		},
	}

	pickCmd.Flags().IntVarP(&count, "count", "n", 1, "number of spins")
	pickCmd.Flags().BoolVarP(&remove, "remove", "r", false, "remove each winner before the next spin")

	return pickCmd
}

func runPicks(out io.Writer, names []string, opts wheel.Options, count int, remove bool) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	names = append([]string(nil), names...)
	for i := 0; i < count; i++ {
		winner, rotation, err := wheel.PickInstant(names, opts.Rand, opts.MinTurns, opts.MaxTurns)
		if err != nil {
			return fmt.Errorf("spin %d: %w", i+1, err)
		}
		log.Debug().Int("spin", i+1).Float64("rotation", rotation).Str("winner", winner).Msg("picked")
		fmt.Fprintln(out, winner)

		if remove {
			names = wheel.RemoveName(names, winner)
		}
	}
	return nil
}
