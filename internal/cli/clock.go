package cli

import (
	"fmt"

	"github.com/rohitk523/adk-project/internal/domain/worldclock"
	"github.com/spf13/cobra"
)

func newClockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock <city>",
		Short: "Report the current time (and optionally weather) for a known city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClock(cmd, args[0])
		},
	}

	cmd.Flags().Bool("weather", false, "Include the weather report")

	return cmd
}

func runClock(cmd *cobra.Command, city string) error {
	report, err := worldclock.CurrentTime(city)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), report)

	if withWeather, _ := cmd.Flags().GetBool("weather"); withWeather {
		weather, err := worldclock.Weather(city)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), weather)
	}
	return nil
}
