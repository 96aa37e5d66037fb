package commands

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-carbon-monitor/internal/core/constants"
	"github.com/penwyp/go-carbon-monitor/internal/intensity"
	"github.com/spf13/cobra"
)

var (
	queryURL     string
	queryTimeout time.Duration
	queryJSON    bool
)

var intensityCmd = &cobra.Command{
	Use:   "intensity",
	Short: "Query a carbon intensity endpoint once",
	Long: `Fetches the current window from an intensity endpoint, exactly as the
scheduler does, and prints it.

Examples:
  go-carbon-monitor intensity
  go-carbon-monitor intensity --url http://127.0.0.1:5000/intensity --json`,
	RunE: runIntensity,
}

func init() {
	rootCmd.AddCommand(intensityCmd)

	intensityCmd.Flags().StringVar(&queryURL, "url", "",
		"Endpoint to query (defaults to --intensity-url, then "+constants.DefaultIntensityURL+")")
	intensityCmd.Flags().DurationVar(&queryTimeout, "timeout", 5*time.Second,
		"Request timeout")
	intensityCmd.Flags().BoolVar(&queryJSON, "json", false,
		"Print the decoded window as JSON")
}

func runIntensity(cmd *cobra.Command, args []string) error {
	setupLogging()

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	url := queryURL
	if url == "" {
		url = s.IntensityURL
	}
	if url == "" {
		url = constants.DefaultIntensityURL
	}

	forecast, err := intensity.NewClient(url, queryTimeout).Current(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", url, err)
	}

	out := cmd.OutOrStdout()
	if queryJSON {
		data, err := sonic.ConfigStd.MarshalIndent(forecast, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	fmt.Fprintf(out, "Window:   %s to %s\n", forecast.From.Format(intensity.TimeLayout), forecast.To.Format(intensity.TimeLayout))
	fmt.Fprintf(out, "Index:    %s (%s)\n", forecast.Index, forecast.Level.Label())
	fmt.Fprintf(out, "Forecast: %d gCO2/kWh\n", forecast.Forecast)
	fmt.Fprintf(out, "Actual:   %d gCO2/kWh\n", forecast.Actual)
	return nil
}
