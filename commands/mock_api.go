package commands

import (
	"fmt"
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/core/constants"
	"github.com/penwyp/go-carbon-monitor/internal/mockapi"
	"github.com/penwyp/go-carbon-monitor/internal/util"
	"github.com/spf13/cobra"
)

var mockAddr string

var mockAPICmd = &cobra.Command{
	Use:   "mock-api",
	Short: "Serve a fake carbon intensity endpoint for development",
	Long: `Serves GET /intensity with a level that cycles low, moderate, high, very high
every two minutes, plus GET /health. Access logs go to stdout.`,
	RunE: runMockAPI,
}

func init() {
	rootCmd.AddCommand(mockAPICmd)

	mockAPICmd.Flags().StringVar(&mockAddr, "addr", constants.DefaultMockAddr,
		"Listen address")
}

func runMockAPI(cmd *cobra.Command, args []string) error {
	setupLogging()

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	handler := mockapi.NewHandler(mockapi.NewResponder(time.Now), cmd.OutOrStdout())

	ctx, stop := signalContext()
	defer stop()

	util.LogInfo("Starting mock intensity API", util.F("addr", s.MockAddr))
	fmt.Fprintf(cmd.OutOrStdout(), "Mock carbon intensity API listening on http://%s/intensity\n", s.MockAddr)

	return mockapi.Serve(ctx, s.MockAddr, handler)
}
