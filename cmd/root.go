package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCMD = &cobra.Command{
	Use:   "signalscout",
	Short: "Technical-indicator buy/avoid scoring for stock tickers",
	Long: `SignalScout scores a ticker's trailing-year daily OHLCV history with a
battery of technical indicators and a weighted rule catalog, producing a
0-100 score, a four-tier recommendation and suggested entry/stop/target
levels. Results are served over HTTP or printed once from the CLI.`,
}

func Execute() {
	if err := rootCMD.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCMD.AddCommand(serverCMD)
	rootCMD.AddCommand(analyzeCMD)
}
