// Root command for the atlas CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global flag values.
var (
	flagConfigFile string
	flagJSON       bool
)

// cfg holds the merged configuration (file, environment, defaults).
// Set by PersistentPreRunE so all subcommands can use it.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Atlas is a trip itinerary planner",
	Long: `Atlas plans multi-stop trips day by day. It keeps the itinerary in a
keyed-record storage service and renders each day's focus view — the
active stop, its points of interest, and any transit leg — as GeoJSON.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadConfig(flagConfigFile)
		if err != nil {
			return err
		}
		cfg = v
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: ~/.atlas/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(daysCmd)
	rootCmd.AddCommand(stopsCmd)
	rootCmd.AddCommand(poisCmd)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(addPOICmd)
	rootCmd.AddCommand(rmPOICmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(setDaysCmd)
	rootCmd.AddCommand(newPOICmd)
	rootCmd.AddCommand(exportCmd)
}
