// Add-poi and rm-poi commands toggle a POI on one day.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addPOICmd = &cobra.Command{
	Use:   "add-poi <day> <poi-id>",
	Short: "Add a POI to a day",
	Long: `Add-poi assigns a point of interest to one day. Adding a POI that is
already on the day is a no-op.

Example:
  atlas add-poi 3 fushimi-inari`,
	Args: cobra.ExactArgs(2),
	RunE: runAddPOI,
}

var rmPOICmd = &cobra.Command{
	Use:   "rm-poi <day> <poi-id>",
	Short: "Remove a POI from a day",
	Long: `Rm-poi removes a point of interest from one day. Removing a POI that is
not on the day is a no-op.

Example:
  atlas rm-poi 3 fushimi-inari`,
	Args: cobra.ExactArgs(2),
	RunE: runRmPOI,
}

func runAddPOI(cmd *cobra.Command, args []string) error {
	dayIndex, err := parseDayIndex(args[0])
	if err != nil {
		return err
	}

	p, err := newPlanner(cmd.Context())
	if err != nil {
		return err
	}

	if err := p.AddPOIToDay(cmd.Context(), dayIndex, args[1]); err != nil {
		return fmt.Errorf("add POI: %w", err)
	}
	fmt.Printf("Added %s to day %d\n", args[1], dayIndex+1)
	return nil
}

func runRmPOI(cmd *cobra.Command, args []string) error {
	dayIndex, err := parseDayIndex(args[0])
	if err != nil {
		return err
	}

	p, err := newPlanner(cmd.Context())
	if err != nil {
		return err
	}

	if err := p.RemovePOIFromDay(cmd.Context(), dayIndex, args[1]); err != nil {
		return fmt.Errorf("remove POI: %w", err)
	}
	fmt.Printf("Removed %s from day %d\n", args[1], dayIndex+1)
	return nil
}
