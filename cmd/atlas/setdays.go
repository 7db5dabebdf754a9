// Set-days command reassigns a POI across the whole itinerary at once.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var setDaysCmd = &cobra.Command{
	Use:   "set-days <poi-id> [day]...",
	Short: "Set exactly which days a POI is planned on",
	Long: `Set-days makes the POI appear on exactly the listed days, adding and
removing assignments as needed. With no days, the POI is removed from every
day. If any write fails, all days are restored to their previous state.

Example:
  atlas set-days fushimi-inari 3 4
  atlas set-days fushimi-inari`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSetDays,
}

func runSetDays(cmd *cobra.Command, args []string) error {
	poiID := args[0]

	dayIndexes := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		idx, err := parseDayIndex(arg)
		if err != nil {
			return err
		}
		dayIndexes = append(dayIndexes, idx)
	}

	p, err := newPlanner(cmd.Context())
	if err != nil {
		return err
	}

	if err := p.ReassignPOIDays(cmd.Context(), poiID, dayIndexes); err != nil {
		return fmt.Errorf("reassign days: %w", err)
	}

	if len(dayIndexes) == 0 {
		fmt.Printf("Removed %s from all days\n", poiID)
		return nil
	}
	fmt.Printf("Planned %s on day(s) %s\n", poiID, strings.Join(args[1:], ", "))
	return nil
}
