// New-poi command geocodes a place and saves it as a POI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/msoren/trip-atlas/internal/domain"
	"github.com/msoren/trip-atlas/internal/search"
)

var (
	newPOIPick int
	newPOIName string
)

var newPOICmd = &cobra.Command{
	Use:   "new-poi <query>",
	Short: "Search for a place and save it as a POI",
	Long: `New-poi geocodes the query, shows the candidates, and saves the picked
one as a new point of interest. By default the first candidate is used;
pass --pick to choose another, or --name to override the stored name.

Example:
  atlas new-poi "fushimi inari shrine"
  atlas new-poi "osaka castle" --pick 2 --name "Osaka Castle"`,
	Args: cobra.ExactArgs(1),
	RunE: runNewPOI,
}

func init() {
	newPOICmd.Flags().IntVar(&newPOIPick, "pick", 1, "which search candidate to save (1-based)")
	newPOICmd.Flags().StringVar(&newPOIName, "name", "", "override the POI name (default: candidate name)")
}

func runNewPOI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	searcher := search.New(cfg.GetString(cfgKeySearchBase), nil)
	candidates, err := searcher.Search(ctx, args[0])
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no results for %q", args[0])
	}
	if newPOIPick < 1 || newPOIPick > len(candidates) {
		return fmt.Errorf("--pick %d out of range: %d candidate(s)", newPOIPick, len(candidates))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tLOCATION")
	for i, c := range candidates {
		marker := " "
		if i+1 == newPOIPick {
			marker = "*"
		}
		fmt.Fprintf(w, "%s%d\t%s\t%s\n", marker, i+1, c.Name, truncate(c.Location, 60))
	}
	w.Flush()

	picked := candidates[newPOIPick-1]
	name := newPOIName
	if name == "" {
		name = picked.Name
	}

	p, err := newPlanner(ctx)
	if err != nil {
		return err
	}

	poi, err := p.CreatePOI(ctx, name, picked.Location, domain.Position{Lat: picked.Lat, Lng: picked.Lng})
	if err != nil {
		return fmt.Errorf("create POI: %w", err)
	}

	fmt.Printf("Saved %s (%s) at %.4f,%.4f\n", poi.ID, poi.Name, poi.Position.Lat, poi.Position.Lng)
	return nil
}
