// Shared helpers for atlas subcommands.
package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/msoren/trip-atlas/internal/planner"
	"github.com/msoren/trip-atlas/internal/storage"
)

// newPlanner constructs the storage client from config, loads the itinerary,
// and returns a planner holding the built state. Every subcommand that needs
// the itinerary goes through here, so a wrong auth key or unreachable server
// fails with the same message everywhere.
func newPlanner(ctx context.Context) (*planner.Planner, error) {
	store := storage.New(
		cfg.GetString(cfgKeyAPIBase),
		cfg.GetString(cfgKeyCollection),
		cfg.GetString(cfgKeyAuthKey),
		nil,
	)

	p := planner.New(store, defaultCenter())
	if err := p.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("load itinerary: %w", err)
	}
	return p, nil
}

// parseDayIndex converts a 1-based day number from the command line into the
// 0-based index the planner uses. Day numbers are what the days command
// prints, so all commands accept the same numbering.
func parseDayIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid day number %q: expected a positive integer", arg)
	}
	return n - 1, nil
}
