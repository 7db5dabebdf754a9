// Package main provides the atlas CLI, a terminal client for the trip
// planner. It reads the itinerary from the storage API, renders day focus
// views as GeoJSON, and writes itinerary edits back through the same API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
