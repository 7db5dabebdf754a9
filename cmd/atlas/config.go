// Config loading for the atlas CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/msoren/trip-atlas/internal/domain"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyAPIBase    = "api_base"
	cfgKeyCollection = "collection"
	cfgKeyAuthKey    = "auth_key"
	cfgKeyAirportPOI = "airport_poi"
	cfgKeySearchBase = "search_base"
	cfgKeyCenterLat  = "default_center.lat"
	cfgKeyCenterLng  = "default_center.lng"
)

// loadConfig reads config.yaml from the given path, or from ~/.atlas/ when
// path is empty. Environment variables prefixed ATLAS_ override the file
// (e.g. ATLAS_AUTH_KEY). A missing config file is not an error — defaults
// plus environment are enough to run against a local server.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAPIBase, "http://localhost:8080")
	v.SetDefault(cfgKeyCollection, "itinerary")
	v.SetDefault(cfgKeyAirportPOI, "kix")
	v.SetDefault(cfgKeySearchBase, "https://nominatim.openstreetmap.org")
	v.SetDefault(cfgKeyCenterLat, 36.2048)
	v.SetDefault(cfgKeyCenterLng, 138.2529)

	v.SetEnvPrefix("ATLAS")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := defaultConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// defaultConfigDir returns ~/.atlas, creating it on first use.
func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir := filepath.Join(home, ".atlas")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}

// defaultCenter returns the configured fallback map position, used for
// records that carry no coordinates.
func defaultCenter() domain.Position {
	return domain.Position{
		Lat: cfg.GetFloat64(cfgKeyCenterLat),
		Lng: cfg.GetFloat64(cfgKeyCenterLng),
	}
}
