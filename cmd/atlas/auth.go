// Auth command stores the shared storage key in the config file.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth <key>",
	Short: "Save the storage access key",
	Long: `Auth saves the shared key the storage API expects in the x-auth header.
The key is written to the config file and sent on every subsequent command.

Example:
  atlas auth my-shared-key`,
	Args: cobra.ExactArgs(1),
	RunE: runAuth,
}

func runAuth(cmd *cobra.Command, args []string) error {
	cfg.Set(cfgKeyAuthKey, args[0])

	path := flagConfigFile
	if path == "" {
		dir, err := defaultConfigDir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, configFileName+"."+configFileType)
	}

	if err := cfg.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Access key saved to %s\n", path)
	return nil
}
