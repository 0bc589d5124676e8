// Package cmd defines the omloop command line interface.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/transitops/omloop/app"
	"github.com/transitops/omloop/config"
)

var (
	cfgPath   string
	tripsPath string
)

var rootCmd = &cobra.Command{
	Use:   "omloop",
	Short: "Vehicle rotation optimizer for scheduled rail replacement transport",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVarP(&tripsPath, "trips", "t", "trips.json", "trip document to optimize")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func newService() (*app.Service, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	return app.New(cfg)
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
