package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-evalx/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "evalx",
	Short: "Embeddable expression evaluator",
	Long: `evalx lexes, parses and evaluates arithmetic/logical/comparison/string/
tuple expressions against a pluggable symbol table.

This CLI is a debugging and scripting front end for the engine; embedders
use the pkg/evalx package directly.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file of CLI defaults")
}

// loadConfig resolves --config into a config.Config, falling back to
// defaults when no path was given.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.New(), nil
	}
	return config.Load(configPath)
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
