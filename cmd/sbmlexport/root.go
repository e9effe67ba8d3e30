package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/sbmlexport/internal/cli"
	"github.com/aretw0/sbmlexport/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sbmlexport",
	Short: "sbmlexport converts Reactome pathways into SBML models",
	Long: `sbmlexport reads pathways from the Reactome graph database, a fixture
directory or a bundle file and writes them as SBML Level 3 models with
ontology annotations, notes and provenance.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (.yaml, .yml or .toml)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("log-format", "", "Log format: text or json")
	flags.String("dir", "", "Fixture directory to read instead of Neo4j")
	flags.String("file", "", "Bundle file to read instead of Neo4j")
	flags.String("host", "", "Neo4j host (default localhost)")
	flags.Int("port", 0, "Neo4j bolt port (default 7687)")
	flags.String("user", "", "Neo4j user (default neo4j)")
	flags.String("password", "", "Neo4j password (default neo4j)")
}

// overrides collects the persistent flags plus any command flags that map
// onto the configuration.
func overrides(cmd *cobra.Command) cli.Overrides {
	flags := cmd.Flags()
	str := func(name string) string {
		if f := flags.Lookup(name); f != nil {
			return f.Value.String()
		}
		return ""
	}
	port, _ := flags.GetInt("port")
	return cli.Overrides{
		Dir:       str("dir"),
		File:      str("file"),
		Host:      str("host"),
		Port:      port,
		User:      str("user"),
		Password:  str("password"),
		OutDir:    str("outdir"),
		Format:    str("format"),
		LogLevel:  str("log-level"),
		LogFormat: str("log-format"),
	}
}

// setup resolves configuration and logger for a command.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := cli.LoadConfig(path, overrides(cmd), os.LookupEnv)
	if err != nil {
		return nil, nil, err
	}
	logger, err := cli.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
