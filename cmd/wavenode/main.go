package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "wavenode",
	Short: "Developer harness for the wave HTTP node catalog",
}

func init() {
	// Defaults
	v := viper.GetViper()
	v.SetDefault("inputs", "")
	v.SetDefault("format", "yaml")

	// Environment variables support: WAVENODE_INPUTS, WAVENODE_FORMAT, ...
	v.SetEnvPrefix("WAVENODE")
	v.AutomaticEnv()

	// Bind flags via Cobra and then bind to Viper
	runCmd.Flags().String("inputs", v.GetString("inputs"), "path to a YAML/JSON inputs file")
	runCmd.Flags().StringArray("set", nil, "input override NAME=VALUE (repeatable)")
	runCmd.Flags().String("extract", "", "gjson path evaluated against the Execution output")
	catalogCmd.Flags().String("format", v.GetString("format"), "catalog output format: yaml, json or table")

	_ = v.BindPFlag("inputs", runCmd.Flags().Lookup("inputs"))
	_ = v.BindPFlag("format", catalogCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wavenode: %v\n", err)
		os.Exit(1)
	}
}
