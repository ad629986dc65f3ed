package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dataslider",
	Short: "Pick a number on a terminal range slider",
	Long: `dataslider shows an interactive slider over a configured range and
prints the chosen value on exit. When stdin is not a terminal it prints
the resolved initial value without starting the interface.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSlider,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "List the configuration files that would be loaded",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		paths := configPaths()
		if len(paths) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no configuration file found, using defaults")
			return
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(configCmd)

	rootCmd.Flags().StringP("config", "c", "", "path to a TOML or YAML configuration file")
	rootCmd.Flags().Float64("value", 0, "initial value, overrides default_value")
	rootCmd.Flags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.Flags().Bool("json", false, "print the result as JSON")
}
