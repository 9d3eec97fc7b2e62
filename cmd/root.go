package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "elemex",
	Short: "Interactive periodic table explorer",
	Long: `Elemex serves a browser-rendered periodic table: a grid colored by
element category, filterable by category, phase, and name, with a
details panel driven by grid clicks. The element dataset is fetched
from an upstream JSON source and cached locally.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".elemex.yml", "config file path")
}
