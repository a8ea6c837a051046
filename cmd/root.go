// Package cmd is for command line interactions with the guide design
// application
package cmd

import (
	"log"

	"github.com/Jhansik957/CRISPR-Design-Dashboard/config"
	"github.com/Jhansik957/CRISPR-Design-Dashboard/internal/crispr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var designer = crispr.NewDesigner()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "crispr",
	Short: `Design and score CRISPR guide RNAs against a DNA sequence.
Find PAM sites, extract guide candidates, and rank them by predicted
cutting efficiency and off-target risk`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	config.SetDefaults()

	// an optional settings.yaml next to the binary overrides defaults
	viper.SetConfigName("settings")
	viper.AddConfigPath(".")
	viper.ReadInConfig()
}
