package cmd

import (
	"fmt"
	"log"

	"github.com/Jhansik957/CRISPR-Design-Dashboard/config"
	"github.com/Jhansik957/CRISPR-Design-Dashboard/internal/web"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd runs the HTTP JSON API over the design pipeline
var serveCmd = &cobra.Command{
	Use:                        "serve",
	Short:                      "Serve the guide design pipeline over HTTP",
	Run:                        runServe,
	SuggestionsMinimumDistance: 2,
	Example:                    "  crispr serve --port 8080",
	Long: `Serve a JSON API for dashboards and other clients:

  POST /design    run the guide design pipeline on a sequence
  POST /analyze   report composition, scores, and structure
  POST /generate  create a random sequence with organism GC content`,
}

// set flags
func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "HTTP service port")

	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

// runServe is the serve command's handler
func runServe(cmd *cobra.Command, args []string) {
	c := config.NewConfig()

	router := web.NewRouter(c)
	log.Printf("serving on :%d", c.Server.Port)
	if err := router.Run(fmt.Sprintf(":%d", c.Server.Port)); err != nil {
		log.Fatalf("%v", err)
	}
}
