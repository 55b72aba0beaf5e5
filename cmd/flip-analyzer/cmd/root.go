// Package cmd implements the flip-analyzer CLI commands.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/jmorrow/flip-analyzer/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "flip-analyzer",
		Short: "Market analysis and pricing for resale items",
		Long: "flip-analyzer identifies resale items from photos, researches sold\n" +
			"comparables on eBay, and produces a full pricing analysis with listing\n" +
			"content and a selling strategy. It runs as an API server and doubles\n" +
			"as a CLI client for that server.",
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "config.yaml", "config file path (server commands)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL (client commands)")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(analysesCmd())
	rootCmd.AddCommand(versionCommand())
}

func initConfig() {
	// API keys and webhook URLs live in the environment; a local .env is
	// picked up when present.
	_ = godotenv.Load()

	viper.SetEnvPrefix("FLIP")
	viper.AutomaticEnv()
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
