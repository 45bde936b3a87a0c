package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// configFile is set by the --config flag.
var configFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "partstore",
		Short: "Inventory API for hardware parts",
		Long: `partstore serves a JSON API for submitting, listing, updating and
deleting part records, plus the static front-end that drives it.

Running without a subcommand is the same as "partstore serve".`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (environment variables override it)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("partstore " + version)
		},
	}
}
