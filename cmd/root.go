package cmd

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tokenmint/tokenmint/config"
	"go.uber.org/zap"
)

// ConfigFileLocation is of the config to load
var ConfigFileLocation string

// TopLevelLogger is the logger all loggers come from
var TopLevelLogger *zap.Logger

// LoadedConfig is the currently loaded configuration after initial bootstrapping
var LoadedConfig *config.Configuration

// Templates holds the embedded template files
var Templates embed.FS

var rootCommand = cobra.Command{
	Use:   "tokenmint",
	Short: "tokenmint an opaque bearer token service",
	Long: `tokenmint issues and lists opaque bearer access tokens
	backed by a relational store behind a small json api`,
	Run: func(cmd *cobra.Command, args []string) {
		serveCommand.Run(cmd, args)
	},
}

func Execute() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCommand.PersistentFlags().
		StringVar(&ConfigFileLocation, "config", "", "config file to be used")

	tokenCommand.AddCommand(&listTokensCommand)
	tokenCommand.AddCommand(&purgeTokensCommand)

	rootCommand.AddCommand(&serveCommand)
	rootCommand.AddCommand(&tokenCommand)
}
