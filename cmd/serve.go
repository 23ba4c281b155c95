package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tokenmint/tokenmint/api"
	"github.com/tokenmint/tokenmint/generator"
	"github.com/tokenmint/tokenmint/tokens"
	"go.uber.org/zap"
)

var serveCommand = cobra.Command{
	Use:   "serve",
	Short: "starts the http server",
	Long:  `Starts a http server and serves the service`,
	Run: func(cmd *cobra.Command, args []string) {
		//this is our composite root

		//setup datastore
		dataStore := mustResolveUsableDataStore()

		//events dispatcher
		dispatcher := bootstrapDispatcher(dataStore.Auditor())

		//setup token issuer
		issuer := tokens.NewIssuer(
			TopLevelLogger.Named("token_issuer"),
			dataStore,
			dispatcher,
			generator.New(),
		)

		server, err := api.NewServer(LoadedConfig, TopLevelLogger.Named("server"),
			issuer,
			Templates,
		)
		if err != nil {
			TopLevelLogger.Fatal("Failed to create server", zap.Error(err))
		}
		if err := server.Start(); err != nil {
			TopLevelLogger.Error("Server stopped with error", zap.Error(err))
		}
		TopLevelLogger.Info("Shutdown complete")
	},
}
