package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tokenmint/tokenmint/generator"
	"github.com/tokenmint/tokenmint/tokens"
)

var purgeTokensCommand = cobra.Command{
	Use:   "purge",
	Short: "Removes all expired tokens",
	Long: `This will physically delete every expired token from the store,
	the api itself never deletes anything so run this periodically`,
	Run: func(cmd *cobra.Command, args []string) {
		dataStore := mustResolveUsableDataStore()
		dispatcher := bootstrapDispatcher(dataStore.Auditor())
		issuer := tokens.NewIssuer(
			TopLevelLogger.Named("token_issuer"),
			dataStore,
			dispatcher,
			generator.New(),
		)
		count, err := issuer.PurgeExpired(context.Background())
		if err != nil {
			fmt.Printf("Unable to purge tokens: %s", err)
			os.Exit(1)
			return
		}
		fmt.Printf("%d expired tokens removed\n", count)
	},
}
