package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tokenmint/tokenmint/generator"
	"github.com/tokenmint/tokenmint/tokens"
)

var listTokensUser string

var listTokensCommand = cobra.Command{
	Use:   "ls",
	Short: "Lists all active tokens of a user",
	Long:  `This will list every unexpired token of the given user, newest first`,
	Run: func(cmd *cobra.Command, args []string) {
		dataStore := mustResolveUsableDataStore()
		dispatcher := bootstrapDispatcher(dataStore.Auditor())
		issuer := tokens.NewIssuer(
			TopLevelLogger.Named("token_issuer"),
			dataStore,
			dispatcher,
			generator.New(),
		)
		lst, err := issuer.ListActive(context.Background(), listTokensUser)
		if err != nil {
			fmt.Printf("Unable to load tokens: %s", err)
			os.Exit(1)
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 1, 1, 1, ' ', 0)
		fmt.Fprintf(
			w,
			"%s\t%s\t%s\t%s\t%s\t%s\r\n",
			"ID",
			"Token",
			"UserID",
			"Scopes",
			"CreatedAt",
			"ExpiresAt",
		)
		for _, v := range lst {
			wire := tokens.Serialize(v)
			fmt.Fprintf(
				w,
				"%d\t%s\t%s\t%v\t%s\t%s \r\n",
				wire.ID,
				wire.Token,
				wire.UserID,
				wire.Scopes,
				wire.CreatedAt,
				wire.ExpiresAt,
			)
		}

		fmt.Fprintf(w, "------------------------------------------------- \r\n")
		fmt.Fprintf(w, "%d entries loaded", len(lst))
		w.Flush()
	},
}

func init() {
	listTokensCommand.Flags().
		StringVar(&listTokensUser, "user", "", "the user to list tokens for")
	_ = listTokensCommand.MarkFlagRequired("user")
}
