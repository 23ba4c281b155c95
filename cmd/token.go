package cmd

import (
	"github.com/spf13/cobra"
)

var tokenCommand = cobra.Command{
	Use:   "token",
	Short: "Token related operations",
	Long:  `Contains subcommands for token maintenance`,
}
