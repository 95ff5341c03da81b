package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "copper",
	Short: "A scheme interpreter",
	Long:  `Copper is an embeddable scheme interpreter with an exact numeric tower.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Running without a subcommand starts an interactive session.
		replCmd.Run(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
