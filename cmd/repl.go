package cmd

import (
	"fmt"
	"os"

	"github.com/sebastian-j-ibanez/copper/lisp"
	"github.com/sebastian-j-ibanez/copper/parser/rdparser"
	"github.com/sebastian-j-ibanez/copper/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Run: func(cmd *cobra.Command, args []string) {
		env, err := lisp.NewGlobalEnv(lisp.WithReader(rdparser.NewReader()))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		repl.RunRepl(env, "> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
