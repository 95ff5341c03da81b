package cmd

import (
	"fmt"
	"os"

	"github.com/sebastian-j-ibanez/copper/lisp"
	"github.com/sebastian-j-ibanez/copper/parser"
	"github.com/sebastian-j-ibanez/copper/parser/rdparser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run scheme code",
	Long:  `Run scheme code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		env, err := lisp.NewGlobalEnv(lisp.WithReader(rdparser.NewReader()))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if runExpression {
			for _, expr := range args {
				if _, err := parser.Parse(env, runPrint, []byte(expr)); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
			}
			return
		}
		for _, path := range args {
			v := env.LoadFile(path)
			if v.Type == lisp.LError {
				fmt.Fprintln(os.Stderr, lisp.GoError(v))
				os.Exit(1)
			}
			if runPrint && v.Type != lisp.LVoid {
				fmt.Println(v)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as scheme expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
