package cmd

import (
	"fmt"

	"github.com/cwbudde/go-evalx/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <expression>",
	Short: "Tokenize an expression and print the resulting tokens",
	Long: `Tokenize (lex) an expression and print the resulting token stream, one
token per line. Useful for debugging the lexer.

Example:
  evalx lex "a + 1 >= 2"`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	toks, err := lexer.Tokenize(args[0])
	if err != nil {
		exitWithError("lex error: %v", err)
	}
	for _, t := range toks {
		fmt.Fprintf(cmd.OutOrStdout(), "%d:%d %s\n", t.Line, t.Column, t.String())
	}
	return nil
}
