package cmd

import (
	"fmt"

	"github.com/cwbudde/go-evalx/internal/lexer"
	"github.com/cwbudde/go-evalx/internal/parser"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var parseDumpTree bool

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse an expression and display its operator tree",
	Long: `Parse an expression and print its source-equivalent display form, or the
full tree structure with --dump-tree.

Example:
  evalx parse "1 + 2 * 3"
  evalx parse --dump-tree "a = 1; a + 1"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseDumpTree, "dump-tree", false, "dump the full parsed tree structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	toks, err := lexer.Tokenize(args[0])
	if err != nil {
		exitWithError("lex error: %v", err)
	}
	t, err := parser.Parse(toks)
	if err != nil {
		exitWithError("parse error: %v", err)
	}

	if parseDumpTree {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", pretty.Sprint(t.Root))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}
