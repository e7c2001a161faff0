package cmd

import (
	"fmt"

	"github.com/cwbudde/go-evalx/pkg/evalx"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	debugTree  bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an expression and print its value",
	Long: `Evaluate lexes, parses and evaluates a single expression against an empty
context, printing the result's display form.

Examples:
  evalx eval "1 + 2 * 3"
  evalx eval --json "(1, 2, 3)"
  evalx eval --debug-tree "a = 1; a + 1"`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON instead of its display form")
	evalCmd.Flags().BoolVar(&debugTree, "debug-tree", false, "pretty-print the parsed operator tree before evaluating")
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError("loading config: %v", err)
	}

	expr, err := evalx.Compile(args[0], evalx.WithRandEnabled(cfg.RandEnabled), evalx.WithMaxDepth(cfg.MaxDepth))
	if err != nil {
		exitWithError("parse error: %v", err)
	}

	if debugTree {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", pretty.Sprint(expr.Tree().Root))
	}

	result, err := expr.Eval(evalx.EmptyContext)
	if err != nil {
		exitWithError("eval error: %v", err)
	}

	if jsonOutput {
		encoded, err := evalx.MarshalValueJSON(result)
		if err != nil {
			exitWithError("json encode error: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), encoded)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}
