// Command wsmatch solves weighted subgraph monomorphism problems
// described in YAML files.
//
// Example problem file:
//
//	pattern:
//	  - {a: 0, b: 1, weight: 3}
//	target:
//	  - {a: 0, b: 1, weight: 5}
//	  - {a: 1, b: 2, weight: 1}
//	  - {a: 0, b: 2, weight: 2}
//	parameters:
//	  max_solutions: 2
//	  seed: 7
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wsmatch/solver"
)

var rootCmd = &cobra.Command{
	Use:   "wsmatch",
	Short: "Weighted subgraph monomorphism solver",
	Long: `wsmatch embeds a weighted pattern graph into a weighted target graph,
minimising the scalar product of pattern and target edge weights.`,
	SilenceUsage: true,
}

var solveCmd = &cobra.Command{
	Use:   "solve <problem.yaml>",
	Short: "Solve one problem file and print the mappings found",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	pattern, target, params, err := loadProblem(args[0])
	if err != nil {
		return err
	}

	data, err := solver.Solve(pattern, target, params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	status := "budget exhausted"
	if data.Finished {
		status = "finished"
	}
	fmt.Fprintf(out, "solutions: %d  iterations: %d  status: %s\n",
		len(data.Solutions), data.Iterations, status)
	fmt.Fprintf(out, "weight bounds: [%d, %d]  total pattern weight: %d\n",
		data.TrivialWeightLowerBound, data.TrivialWeightInitialUpperBound,
		data.TotalPatternWeight)
	fmt.Fprintf(out, "init: %s  search: %s\n", data.InitTime, data.SearchTime)

	for i, sol := range data.Solutions {
		fmt.Fprintf(out, "solution %d (scalar product %d):\n", i+1, sol.ScalarProduct)
		sorted := sol.Assignments
		sort.Slice(sorted, func(a, b int) bool {
			return sorted[a].PatternVertex < sorted[b].PatternVertex
		})
		for _, asg := range sorted {
			fmt.Fprintf(out, "  %d -> %d\n", asg.PatternVertex, asg.TargetVertex)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
