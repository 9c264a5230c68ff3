package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/calculation"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/output"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep [scenario-file]",
	Short: "Sweep one input across a range and tabulate the outcomes",
	Long: `Rerun the simulation while one input steps across a range, holding
everything else fixed. The output shows the final buy and rent net worth
at each sample and where the verdict flips.

Without --min and --max the field's canonical range is used. Run the
command without --field to list the fields that can be swept.

Examples:
  ./bvr sweep --field mortgage_rate
  ./bvr sweep scenarios.yaml --field home_price --samples 21
  ./bvr sweep scenarios.yaml --field monthly_rent --min 1500 --max 4000 --format csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSweep,
}

var (
	sweepScenario string
	sweepField    string
	sweepMin      float64
	sweepMax      float64
	sweepSamples  int
	sweepFormat   string
)

func init() {
	sweepCmd.Flags().StringVar(&sweepScenario, "scenario", "", "Scenario name to sweep (default: first in the file)")
	sweepCmd.Flags().StringVar(&sweepField, "field", "", "Input field to sweep (required; omit to list fields)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "Lower end of the sweep range")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0, "Upper end of the sweep range")
	sweepCmd.Flags().IntVar(&sweepSamples, "samples", 11, "Number of samples across the range")
	sweepCmd.Flags().StringVar(&sweepFormat, "format", "console", "Output format (console, csv, json)")

	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) {
	if sweepField == "" {
		printSweepFields()
		os.Exit(1)
	}

	inputFile := ""
	if len(args) > 0 {
		inputFile = args[0]
	}

	input, err := resolveInput(inputFile, sweepScenario)
	if err != nil {
		log.Fatalf("Error loading input: %v", err)
	}

	field, err := domain.ParseField(sweepField)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	lo, hi := sweepMin, sweepMax
	if param, ok := domain.SweepParameterFor(field); ok {
		if !cmd.Flags().Changed("min") {
			lo = param.Min
		}
		if !cmd.Flags().Changed("max") {
			hi = param.Max
		}
	}
	if lo >= hi {
		log.Fatalf("Sweep range [%v, %v] is empty", lo, hi)
	}
	if sweepSamples < 2 {
		log.Fatalf("Need at least 2 samples, got %d", sweepSamples)
	}

	// The sweeper counts intervals and samples both endpoints.
	sweeper := calculation.NewSweeper(calculation.NewEngine())
	sweep := sweeper.Sweep(input, field, lo, hi, sweepSamples-1)

	formatter := output.NewSweepFormatter(sweepFormat)
	out, err := formatter.FormatSweep(sweep)
	if err != nil {
		log.Fatalf("Error formatting sweep: %v", err)
	}

	fmt.Print(out)
}

func printSweepFields() {
	fmt.Fprintln(os.Stderr, "--field is required. Sweepable fields:")
	fmt.Fprintln(os.Stderr)
	for _, param := range domain.SweepParameters() {
		fmt.Fprintf(os.Stderr, "  %-22s %s (%s to %s)\n",
			param.Field,
			param.Label,
			output.FormatSweepValue(param.Min, param.Unit),
			output.FormatSweepValue(param.Max, param.Unit))
	}
}
