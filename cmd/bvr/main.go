package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/breakeven"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/calculation"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/compare"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/config"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/output"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/transform"
)

// simpleCLILogger adapts the standard logger to the calculation engine's
// Logger interface for --verbose and --debug runs.
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...interface{}) {
	log.Printf("DEBUG: "+format, args...)
}

func (simpleCLILogger) Infof(format string, args ...interface{}) {
	log.Printf("INFO: "+format, args...)
}

func (simpleCLILogger) Warnf(format string, args ...interface{}) {
	log.Printf("WARN: "+format, args...)
}

func (simpleCLILogger) Errorf(format string, args ...interface{}) {
	log.Printf("ERROR: "+format, args...)
}

// Version information, set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bvr",
	Short: "Buy vs rent calculator",
	Long: `bvr simulates buying a home against renting for the same years and
investing the difference, then reports which path ends with more net worth.

Both paths are simulated month by month: the buyer pays the mortgage,
taxes, insurance, HOA and maintenance, and sells at the end of the
horizon; the renter invests the down payment and every month the rent
comes in cheaper than owning. Scenario files are YAML, and any field a
file omits falls back to the built-in defaults.`,
}

var (
	calculateScenario string
	calculateFormat   string
	calculateOutput   string
	calculateVerbose  bool
	calculateDebug    bool
)

var calculateCmd = &cobra.Command{
	Use:   "calculate [scenario-file]",
	Short: "Run a buy vs rent simulation and report the outcome",
	Long: `Run the full simulation for one scenario and print the report.

Without a scenario file the built-in defaults are used, which makes for a
quick first look before writing any YAML.

Examples:
  ./bvr calculate
  ./bvr calculate scenarios.yaml
  ./bvr calculate scenarios.yaml --scenario "Bigger House" --format json
  ./bvr calculate scenarios.yaml --format pdf --output report.pdf`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCalculate,
}

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario file without running it",
	Args:  cobra.ExactArgs(1),
	Run:   runValidate,
}

var (
	compareBase          string
	compareScenarios     []string
	compareWith          string
	compareTransforms    []string
	compareFormat        string
	compareListTemplates bool
)

var compareCmd = &cobra.Command{
	Use:   "compare [scenario-file]",
	Short: "Compare a base scenario against alternatives",
	Long: `Compare a base scenario against alternatives and report how each one
moves the outcome and whether the verdict flips.

Alternatives come from one of two places:
  --scenarios   other named scenarios from the same file
  --with        built-in templates applied to the base (see --list-templates)
  --transform   ad hoc transforms, e.g. "adjust:field=mortgage_rate,delta=1"

Named scenarios and derived alternatives cannot be mixed in a single run.
Without any of the three, the base is compared against every other
scenario in the file.

Examples:
  ./bvr compare scenarios.yaml
  ./bvr compare scenarios.yaml --base "Baseline" --scenarios "Bigger House"
  ./bvr compare --with rates_up_1,stay_5yr
  ./bvr compare scenarios.yaml --transform "set:field=home_price,value=500000"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCompare,
}

var (
	breakEvenScenario string
	breakEvenField    string
	breakEvenMin      float64
	breakEvenMax      float64
	breakEvenFormat   string
)

var breakEvenCmd = &cobra.Command{
	Use:   "breakeven [scenario-file]",
	Short: "Find where the buy vs rent verdict flips",
	Long: `Solve for the value of one input at which buying and renting end at
the same net worth.

With --field the solver bisects that input over its canonical range, or
over the bracket given with --min and --max. Without --field every common
lever is solved and the flip points are tabulated together.

Examples:
  ./bvr breakeven
  ./bvr breakeven scenarios.yaml --field mortgage_rate
  ./bvr breakeven scenarios.yaml --field home_price --min 250000 --max 900000 --format json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBreakEven,
}

func runCalculate(cmd *cobra.Command, args []string) {
	inputFile := ""
	if len(args) > 0 {
		inputFile = args[0]
	}

	input, err := resolveInput(inputFile, calculateScenario)
	if err != nil {
		log.Fatalf("Error loading input: %v", err)
	}

	engine := calculation.NewEngine()
	if calculateVerbose || calculateDebug {
		engine.SetLogger(simpleCLILogger{})
	}

	result := engine.Run(input)

	generator := output.NewReportGenerator()
	report, err := generator.Generate(result, input, calculateFormat)
	if err != nil {
		log.Fatalf("Error generating report: %v", err)
	}

	// PDF is binary, so it always goes to a file.
	outPath := calculateOutput
	if outPath == "" && output.NormalizeFormatName(calculateFormat) == "pdf" {
		outPath = "buy-vs-rent.pdf"
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, report, 0644); err != nil {
			log.Fatalf("Error writing report to %s: %v", outPath, err)
		}
		fmt.Printf("Report written to %s\n", outPath)
		return
	}

	fmt.Print(string(report))
}

func runValidate(cmd *cobra.Command, args []string) {
	inputFile := args[0]

	if !fileExists(inputFile) {
		log.Fatalf("Scenario file does not exist: %s", inputFile)
	}

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(inputFile)
	if err != nil {
		log.Fatalf("Configuration file is invalid: %v", err)
	}

	fmt.Printf("Configuration file %s is valid (%d scenarios: %s)\n",
		inputFile, len(cfg.Scenarios), strings.Join(cfg.ScenarioNames(), ", "))
}

func runCompare(cmd *cobra.Command, args []string) {
	if compareListTemplates {
		registry := transform.CreateBuiltInTemplates()
		fmt.Print(transform.GetTemplateHelp(registry))
		return
	}

	inputFile := ""
	if len(args) > 0 {
		inputFile = args[0]
	}

	cfg, err := loadConfiguration(inputFile)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	baseName := compareBase
	if baseName == "" {
		baseName = cfg.Scenarios[0].Name
	}

	ce := compare.NewCompareEngine(calculation.NewEngine())
	ctx := context.Background()

	var compSet *compare.ComparisonSet

	switch {
	case len(compareScenarios) > 0:
		if compareWith != "" || len(compareTransforms) > 0 {
			log.Fatalf("--scenarios cannot be combined with --with or --transform")
		}
		compSet, err = ce.CompareScenarios(ctx, cfg, baseName, compareScenarios)

	case compareWith != "" || len(compareTransforms) > 0:
		compSet, err = ce.Compare(ctx, cfg, compare.CompareOptions{
			BaseScenarioName: baseName,
			Templates:        transform.ParseTemplateList(compareWith),
			TransformSpecs:   compareTransforms,
		})

	default:
		alternatives := make([]string, 0, len(cfg.Scenarios))
		for _, name := range cfg.ScenarioNames() {
			if name != baseName {
				alternatives = append(alternatives, name)
			}
		}
		if len(alternatives) == 0 {
			log.Fatalf("Nothing to compare: the file has no scenarios besides %q (try --with or --transform)", baseName)
		}
		compSet, err = ce.CompareScenarios(ctx, cfg, baseName, alternatives)
	}
	if err != nil {
		log.Fatalf("Error comparing scenarios: %v", err)
	}
	compSet.ConfigPath = inputFile

	switch strings.ToLower(compareFormat) {
	case "csv":
		formatter := &compare.CSVFormatter{}
		out, err := formatter.Format(compSet)
		if err != nil {
			log.Fatalf("Error formatting output: %v", err)
		}
		fmt.Print(out)
	case "json":
		formatter := &compare.JSONFormatter{Pretty: true}
		out, err := formatter.Format(compSet)
		if err != nil {
			log.Fatalf("Error formatting output: %v", err)
		}
		fmt.Println(out)
	case "table", "console", "":
		formatter := &compare.TableFormatter{}
		fmt.Print(formatter.Format(compSet))
	default:
		log.Fatalf("Unsupported output format: %s (supported: table, csv, json)", compareFormat)
	}
}

func runBreakEven(cmd *cobra.Command, args []string) {
	inputFile := ""
	if len(args) > 0 {
		inputFile = args[0]
	}

	input, err := resolveInput(inputFile, breakEvenScenario)
	if err != nil {
		log.Fatalf("Error loading input: %v", err)
	}

	solver := breakeven.NewDefaultSolver(calculation.NewEngine())
	ctx := context.Background()

	if breakEvenField == "" {
		multi, err := solver.SolveLevers(ctx, input, nil)
		if err != nil {
			log.Fatalf("Error solving break-even levers: %v", err)
		}

		switch strings.ToLower(breakEvenFormat) {
		case "json":
			formatter := &breakeven.JSONFormatter{}
			out, err := formatter.FormatMulti(multi)
			if err != nil {
				log.Fatalf("Error formatting output: %v", err)
			}
			fmt.Println(out)
		case "table", "console", "":
			formatter := &breakeven.TableFormatter{}
			fmt.Print(formatter.FormatMulti(multi, input))
		default:
			log.Fatalf("Unsupported output format: %s (supported: table, json)", breakEvenFormat)
		}
		return
	}

	field, err := domain.ParseField(breakEvenField)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	lo, hi := breakEvenMin, breakEvenMax
	if param, ok := domain.SweepParameterFor(field); ok {
		if !cmd.Flags().Changed("min") {
			lo = param.Min
		}
		if !cmd.Flags().Changed("max") {
			hi = param.Max
		}
	}

	result, err := solver.Solve(ctx, input, field, lo, hi, breakeven.SolverOptions{})
	if err != nil {
		log.Fatalf("Error solving break-even: %v", err)
	}

	switch strings.ToLower(breakEvenFormat) {
	case "json":
		formatter := &breakeven.JSONFormatter{}
		out, err := formatter.Format(result)
		if err != nil {
			log.Fatalf("Error formatting output: %v", err)
		}
		fmt.Println(out)
	case "table", "console", "":
		formatter := &breakeven.TableFormatter{}
		fmt.Print(formatter.Format(result, input))
	default:
		log.Fatalf("Unsupported output format: %s (supported: table, json)", breakEvenFormat)
	}
}

// resolveInput produces the simulation input for a command: the named
// scenario from the file when one is given, the file's first scenario
// otherwise, and the built-in defaults when there is no file at all.
func resolveInput(inputFile, scenarioName string) (*domain.SimulationInput, error) {
	if inputFile == "" {
		if scenarioName != "" {
			return nil, fmt.Errorf("--scenario requires a scenario file")
		}
		def := domain.DefaultInput()
		return &def, nil
	}

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return nil, err
	}

	scenario := cfg.DefaultScenario()
	if scenarioName != "" {
		scenario = cfg.ScenarioByName(scenarioName)
		if scenario == nil {
			return nil, fmt.Errorf("scenario %q not found in %s (have: %s)",
				scenarioName, inputFile, strings.Join(cfg.ScenarioNames(), ", "))
		}
	}

	return scenario.Input.Clone(), nil
}

// loadConfiguration reads the scenario file, or synthesizes a one-scenario
// configuration from the built-in defaults when no file is given.
func loadConfiguration(inputFile string) (*domain.Configuration, error) {
	if inputFile == "" {
		return &domain.Configuration{
			Scenarios: []domain.NamedScenario{{Name: "Defaults", Input: domain.DefaultInput()}},
		}, nil
	}
	return config.NewInputParser().LoadFromFile(inputFile)
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bvr %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Println(info)
			}
		},
	}
}

func buildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return "go: " + info.GoVersion
}

func init() {
	calculateCmd.Flags().StringVar(&calculateScenario, "scenario", "", "Scenario name to run (default: first in the file)")
	calculateCmd.Flags().StringVarP(&calculateFormat, "format", "f", "console", "Output format (console, csv, json, pdf)")
	calculateCmd.Flags().StringVarP(&calculateOutput, "output", "o", "", "Write the report to a file instead of stdout")
	calculateCmd.Flags().BoolVarP(&calculateVerbose, "verbose", "v", false, "Enable verbose logging")
	calculateCmd.Flags().BoolVar(&calculateDebug, "debug", false, "Enable debug logging of the monthly simulation")

	compareCmd.Flags().StringVar(&compareBase, "base", "", "Base scenario name (default: first in the file)")
	compareCmd.Flags().StringSliceVar(&compareScenarios, "scenarios", nil, "Alternative scenario names from the same file")
	compareCmd.Flags().StringVar(&compareWith, "with", "", "Comma-separated template names to apply to the base")
	compareCmd.Flags().StringArrayVar(&compareTransforms, "transform", nil, "Ad hoc transform spec applied to the base (repeatable)")
	compareCmd.Flags().StringVar(&compareFormat, "format", "table", "Output format (table, csv, json)")
	compareCmd.Flags().BoolVar(&compareListTemplates, "list-templates", false, "List the built-in scenario templates and exit")

	breakEvenCmd.Flags().StringVar(&breakEvenScenario, "scenario", "", "Scenario name to solve against (default: first in the file)")
	breakEvenCmd.Flags().StringVar(&breakEvenField, "field", "", "Input field to solve for (default: all common levers)")
	breakEvenCmd.Flags().Float64Var(&breakEvenMin, "min", 0, "Lower bound of the search bracket")
	breakEvenCmd.Flags().Float64Var(&breakEvenMax, "max", 0, "Upper bound of the search bracket")
	breakEvenCmd.Flags().StringVar(&breakEvenFormat, "format", "table", "Output format (table, json)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(breakEvenCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
