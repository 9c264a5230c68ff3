package compare

import (
	"context"
	"fmt"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/calculation"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/config"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/transform"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	Engine            *calculation.Engine
	Parser            *config.InputParser
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(engine *calculation.Engine) *CompareEngine {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	return &CompareEngine{
		Engine:            engine,
		Parser:            config.NewInputParser(),
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Name of the base scenario; empty selects the first
	Templates        []string // Template names to apply to the base
	TransformSpecs   []string // Ad hoc transform specs ("set:field=home_price,value=500000")
}

// Compare runs the base scenario plus one alternative per template and
// transform spec, each derived from the base input.
func (ce *CompareEngine) Compare(
	ctx context.Context,
	cfg *domain.Configuration,
	options CompareOptions,
) (*ComparisonSet, error) {

	baseScenario := cfg.DefaultScenario()
	if options.BaseScenarioName != "" {
		baseScenario = cfg.ScenarioByName(options.BaseScenarioName)
	}
	if baseScenario == nil {
		return nil, fmt.Errorf("base scenario %s not found in configuration", options.BaseScenarioName)
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(baseScenario.Name, ce.Engine.Run(&baseScenario.Input))

	alternatives := []ComparisonResult{}

	for _, templateName := range options.Templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modified, err := transform.ApplyTemplate(&baseScenario.Input, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}

		name := baseScenario.Name + "_" + templateName
		altResult, err := ce.runAlternative(name, template.Description, modified, baseResult)
		if err != nil {
			return nil, err
		}

		alternatives = append(alternatives, altResult)
	}

	for _, spec := range options.TransformSpecs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t, err := ce.TransformRegistry.ParseTransformSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid transform spec %q: %w", spec, err)
		}

		modified, err := transform.ApplyTransforms(&baseScenario.Input, []transform.InputTransform{t})
		if err != nil {
			return nil, fmt.Errorf("failed to apply transform %q: %w", spec, err)
		}

		name := baseScenario.Name + "_" + t.Name()
		altResult, err := ce.runAlternative(name, t.Description(), modified, baseResult)
		if err != nil {
			return nil, err
		}

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenario.Name,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareScenarios compares explicit scenarios from the configuration
// (not derived via templates).
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	cfg *domain.Configuration,
	baseScenarioName string,
	alternativeScenarioNames []string,
) (*ComparisonSet, error) {

	baseScenario := cfg.ScenarioByName(baseScenarioName)
	if baseScenario == nil {
		return nil, fmt.Errorf("base scenario %s not found", baseScenarioName)
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(baseScenario.Name, ce.Engine.Run(&baseScenario.Input))

	alternatives := []ComparisonResult{}

	for _, altName := range alternativeScenarioNames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		altScenario := cfg.ScenarioByName(altName)
		if altScenario == nil {
			return nil, fmt.Errorf("alternative scenario %s not found", altName)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(altScenario.Name, ce.Engine.Run(&altScenario.Input))
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// runAlternative validates a derived input, simulates it and computes its
// metrics relative to the base.
func (ce *CompareEngine) runAlternative(name, description string, input *domain.SimulationInput, base ComparisonResult) (ComparisonResult, error) {
	if err := ce.Parser.ValidateInput(input); err != nil {
		return ComparisonResult{}, fmt.Errorf("derived scenario %s is invalid: %w", name, err)
	}

	altResult := ce.MetricsCalculator.CalculateMetrics(name, ce.Engine.Run(input))
	altResult.Description = description
	altResult = ce.MetricsCalculator.CalculateComparison(altResult, base)

	return altResult, nil
}
