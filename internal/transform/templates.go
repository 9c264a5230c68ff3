package transform

import (
	"fmt"
	"strings"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []InputTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	return names
}

// CreateBuiltInTemplates creates a template registry with common what-if
// scenarios for the buy-versus-rent decision
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Financing templates
	registry.Register(Template{
		Name:        "rates_up_1",
		Description: "Mortgage rate one point higher",
		Transforms: []InputTransform{
			&AdjustField{Field: domain.FieldMortgageRate, Delta: 1},
		},
	})

	registry.Register(Template{
		Name:        "rates_down_1",
		Description: "Mortgage rate one point lower",
		Transforms: []InputTransform{
			&AdjustField{Field: domain.FieldMortgageRate, Delta: -1},
		},
	})

	registry.Register(Template{
		Name:        "down_10",
		Description: "Put only 10 percent down",
		Transforms: []InputTransform{
			&SetField{Field: domain.FieldDownPaymentPercent, Value: 10},
		},
	})

	registry.Register(Template{
		Name:        "down_30",
		Description: "Put 30 percent down",
		Transforms: []InputTransform{
			&SetField{Field: domain.FieldDownPaymentPercent, Value: 30},
		},
	})

	registry.Register(Template{
		Name:        "fifteen_year_loan",
		Description: "Finance with a 15 year loan",
		Transforms: []InputTransform{
			&SetField{Field: domain.FieldLoanTermYears, Value: 15},
		},
	})

	// Housing market templates
	registry.Register(Template{
		Name:        "price_drop_10",
		Description: "Buy after a 10 percent price drop",
		Transforms: []InputTransform{
			&ScaleField{Field: domain.FieldHomePrice, Factor: 0.9},
		},
	})

	registry.Register(Template{
		Name:        "price_jump_10",
		Description: "Buy after a 10 percent price jump",
		Transforms: []InputTransform{
			&ScaleField{Field: domain.FieldHomePrice, Factor: 1.1},
		},
	})

	registry.Register(Template{
		Name:        "hot_market",
		Description: "Appreciation up 2 points, rent growth up 1 point",
		Transforms: []InputTransform{
			&AdjustField{Field: domain.FieldHomeAppreciation, Delta: 2},
			&AdjustField{Field: domain.FieldRentIncreaseRate, Delta: 1},
		},
	})

	registry.Register(Template{
		Name:        "cold_market",
		Description: "Appreciation down 2 points, rent growth down 1 point",
		Transforms: []InputTransform{
			&AdjustField{Field: domain.FieldHomeAppreciation, Delta: -2},
			&AdjustField{Field: domain.FieldRentIncreaseRate, Delta: -1},
		},
	})

	// Rental market templates
	registry.Register(Template{
		Name:        "rent_spike",
		Description: "Rent 20 percent higher and climbing faster",
		Transforms: []InputTransform{
			&ScaleField{Field: domain.FieldMonthlyRent, Factor: 1.2},
			&AdjustField{Field: domain.FieldRentIncreaseRate, Delta: 1},
		},
	})

	registry.Register(Template{
		Name:        "rent_control",
		Description: "Rent growth capped at 1 percent",
		Transforms: []InputTransform{
			&SetField{Field: domain.FieldRentIncreaseRate, Value: 1},
		},
	})

	// Timing and return templates
	registry.Register(Template{
		Name:        "stay_5yr",
		Description: "Sell or move after only 5 years",
		Transforms: []InputTransform{
			&SetField{Field: domain.FieldTimeHorizonYears, Value: 5},
		},
	})

	registry.Register(Template{
		Name:        "stay_20yr",
		Description: "Stay put for 20 years",
		Transforms: []InputTransform{
			&SetField{Field: domain.FieldTimeHorizonYears, Value: 20},
		},
	})

	registry.Register(Template{
		Name:        "returns_10pct",
		Description: "Strong 10 percent market returns",
		Transforms: []InputTransform{
			&SetField{Field: domain.FieldInvestmentReturn, Value: 10},
		},
	})

	registry.Register(Template{
		Name:        "returns_4pct",
		Description: "Weak 4 percent market returns",
		Transforms: []InputTransform{
			&SetField{Field: domain.FieldInvestmentReturn, Value: 4},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a base input
func ApplyTemplate(base *domain.SimulationInput, template Template) (*domain.SimulationInput, error) {
	if len(template.Transforms) == 0 {
		return base.Clone(), nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{
		"Financing":          {},
		"Housing Market":     {},
		"Rental Market":      {},
		"Timing and Returns": {},
	}

	for _, template := range registry.templates {
		name := template.Name
		switch {
		case strings.HasPrefix(name, "rates_") || strings.HasPrefix(name, "down_") || strings.HasPrefix(name, "fifteen_"):
			categories["Financing"] = append(categories["Financing"], template)
		case strings.HasPrefix(name, "price_") || strings.HasPrefix(name, "hot_") || strings.HasPrefix(name, "cold_"):
			categories["Housing Market"] = append(categories["Housing Market"], template)
		case strings.HasPrefix(name, "rent_"):
			categories["Rental Market"] = append(categories["Rental Market"], template)
		default:
			categories["Timing and Returns"] = append(categories["Timing and Returns"], template)
		}
	}

	for _, category := range []string{"Financing", "Housing Market", "Rental Market", "Timing and Returns"} {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  ./bvr compare --config scenarios.yaml --with rates_up_1,stay_5yr\n")
	sb.WriteString("  ./bvr compare --with down_10,hot_market\n")

	return sb.String()
}
