package transform

import (
	"strings"
	"testing"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

func TestTemplateRegistry_RegisterAndGet(t *testing.T) {
	registry := NewTemplateRegistry()

	template := Template{
		Name:        "test_template",
		Description: "A test template",
		Transforms:  []InputTransform{},
	}

	registry.Register(template)

	// Test exact match
	retrieved, ok := registry.Get("test_template")
	if !ok {
		t.Fatal("Expected to find template")
	}
	if retrieved.Name != template.Name {
		t.Errorf("Expected name %s, got %s", template.Name, retrieved.Name)
	}

	// Test case-insensitive
	_, ok = registry.Get("TEST_TEMPLATE")
	if !ok {
		t.Fatal("Expected case-insensitive lookup to work")
	}

	// Test not found
	_, ok = registry.Get("nonexistent")
	if ok {
		t.Error("Expected not to find nonexistent template")
	}
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	expected := []string{
		"rates_up_1", "rates_down_1", "down_10", "down_30", "fifteen_year_loan",
		"price_drop_10", "price_jump_10", "hot_market", "cold_market",
		"rent_spike", "rent_control",
		"stay_5yr", "stay_20yr", "returns_10pct", "returns_4pct",
	}

	for _, name := range expected {
		if _, ok := registry.Get(name); !ok {
			t.Errorf("Expected built-in template %q", name)
		}
	}

	if len(registry.List()) != len(expected) {
		t.Errorf("Expected %d templates, got %d", len(expected), len(registry.List()))
	}
}

func TestCreateBuiltInTemplates_AllApply(t *testing.T) {
	registry := CreateBuiltInTemplates()
	input := domain.DefaultInput()

	for _, name := range registry.List() {
		template, _ := registry.Get(name)
		if _, err := ApplyTemplate(&input, template); err != nil {
			t.Errorf("Expected template %q to apply to the default input, got: %v", name, err)
		}
	}
}

func TestApplyTemplate_RatesUp(t *testing.T) {
	registry := CreateBuiltInTemplates()
	input := domain.DefaultInput()

	template, ok := registry.Get("rates_up_1")
	if !ok {
		t.Fatal("Expected rates_up_1 template")
	}

	result, err := ApplyTemplate(&input, template)
	if err != nil {
		t.Fatalf("Expected template to apply, got: %v", err)
	}

	if got := result.Get(domain.FieldMortgageRate); got != 7.5 {
		t.Errorf("Expected mortgage rate 7.5, got %v", got)
	}
	if got := input.Get(domain.FieldMortgageRate); got != 6.5 {
		t.Errorf("Expected base mortgage rate untouched at 6.5, got %v", got)
	}
}

func TestApplyTemplate_EmptyTransforms(t *testing.T) {
	input := domain.DefaultInput()

	result, err := ApplyTemplate(&input, Template{Name: "noop"})
	if err != nil {
		t.Fatalf("Expected empty template to apply, got: %v", err)
	}
	if result == &input {
		t.Error("Expected a copy, got the base input itself")
	}
}

func TestParseTemplateList(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"rates_up_1", 1},
		{"rates_up_1,stay_5yr", 2},
		{" rates_up_1 , stay_5yr ", 2},
		{"rates_up_1,,stay_5yr", 2},
	}

	for _, tt := range tests {
		result := ParseTemplateList(tt.input)
		if len(result) != tt.expected {
			t.Errorf("ParseTemplateList(%q): expected %d names, got %d", tt.input, tt.expected, len(result))
		}
	}
}

func TestGetTemplateHelp(t *testing.T) {
	registry := CreateBuiltInTemplates()

	help := GetTemplateHelp(registry)

	for _, want := range []string{"Financing:", "Housing Market:", "Rental Market:", "Timing and Returns:", "rates_up_1", "Usage:"} {
		if !strings.Contains(help, want) {
			t.Errorf("Expected help text to contain %q", want)
		}
	}
}

func TestGetTemplateHelp_Empty(t *testing.T) {
	help := GetTemplateHelp(NewTemplateRegistry())

	if help != "No templates registered" {
		t.Errorf("Expected empty registry message, got %q", help)
	}
}
