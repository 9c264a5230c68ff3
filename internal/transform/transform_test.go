package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// Helper function to create a basic test input
func createTestInput() *domain.SimulationInput {
	input := domain.DefaultInput()
	return &input
}

func TestApplyTransforms_NilInput(t *testing.T) {
	transforms := []InputTransform{
		&SetField{Field: domain.FieldHomePrice, Value: 500000},
	}

	_, err := ApplyTransforms(nil, transforms)
	if err == nil {
		t.Error("Expected error for nil input, got nil")
	}
}

func TestApplyTransforms_EmptyTransforms(t *testing.T) {
	base := createTestInput()

	result, err := ApplyTransforms(base, nil)
	if err != nil {
		t.Fatalf("Expected no error for empty transforms, got: %v", err)
	}
	if result == nil {
		t.Fatal("Expected non-nil result")
	}
	if result == base {
		t.Error("Expected a copy, got the base input itself")
	}
	if !result.HomePrice.Equal(base.HomePrice) {
		t.Errorf("Expected copy to match base, got price %s", result.HomePrice)
	}
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	base := createTestInput()
	transforms := []InputTransform{
		&SetField{Field: domain.FieldHomePrice, Value: 500000},
		nil,
	}

	_, err := ApplyTransforms(base, transforms)
	if err == nil {
		t.Fatal("Expected error for nil transform, got nil")
	}
	if !strings.Contains(err.Error(), "index 1") {
		t.Errorf("Expected error to identify the nil transform, got: %v", err)
	}
}

func TestApplyTransforms_Sequence(t *testing.T) {
	base := createTestInput()
	transforms := []InputTransform{
		&SetField{Field: domain.FieldHomePrice, Value: 500000},
		&AdjustField{Field: domain.FieldMortgageRate, Delta: 1},
	}

	result, err := ApplyTransforms(base, transforms)
	if err != nil {
		t.Fatalf("Expected transforms to apply, got: %v", err)
	}

	if got := result.Get(domain.FieldHomePrice); got != 500000 {
		t.Errorf("Expected home price 500000, got %v", got)
	}
	if got := result.Get(domain.FieldMortgageRate); got != 7.5 {
		t.Errorf("Expected mortgage rate 7.5, got %v", got)
	}

	// The base input must survive untouched.
	if got := base.Get(domain.FieldHomePrice); got != 400000 {
		t.Errorf("Expected base home price 400000, got %v", got)
	}
	if got := base.Get(domain.FieldMortgageRate); got != 6.5 {
		t.Errorf("Expected base mortgage rate 6.5, got %v", got)
	}
}

func TestSetField_TruncatesYearFields(t *testing.T) {
	base := createTestInput()
	transform := &SetField{Field: domain.FieldLoanTermYears, Value: 17.9}

	result, err := transform.Apply(base)
	if err != nil {
		t.Fatalf("Expected apply to succeed, got: %v", err)
	}

	if result.LoanTermYears != 17 {
		t.Errorf("Expected loan term 17, got %d", result.LoanTermYears)
	}
}

func TestSetField_Validate_UnknownField(t *testing.T) {
	base := createTestInput()
	transform := &SetField{Field: domain.Field("granite_countertops"), Value: 1}

	err := transform.Validate(base)
	if err == nil {
		t.Fatal("Expected error for unknown field, got nil")
	}

	var terr *TransformError
	if !errors.As(err, &terr) {
		t.Fatalf("Expected a TransformError, got %T", err)
	}
	if terr.TransformName != "set" {
		t.Errorf("Expected transform name 'set', got %q", terr.TransformName)
	}
}

func TestAdjustField_Apply(t *testing.T) {
	base := createTestInput()
	transform := &AdjustField{Field: domain.FieldMonthlyRent, Delta: -250}

	result, err := transform.Apply(base)
	if err != nil {
		t.Fatalf("Expected apply to succeed, got: %v", err)
	}

	if got := result.Get(domain.FieldMonthlyRent); got != 1750 {
		t.Errorf("Expected rent 1750, got %v", got)
	}
}

func TestScaleField_Apply(t *testing.T) {
	base := createTestInput()
	transform := &ScaleField{Field: domain.FieldHomePrice, Factor: 1.1}

	result, err := transform.Apply(base)
	if err != nil {
		t.Fatalf("Expected apply to succeed, got: %v", err)
	}

	if got := result.Get(domain.FieldHomePrice); got < 439999 || got > 440001 {
		t.Errorf("Expected home price near 440000, got %v", got)
	}
}

func TestScaleField_Validate_NonPositiveFactor(t *testing.T) {
	base := createTestInput()

	for _, factor := range []float64{0, -1.5} {
		transform := &ScaleField{Field: domain.FieldHomePrice, Factor: factor}
		if err := transform.Validate(base); err == nil {
			t.Errorf("Expected error for factor %v, got nil", factor)
		}
	}
}

func TestTransformRegistry_Create_Unknown(t *testing.T) {
	registry := NewTransformRegistry()

	_, err := registry.Create("teleport", nil)
	if err == nil {
		t.Fatal("Expected error for unknown transform, got nil")
	}
	if !strings.Contains(err.Error(), "unknown transform") {
		t.Errorf("Expected unknown transform error, got: %v", err)
	}
}

func TestTransformRegistry_List(t *testing.T) {
	registry := NewTransformRegistry()

	names := registry.List()
	if len(names) != 3 {
		t.Fatalf("Expected 3 built-in transforms, got %d: %v", len(names), names)
	}
	for i, want := range []string{"adjust", "scale", "set"} {
		if names[i] != want {
			t.Errorf("Expected sorted name %q at %d, got %q", want, i, names[i])
		}
	}
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{"valid set", "set:field=home_price,value=500000", false},
		{"valid adjust", "adjust:field=mortgage_rate,delta=-0.5", false},
		{"valid scale", "scale:field=monthly_rent,factor=1.1", false},
		{"missing colon", "set", true},
		{"unknown transform", "teleport:field=home_price,value=1", true},
		{"unknown field", "set:field=granite_countertops,value=1", true},
		{"missing value", "set:field=home_price", true},
		{"bad number", "set:field=home_price,value=lots", true},
		{"bad param pair", "set:field", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := registry.ParseTransformSpec(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for spec %q, got nil", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected spec %q to parse, got: %v", tt.spec, err)
			}
			if result == nil {
				t.Fatal("Expected non-nil transform")
			}
		})
	}
}

func TestTransformRegistry_ParseTransformSpec_SetFieldValues(t *testing.T) {
	registry := NewTransformRegistry()

	parsed, err := registry.ParseTransformSpec("set:field=home_price,value=500000")
	if err != nil {
		t.Fatalf("Expected spec to parse, got: %v", err)
	}

	set, ok := parsed.(*SetField)
	if !ok {
		t.Fatalf("Expected *SetField, got %T", parsed)
	}
	if set.Field != domain.FieldHomePrice {
		t.Errorf("Expected field home_price, got %q", set.Field)
	}
	if set.Value != 500000 {
		t.Errorf("Expected value 500000, got %v", set.Value)
	}
}
