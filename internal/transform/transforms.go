package transform

import (
	"fmt"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// SetField pins one input field to an absolute value.
type SetField struct {
	Field domain.Field
	Value float64
}

// Apply returns a copy of the base input with the field overwritten.
func (t *SetField) Apply(base *domain.SimulationInput) (*domain.SimulationInput, error) {
	modified := base.Clone()
	modified.Set(t.Field, t.Value)
	return modified, nil
}

// Name returns the transform identifier.
func (t *SetField) Name() string {
	return "set"
}

// Description returns a human-readable description.
func (t *SetField) Description() string {
	return fmt.Sprintf("Set %s to %v", t.Field, t.Value)
}

// Validate checks the transform parameters.
func (t *SetField) Validate(base *domain.SimulationInput) error {
	if !t.Field.Valid() {
		return NewTransformError("set", "validate", fmt.Sprintf("unknown field %q", string(t.Field)), nil)
	}
	return nil
}

// AdjustField shifts one input field by a fixed delta. Rate fields move
// in percentage points, dollar fields in dollars, year fields in whole
// years.
type AdjustField struct {
	Field domain.Field
	Delta float64
}

// Apply returns a copy of the base input with the field shifted.
func (t *AdjustField) Apply(base *domain.SimulationInput) (*domain.SimulationInput, error) {
	modified := base.Clone()
	modified.Set(t.Field, base.Get(t.Field)+t.Delta)
	return modified, nil
}

// Name returns the transform identifier.
func (t *AdjustField) Name() string {
	return "adjust"
}

// Description returns a human-readable description.
func (t *AdjustField) Description() string {
	if t.Delta >= 0 {
		return fmt.Sprintf("Increase %s by %v", t.Field, t.Delta)
	}
	return fmt.Sprintf("Decrease %s by %v", t.Field, -t.Delta)
}

// Validate checks the transform parameters.
func (t *AdjustField) Validate(base *domain.SimulationInput) error {
	if !t.Field.Valid() {
		return NewTransformError("adjust", "validate", fmt.Sprintf("unknown field %q", string(t.Field)), nil)
	}
	return nil
}

// ScaleField multiplies one input field by a positive factor.
type ScaleField struct {
	Field  domain.Field
	Factor float64
}

// Apply returns a copy of the base input with the field scaled.
func (t *ScaleField) Apply(base *domain.SimulationInput) (*domain.SimulationInput, error) {
	modified := base.Clone()
	modified.Set(t.Field, base.Get(t.Field)*t.Factor)
	return modified, nil
}

// Name returns the transform identifier.
func (t *ScaleField) Name() string {
	return "scale"
}

// Description returns a human-readable description.
func (t *ScaleField) Description() string {
	return fmt.Sprintf("Scale %s by %v", t.Field, t.Factor)
}

// Validate checks the transform parameters.
func (t *ScaleField) Validate(base *domain.SimulationInput) error {
	if !t.Field.Valid() {
		return NewTransformError("scale", "validate", fmt.Sprintf("unknown field %q", string(t.Field)), nil)
	}
	if t.Factor <= 0 {
		return NewTransformError("scale", "validate", fmt.Sprintf("scale factor must be positive, got %v", t.Factor), nil)
	}
	return nil
}
