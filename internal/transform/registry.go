package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (InputTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set", createSetField)
	registry.Register("adjust", createAdjustField)
	registry.Register("scale", createScaleField)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (InputTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms in sorted order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set:field=home_price,value=500000"
func (r *TransformRegistry) ParseTransformSpec(spec string) (InputTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func parseFieldParam(transformName string, params map[string]string) (domain.Field, error) {
	fieldStr, ok := params["field"]
	if !ok {
		return "", fmt.Errorf("%s requires 'field' parameter", transformName)
	}

	field, err := domain.ParseField(fieldStr)
	if err != nil {
		return "", fmt.Errorf("invalid field: %w", err)
	}

	return field, nil
}

func parseFloatParam(transformName, key string, params map[string]string) (float64, error) {
	valueStr, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transformName, key)
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}

	return value, nil
}

func createSetField(params map[string]string) (InputTransform, error) {
	field, err := parseFieldParam("set", params)
	if err != nil {
		return nil, err
	}

	value, err := parseFloatParam("set", "value", params)
	if err != nil {
		return nil, err
	}

	return &SetField{Field: field, Value: value}, nil
}

func createAdjustField(params map[string]string) (InputTransform, error) {
	field, err := parseFieldParam("adjust", params)
	if err != nil {
		return nil, err
	}

	delta, err := parseFloatParam("adjust", "delta", params)
	if err != nil {
		return nil, err
	}

	return &AdjustField{Field: field, Delta: delta}, nil
}

func createScaleField(params map[string]string) (InputTransform, error) {
	field, err := parseFieldParam("scale", params)
	if err != nil {
		return nil, err
	}

	factor, err := parseFloatParam("scale", "factor", params)
	if err != nil {
		return nil, err
	}

	return &ScaleField{Field: field, Factor: factor}, nil
}
