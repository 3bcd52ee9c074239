package engine

import (
	"fmt"
	"sort"
)

// Serializable is implemented by components that can be described in a
// scene or config file as a map of properties.
type Serializable interface {
	Component
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

// ComponentFactory creates a component with its default settings.
type ComponentFactory func() Serializable

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a component type under name. Registering the
// same name twice panics.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent builds a registered component and applies data to it.
func CreateComponent(name string, data map[string]any) (Serializable, error) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown component type %q", name)
	}
	c := factory()
	if data != nil {
		c.Deserialize(data)
	}
	return c, nil
}

// RegisteredComponents returns the registered type names, sorted.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Float reads a numeric property. YAML decodes whole numbers as int, JSON as
// float64; both are accepted.
func Float(data map[string]any, key string) (float32, bool) {
	switch v := data[key].(type) {
	case float64:
		return float32(v), true
	case float32:
		return v, true
	case int:
		return float32(v), true
	case int64:
		return float32(v), true
	}
	return 0, false
}

func Bool(data map[string]any, key string) (bool, bool) {
	v, ok := data[key].(bool)
	return v, ok
}

func String(data map[string]any, key string) (string, bool) {
	v, ok := data[key].(string)
	return v, ok
}

// Vector3 reads a property written either as [x, y, z] or {x:, y:, z:}.
func Vector3(data map[string]any, key string) (x, y, z float32, ok bool) {
	switch v := data[key].(type) {
	case []any:
		if len(v) != 3 {
			return 0, 0, 0, false
		}
		vals := map[string]any{"x": v[0], "y": v[1], "z": v[2]}
		return Vector3(map[string]any{key: vals}, key)
	case map[string]any:
		var okX, okY, okZ bool
		x, okX = Float(v, "x")
		y, okY = Float(v, "y")
		z, okZ = Float(v, "z")
		return x, y, z, okX && okY && okZ
	}
	return 0, 0, 0, false
}

// Strings reads a list of strings; non-string entries are skipped.
func Strings(data map[string]any, key string) ([]string, bool) {
	switch v := data[key].(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}
