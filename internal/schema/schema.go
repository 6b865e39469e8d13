// Package schema defines the declarative parameter and output schemas used to
// constrain model output and to describe capabilities (tools) offered to it.
//
// Schemas are built explicitly with the constructor functions below — there is
// no runtime type introspection. The supported kinds form a closed set; a
// schema outside it is rejected when a capability is registered.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Kind identifies one of the supported schema type kinds.
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindEnum    Kind = "enum"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindUnion   Kind = "union"
)

// Schema is an immutable declarative type descriptor. Build one with the
// constructor functions (String, Enum, Object, …) and treat it as read-only.
type Schema struct {
	Kind        Kind
	Description string

	// Values lists the allowed strings for KindEnum.
	Values []string

	// Properties lists the fields of a KindObject in declaration order.
	Properties []Property

	// Items describes the element type of a KindArray.
	Items *Schema

	// Variants lists the alternatives of a KindUnion.
	Variants []*Schema
}

// Property is a named field of an object schema. Optional properties may
// carry a default that is filled in during validation when absent.
type Property struct {
	Name     string
	Schema   *Schema
	Required bool
	Default  any
}

func String(description string) *Schema {
	return &Schema{Kind: KindString, Description: description}
}

func Integer(description string) *Schema {
	return &Schema{Kind: KindInteger, Description: description}
}

func Number(description string) *Schema {
	return &Schema{Kind: KindNumber, Description: description}
}

func Bool(description string) *Schema {
	return &Schema{Kind: KindBoolean, Description: description}
}

// Enum builds a closed string enumeration. The value list must be non-empty.
func Enum(description string, values ...string) *Schema {
	return &Schema{Kind: KindEnum, Description: description, Values: values}
}

// Object builds a structured type from an ordered property list.
func Object(description string, properties ...Property) *Schema {
	return &Schema{Kind: KindObject, Description: description, Properties: properties}
}

// Array builds an ordered list type over the given element schema.
func Array(description string, items *Schema) *Schema {
	return &Schema{Kind: KindArray, Description: description, Items: items}
}

// Union builds a tagged alternative over the given variant schemas.
func Union(variants ...*Schema) *Schema {
	return &Schema{Kind: KindUnion, Variants: variants}
}

// Field declares a required object property.
func Field(name string, s *Schema) Property {
	return Property{Name: name, Schema: s, Required: true}
}

// Optional declares an optional object property with a default value.
// Pass nil to omit the default.
func Optional(name string, s *Schema, def any) Property {
	return Property{Name: name, Schema: s, Default: def}
}

// Check verifies that the schema only uses supported kinds and that every
// composite is fully specified. It is called once at capability registration.
func (s *Schema) Check() error {
	if s == nil {
		return fmt.Errorf("schema is nil")
	}
	switch s.Kind {
	case KindString, KindInteger, KindNumber, KindBoolean:
		return nil
	case KindEnum:
		if len(s.Values) == 0 {
			return fmt.Errorf("enum schema has no values")
		}
		return nil
	case KindObject:
		seen := make(map[string]bool, len(s.Properties))
		for _, p := range s.Properties {
			if !isIdentifier(p.Name) {
				return fmt.Errorf("property name %q is not identifier-safe", p.Name)
			}
			if seen[p.Name] {
				return fmt.Errorf("duplicate property %q", p.Name)
			}
			seen[p.Name] = true
			if err := p.Schema.Check(); err != nil {
				return fmt.Errorf("property %q: %w", p.Name, err)
			}
			if p.Default != nil {
				if err := p.Schema.Validate(p.Default); err != nil {
					return fmt.Errorf("property %q: default does not match schema: %w", p.Name, err)
				}
			}
		}
		return nil
	case KindArray:
		if s.Items == nil {
			return fmt.Errorf("array schema has no item type")
		}
		if err := s.Items.Check(); err != nil {
			return fmt.Errorf("array items: %w", err)
		}
		return nil
	case KindUnion:
		if len(s.Variants) == 0 {
			return fmt.Errorf("union schema has no variants")
		}
		for i, v := range s.Variants {
			if err := v.Check(); err != nil {
				return fmt.Errorf("union variant %d: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported schema kind %q", s.Kind)
	}
}

// Validate checks a JSON-decoded value against the schema.
func (s *Schema) Validate(v any) error {
	_, err := s.Conform(v)
	return err
}

// Conform validates a JSON-decoded value against the schema and returns the
// value with optional-property defaults filled in. The input is not mutated.
func (s *Schema) Conform(v any) (any, error) {
	switch s.Kind {
	case KindString:
		if _, ok := v.(string); !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return v, nil
	case KindInteger:
		switch n := v.(type) {
		case float64:
			if n != math.Trunc(n) {
				return nil, fmt.Errorf("expected integer, got %v", n)
			}
			return int64(n), nil
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		default:
			return nil, fmt.Errorf("expected integer, got %T", v)
		}
	case KindNumber:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		default:
			return nil, fmt.Errorf("expected number, got %T", v)
		}
	case KindBoolean:
		if _, ok := v.(bool); !ok {
			return nil, fmt.Errorf("expected boolean, got %T", v)
		}
		return v, nil
	case KindEnum:
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected enum string, got %T", v)
		}
		for _, allowed := range s.Values {
			if str == allowed {
				return str, nil
			}
		}
		return nil, fmt.Errorf("value %q is not one of [%s]", str, strings.Join(s.Values, ", "))
	case KindObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected object, got %T", v)
		}
		out := make(map[string]any, len(s.Properties))
		for _, p := range s.Properties {
			val, present := obj[p.Name]
			if !present {
				if p.Required {
					return nil, fmt.Errorf("missing required property %q", p.Name)
				}
				if p.Default != nil {
					out[p.Name] = p.Default
				}
				continue
			}
			conformed, err := p.Schema.Conform(val)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", p.Name, err)
			}
			out[p.Name] = conformed
		}
		for name := range obj {
			if !s.hasProperty(name) {
				return nil, fmt.Errorf("unknown property %q", name)
			}
		}
		return out, nil
	case KindArray:
		list, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("expected array, got %T", v)
		}
		out := make([]any, len(list))
		for i, item := range list {
			conformed, err := s.Items.Conform(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = conformed
		}
		return out, nil
	case KindUnion:
		var lastErr error
		for _, variant := range s.Variants {
			conformed, err := variant.Conform(v)
			if err == nil {
				return conformed, nil
			}
			lastErr = err
		}
		return nil, fmt.Errorf("value matches no union variant: %w", lastErr)
	default:
		return nil, fmt.Errorf("unsupported schema kind %q", s.Kind)
	}
}

// ValidateJSON decodes raw JSON and conforms it against the schema.
func (s *Schema) ValidateJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return s.Conform(v)
}

func (s *Schema) hasProperty(name string) bool {
	for _, p := range s.Properties {
		if p.Name == name {
			return true
		}
	}
	return false
}

// MarshalJSON renders the schema as JSON Schema for the model wire format.
// Object schemas are closed (additionalProperties: false) so that structured
// output can be validated strictly.
func (s *Schema) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	if s.Description != "" {
		out["description"] = s.Description
	}
	switch s.Kind {
	case KindString:
		out["type"] = "string"
	case KindInteger:
		out["type"] = "integer"
	case KindNumber:
		out["type"] = "number"
	case KindBoolean:
		out["type"] = "boolean"
	case KindEnum:
		out["type"] = "string"
		out["enum"] = s.Values
	case KindObject:
		props := map[string]any{}
		required := make([]string, 0, len(s.Properties))
		for _, p := range s.Properties {
			props[p.Name] = p.Schema
			if p.Required {
				required = append(required, p.Name)
			}
		}
		out["type"] = "object"
		out["properties"] = props
		out["required"] = required
		out["additionalProperties"] = false
	case KindArray:
		out["type"] = "array"
		out["items"] = s.Items
	case KindUnion:
		return json.Marshal(map[string]any{"anyOf": s.Variants})
	default:
		return nil, fmt.Errorf("unsupported schema kind %q", s.Kind)
	}
	return json.Marshal(out)
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
