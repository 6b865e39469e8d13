package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSchema_Check_Valid(t *testing.T) {
	s := Object("person",
		Field("name", String("full name")),
		Optional("age", Integer("age in years"), int64(0)),
		Field("role", Enum("job role", "admin", "user")),
		Field("tags", Array("labels", String(""))),
	)

	if err := s.Check(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSchema_Check_EmptyEnum(t *testing.T) {
	s := Enum("empty")

	err := s.Check()
	if err == nil {
		t.Error("expected error for enum with no values")
	}
}

func TestSchema_Check_NilArrayItems(t *testing.T) {
	s := &Schema{Kind: KindArray}

	err := s.Check()
	if err == nil {
		t.Error("expected error for array without item type")
	}
}

func TestSchema_Check_UnsupportedKind(t *testing.T) {
	s := &Schema{Kind: Kind("channel")}

	err := s.Check()
	if err == nil {
		t.Error("expected error for unsupported kind")
	}
}

func TestSchema_Check_DuplicateProperty(t *testing.T) {
	s := Object("",
		Field("a", String("")),
		Field("a", Integer("")),
	)

	err := s.Check()
	if err == nil {
		t.Error("expected error for duplicate property")
	}
}

func TestSchema_Check_BadDefault(t *testing.T) {
	s := Object("", Optional("n", Integer(""), "five"))

	err := s.Check()
	if err == nil {
		t.Error("expected error for default not matching schema")
	}
}

func TestSchema_Conform_RequiredAndDefault(t *testing.T) {
	s := Object("",
		Field("a", String("")),
		Optional("b", Integer(""), int64(5)),
	)

	// {a:"x"} passes and picks up the default for b.
	out, err := s.Conform(map[string]any{"a": "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := out.(map[string]any)
	if obj["b"] != int64(5) {
		t.Errorf("expected default b=5, got %v", obj["b"])
	}

	// {a:"x", b:7} passes with the explicit value.
	out, err = s.Conform(map[string]any{"a": "x", "b": float64(7)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj = out.(map[string]any)
	if obj["b"] != int64(7) {
		t.Errorf("expected b=7, got %v", obj["b"])
	}

	// {} is rejected: a is required.
	if _, err := s.Conform(map[string]any{}); err == nil {
		t.Error("expected error for missing required property")
	}
}

func TestSchema_Conform_UnknownProperty(t *testing.T) {
	s := Object("", Field("a", String("")))

	_, err := s.Conform(map[string]any{"a": "x", "extra": true})
	if err == nil {
		t.Error("expected error for unknown property")
	}
}

func TestSchema_Conform_Enum(t *testing.T) {
	s := Enum("level", "low", "medium", "high")

	if _, err := s.Conform("medium"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := s.Conform("extreme"); err == nil {
		t.Error("expected error for value outside enum")
	}
}

func TestSchema_Conform_IntegerRejectsFraction(t *testing.T) {
	s := Integer("")

	if _, err := s.Conform(float64(3)); err != nil {
		t.Errorf("unexpected error for integral float: %v", err)
	}
	if _, err := s.Conform(3.5); err == nil {
		t.Error("expected error for fractional value")
	}
}

func TestSchema_Conform_Array(t *testing.T) {
	s := Array("", Integer(""))

	out, err := s.Conform([]any{float64(1), float64(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.([]any)) != 2 {
		t.Errorf("expected 2 elements, got %d", len(out.([]any)))
	}

	if _, err := s.Conform([]any{"one"}); err == nil {
		t.Error("expected error for mistyped element")
	}
}

func TestSchema_Conform_Union(t *testing.T) {
	s := Union(
		Object("", Field("head", String(""))),
		Object("", Field("person", Enum("", "first", "second", "third"))),
	)

	if _, err := s.Conform(map[string]any{"person": "first"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := s.Conform(map[string]any{"unrelated": true}); err == nil {
		t.Error("expected error for value matching no variant")
	}
}

func TestSchema_ValidateJSON_InvalidJSON(t *testing.T) {
	s := Object("", Field("a", String("")))

	_, err := s.ValidateJSON([]byte("{not json"))
	if err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestSchema_MarshalJSON(t *testing.T) {
	s := Object("query",
		Field("text", String("the text")),
		Optional("limit", Integer(""), int64(10)),
		Field("mode", Enum("", "fast", "slow")),
	)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round-trip failed: %v", err)
	}
	if decoded["type"] != "object" {
		t.Errorf("expected type=object, got %v", decoded["type"])
	}
	if decoded["additionalProperties"] != false {
		t.Error("expected additionalProperties=false")
	}
	required := decoded["required"].([]any)
	if len(required) != 2 {
		t.Errorf("expected 2 required properties, got %v", required)
	}
	if !strings.Contains(string(data), `"enum":["fast","slow"]`) {
		t.Errorf("expected enum values in output, got %s", data)
	}
}

func TestSchema_MarshalJSON_Union(t *testing.T) {
	s := Union(String(""), Integer(""))

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "anyOf") {
		t.Errorf("expected anyOf in union output, got %s", data)
	}
}
