package schema

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func echoCapability(t *testing.T) *Capability {
	t.Helper()
	c, err := New("echo", "Echo the input text.",
		[]Property{
			Field("text", String("text to echo")),
			Optional("repeat", Integer("repetitions"), int64(1)),
		},
		nil,
		func(ctx context.Context, args map[string]any) (any, error) {
			text := args["text"].(string)
			n := args["repeat"].(int64)
			return strings.Repeat(text, int(n)), nil
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestNew_InvalidName(t *testing.T) {
	_, err := New("bad name!", "", nil, nil, func(ctx context.Context, args map[string]any) (any, error) {
		return nil, nil
	})

	var defErr *DefinitionError
	if !errors.As(err, &defErr) {
		t.Fatalf("expected DefinitionError, got %v", err)
	}
}

func TestNew_NilHandler(t *testing.T) {
	_, err := New("noop", "", nil, nil, nil)

	var defErr *DefinitionError
	if !errors.As(err, &defErr) {
		t.Fatalf("expected DefinitionError, got %v", err)
	}
}

func TestNew_UnsupportedParameterKind(t *testing.T) {
	params := []Property{
		{Name: "x", Schema: &Schema{Kind: Kind("stream")}, Required: true},
	}

	_, err := New("bad_param", "", params, nil, func(ctx context.Context, args map[string]any) (any, error) {
		return nil, nil
	})

	var defErr *DefinitionError
	if !errors.As(err, &defErr) {
		t.Fatalf("expected DefinitionError, got %v", err)
	}
}

func TestNew_MissingParameterSchema(t *testing.T) {
	params := []Property{{Name: "x", Required: true}}

	_, err := New("untyped", "", params, nil, func(ctx context.Context, args map[string]any) (any, error) {
		return nil, nil
	})
	if err == nil {
		t.Error("expected error for parameter without schema")
	}
}

func TestCapability_Invoke_Success(t *testing.T) {
	c := echoCapability(t)

	res := c.Invoke(context.Background(), []byte(`{"text":"ha","repeat":2}`))

	if res.IsError {
		t.Fatalf("unexpected error result: %v", res.Content)
	}
	if res.Content != "haha" {
		t.Errorf("expected 'haha', got %v", res.Content)
	}
}

func TestCapability_Invoke_DefaultApplied(t *testing.T) {
	c := echoCapability(t)

	res := c.Invoke(context.Background(), []byte(`{"text":"once"}`))

	if res.IsError {
		t.Fatalf("unexpected error result: %v", res.Content)
	}
	if res.Content != "once" {
		t.Errorf("expected 'once', got %v", res.Content)
	}
}

func TestCapability_Invoke_InvalidArguments(t *testing.T) {
	handlerCalled := false
	c := MustNew("check", "", []Property{Field("n", Integer(""))}, nil,
		func(ctx context.Context, args map[string]any) (any, error) {
			handlerCalled = true
			return nil, nil
		})

	res := c.Invoke(context.Background(), []byte(`{"n":"not a number"}`))

	if !res.IsError {
		t.Error("expected error result for invalid arguments")
	}
	if handlerCalled {
		t.Error("handler must not run on validation failure")
	}
}

func TestCapability_Invoke_HandlerError(t *testing.T) {
	c := MustNew("failing", "", nil, nil,
		func(ctx context.Context, args map[string]any) (any, error) {
			return nil, errors.New("backend unavailable")
		})

	res := c.Invoke(context.Background(), []byte(`{}`))

	if !res.IsError {
		t.Error("expected error result for handler failure")
	}
	if !strings.Contains(res.Text(), "backend unavailable") {
		t.Errorf("expected handler error in result, got %q", res.Text())
	}
}

func TestCapability_Invoke_HandlerPanic(t *testing.T) {
	c := MustNew("panicking", "", nil, nil,
		func(ctx context.Context, args map[string]any) (any, error) {
			panic("boom")
		})

	res := c.Invoke(context.Background(), []byte(`{}`))

	if !res.IsError {
		t.Error("expected error result for panicking handler")
	}
}

func TestCapability_FunctionSchema(t *testing.T) {
	c, err := New("lookup", "Look up a word.",
		[]Property{Field("word", String("the word"))},
		[]Example{{Input: map[string]any{"word": "dog"}, Output: "ishapugu"}},
		func(ctx context.Context, args map[string]any) (any, error) { return nil, nil },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fs := c.FunctionSchema()

	if fs["type"] != "function" {
		t.Errorf("expected type=function, got %v", fs["type"])
	}
	fn := fs["function"].(map[string]any)
	if fn["name"] != "lookup" {
		t.Errorf("expected name=lookup, got %v", fn["name"])
	}
	if !strings.Contains(fn["description"].(string), "Examples:") {
		t.Error("expected examples appended to description")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	a := MustNew("same", "", nil, nil, func(ctx context.Context, args map[string]any) (any, error) { return nil, nil })
	b := MustNew("same", "", nil, nil, func(ctx context.Context, args map[string]any) (any, error) { return nil, nil })

	_, err := NewRegistry(a, b)
	if err == nil {
		t.Error("expected error for duplicate capability name")
	}
}

func TestRegistry_GetAndOrder(t *testing.T) {
	a := MustNew("first", "", nil, nil, func(ctx context.Context, args map[string]any) (any, error) { return nil, nil })
	b := MustNew("second", "", nil, nil, func(ctx context.Context, args map[string]any) (any, error) { return nil, nil })

	r, err := NewRegistry(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, ok := r.Get("second"); !ok || got != b {
		t.Error("expected to retrieve capability by name")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("expected miss for unregistered name")
	}
	all := r.All()
	if len(all) != 2 || all[0] != a || all[1] != b {
		t.Error("expected registration order preserved")
	}
}
