package genai

import (
	"encoding/json"
	"reflect"
	"testing"
)

// TestExtractJSONDirect verifies a string that already is valid JSON
// parses without any recovery.
func TestExtractJSONDirect(t *testing.T) {
	v, ok := ExtractJSON(`{"message":"hello","n":2}`)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("got %T, want object", v)
	}
	if obj["message"] != "hello" {
		t.Errorf("message = %v, want hello", obj["message"])
	}
}

// TestExtractJSONWrapped verifies recovery when the model wraps JSON in
// prose or markdown fences.
func TestExtractJSONWrapped(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"prose", `Sure! Here is your plan: {"daysPerWeek":3} Hope it helps.`},
		{"fence", "```json\n{\"daysPerWeek\":3}\n```"},
		{"leading newline", "\n\n{\"daysPerWeek\":3}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ExtractJSON(tt.in)
			if !ok {
				t.Fatal("expected extraction to succeed")
			}
			obj, ok := v.(map[string]any)
			if !ok {
				t.Fatalf("got %T, want object", v)
			}
			if obj["daysPerWeek"] != float64(3) {
				t.Errorf("daysPerWeek = %v, want 3", obj["daysPerWeek"])
			}
		})
	}
}

// TestExtractJSONFailure verifies that inputs with no recoverable JSON
// signal failure instead of panicking or returning garbage.
func TestExtractJSONFailure(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t"},
		{"no braces", "I could not produce a plan."},
		{"reversed braces", "} nothing here {"},
		{"unclosed", `{"message": "never closed`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v, ok := ExtractJSON(tt.in); ok {
				t.Errorf("ExtractJSON(%q) = %v, want failure", tt.in, v)
			}
		})
	}
}

// TestExtractJSONIdempotent verifies that re-extracting the serialized
// result of an extraction yields the same value.
func TestExtractJSONIdempotent(t *testing.T) {
	in := "noise before {\"a\":[1,2],\"b\":{\"c\":\"d\"}} noise after"

	first, ok := ExtractJSON(in)
	if !ok {
		t.Fatal("first extraction failed")
	}
	serialized, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	second, ok := ExtractJSON(string(serialized))
	if !ok {
		t.Fatal("second extraction failed")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second = %v, want %v", second, first)
	}
}

// TestExtractJSONNonObject verifies non-object JSON values still parse;
// callers downstream decide whether they are usable.
func TestExtractJSONNonObject(t *testing.T) {
	v, ok := ExtractJSON(`[1, 2, 3]`)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if _, isArr := v.([]any); !isArr {
		t.Errorf("got %T, want array", v)
	}
}
