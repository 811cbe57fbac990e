package signature

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Signature
	}{
		{
			name: "bare names are trimmed and have no parameters or type",
			raw:  "  construct  ",
			expected: Signature{
				Name: "construct",
			},
		},
		{
			name: "fields have a type but no parameters",
			raw:  "size: Number",
			expected: Signature{
				Name: "size",
				Type: "Number",
			},
		},
		{
			name: "methods have parameters and a type",
			raw:  "set(at: Number, with: Object): Void",
			expected: Signature{
				Name: "set",
				Parameters: []Parameter{
					{Name: "at", Type: "Number"},
					{Name: "with", Type: "Object"},
				},
				Type: "Void",
			},
		},
		{
			name: "empty parentheses are a method with no parameters",
			raw:  "pop(): Object",
			expected: Signature{
				Name:       "pop",
				Parameters: []Parameter{},
				Type:       "Object",
			},
		},
		{
			name: "operators can be method names",
			raw:  "+(other: String): String",
			expected: Signature{
				Name:       "+",
				Parameters: []Parameter{{Name: "other", Type: "String"}},
				Type:       "String",
			},
		},
		{
			name: "unary operators are fields",
			raw:  "-: Number",
			expected: Signature{
				Name: "-",
				Type: "Number",
			},
		},
		{
			name: "question marks are part of the name",
			raw:  "null?: Boolean",
			expected: Signature{
				Name: "null?",
				Type: "Boolean",
			},
		},
		{
			name: "untyped parameters have an empty type",
			raw:  "each(fn, initial: Object)",
			expected: Signature{
				// The last colon is inside the parameter list, so it splits the return type.
				Name: "each",
				Type: "Object)",
			},
		},
		{
			name: "untyped parameters without a return type",
			raw:  "zip(a, b)",
			expected: Signature{
				Name:       "zip",
				Parameters: []Parameter{{Name: "a"}, {Name: "b"}},
			},
		},
		{
			name: "a missing return type leaves the parameter list unterminated",
			raw:  "fromString(value: String)",
			expected: Signature{
				Name: "fromString",
				Type: "String)",
			},
		},
		{
			name: "unterminated parameter lists are ignored",
			raw:  "get(at: Number",
			expected: Signature{
				Name: "get",
				Type: "Number",
			},
		},
		{
			name: "nested parentheses are not supported",
			raw:  "call(fn(x)): Object",
			expected: Signature{
				Name: "call",
				Type: "Object",
			},
		},
		{
			name:     "empty strings produce an empty signature",
			raw:      "",
			expected: Signature{},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := Parse(test.raw)
			if diff := cmp.Diff(test.expected, actual); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	raw := "set(at: Object, with: Object): Void"
	if diff := cmp.Diff(Parse(raw), Parse(raw)); diff != "" {
		t.Error(diff)
	}
}

func TestInsertText(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "+(other: String): String", expected: "+(other: )"},
		{raw: "set(at: Number, with: Object): Void", expected: "set(at: , with: )"},
		{raw: "getMethods(): Array", expected: "getMethods()"},
		{raw: "size: Number", expected: "size"},
		{raw: "zip(a, b)", expected: "zip(a: , b: )"},
	}
	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			actual := Parse(test.raw).InsertText()
			if actual != test.expected {
				t.Errorf("expected %q, got %q", test.expected, actual)
			}
		})
	}
}

func TestString(t *testing.T) {
	for _, raw := range []string{
		"set(at: Number, with: Object): Void",
		"getMethods(): Array",
		"size: Number",
		"construct",
		"zip(a, b)",
	} {
		t.Run(raw, func(t *testing.T) {
			if actual := Parse(raw).String(); actual != raw {
				t.Errorf("expected %q, got %q", raw, actual)
			}
		})
	}
}
