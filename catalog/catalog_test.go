package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuiltinReturnsACopy(t *testing.T) {
	a := Builtin()
	a.Types[0].Name = "Changed"
	a.Types[0].Methods[0] = "changed"
	b := Builtin()
	if b.Types[0].Name != "Type" {
		t.Errorf("expected the first type to be Type, got %q", b.Types[0].Name)
	}
	if b.Types[0].Methods[0] != "getMethod(signature: String): Method" {
		t.Errorf("builtin methods were modified: %q", b.Types[0].Methods[0])
	}
}

func TestBuiltinTypeNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, td := range Builtin().Types {
		if seen[td.Name] {
			t.Errorf("duplicate type %q", td.Name)
		}
		seen[td.Name] = true
	}
}

func TestMerge(t *testing.T) {
	a := Catalog{
		Types:   []TypeDescriptor{{Name: "A"}},
		Objects: []ObjectDescriptor{{Name: "a", Type: "A"}},
	}
	b := Catalog{
		Types: []TypeDescriptor{{Name: "B"}},
	}
	actual := a.Merge(b)
	expected := Catalog{
		Types:   []TypeDescriptor{{Name: "A"}, {Name: "B"}},
		Objects: []ObjectDescriptor{{Name: "a", Type: "A"}},
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Error(diff)
	}
	actual.Types[0].Name = "Changed"
	if a.Types[0].Name != "A" {
		t.Error("merge modified the receiver")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Catalog
		expectedError string
	}{
		{
			name: "types and objects are loaded",
			input: `
[[types]]
name = "Set"
super = "Object"
meta = "Type"
global = true
methods = ["size: Number", "add(element: Object): Void"]

[[objects]]
name = "empty"
type = "Set"
global = true
`,
			expected: Catalog{
				Types: []TypeDescriptor{
					{
						Name:    "Set",
						Super:   "Object",
						Meta:    "Type",
						Global:  true,
						Methods: []string{"size: Number", "add(element: Object): Void"},
					},
				},
				Objects: []ObjectDescriptor{
					{Name: "empty", Type: "Set", Global: true},
				},
			},
		},
		{
			name:     "empty input is an empty catalog",
			input:    "",
			expected: Catalog{},
		},
		{
			name: "unknown keys are rejected",
			input: `
[[types]]
name = "Set"
supper = "Object"
`,
			expectedError: "supper",
		},
		{
			name: "invalid TOML includes the position",
			input: `
[[types]
name = "Set"
`,
			expectedError: "line 2",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := Load(strings.NewReader(test.input))
			if test.expectedError != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", test.expectedError)
				}
				if !strings.Contains(err.Error(), test.expectedError) {
					t.Fatalf("expected error containing %q, got %v", test.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.expected, actual); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing files return an error", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.toml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected not exist error, got %v", err)
		}
	})
	t.Run("decode errors include the path", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.toml")
		if err := os.WriteFile(path, []byte("types = 1"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		_, err := LoadFile(path)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("expected *ParseError, got %v", err)
		}
		if pe.Path != path {
			t.Errorf("expected path %q, got %q", path, pe.Path)
		}
	})
	t.Run("valid files are loaded", func(t *testing.T) {
		path := filepath.Join(dir, "valid.toml")
		if err := os.WriteFile(path, []byte("[[objects]]\nname = \"nil\"\ntype = \"Null\"\nlocal = true\n"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		c, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := []ObjectDescriptor{{Name: "nil", Type: "Null", Local: true}}
		if diff := cmp.Diff(expected, c.Objects); diff != "" {
			t.Error(diff)
		}
	})
}
