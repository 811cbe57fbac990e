package documents

import (
	"testing"

	"go.lsp.dev/uri"
)

func TestStore(t *testing.T) {
	u := uri.File("/home/user/project/main.phalcom")
	s := NewStore()

	s.Open(u, 1, "let x = 1\r\nlet y = Nu\n")

	t.Run("lines are returned without line endings", func(t *testing.T) {
		tests := []struct {
			line     int
			expected string
			ok       bool
		}{
			{line: 0, expected: "let x = 1", ok: true},
			{line: 1, expected: "let y = Nu", ok: true},
			{line: 2, expected: "", ok: true},
			{line: 3, expected: "", ok: false},
			{line: -1, expected: "", ok: false},
		}
		for _, test := range tests {
			actual, ok := s.Line(u, test.line)
			if ok != test.ok || actual != test.expected {
				t.Errorf("line %d: expected %q, %v, got %q, %v", test.line, test.expected, test.ok, actual, ok)
			}
		}
	})
	t.Run("updates replace the text", func(t *testing.T) {
		if !s.Update(u, 2, "let z = 3") {
			t.Fatal("expected the update to be applied")
		}
		if actual, _ := s.Line(u, 0); actual != "let z = 3" {
			t.Errorf("unexpected line: %q", actual)
		}
	})
	t.Run("stale updates are ignored", func(t *testing.T) {
		if s.Update(u, 1, "stale") {
			t.Error("expected the update to be ignored")
		}
		if actual, _ := s.Line(u, 0); actual != "let z = 3" {
			t.Errorf("unexpected line: %q", actual)
		}
	})
	t.Run("unknown documents have no lines", func(t *testing.T) {
		if _, ok := s.Line(uri.File("/other.phalcom"), 0); ok {
			t.Error("expected no line")
		}
	})
	t.Run("closed documents are removed", func(t *testing.T) {
		s.Close(u)
		if s.Len() != 0 {
			t.Errorf("expected no documents, got %d", s.Len())
		}
		if _, ok := s.Line(u, 0); ok {
			t.Error("expected no line")
		}
	})
}
