// Package signature parses the compact method and field signatures used by the
// Phalcom type catalog, e.g. "set(at: Number, with: Object): Void" or "size: Number".
package signature

import (
	"strings"

	"github.com/a-h/parse"
)

// Signature is the parsed form of a raw signature string.
type Signature struct {
	// Name of the method or field.
	Name string
	// Parameters is nil for fields. A method declared with "()" has an empty, non-nil list.
	Parameters []Parameter
	// Type is the return type, or empty if the signature doesn't declare one.
	Type string
}

// IsMethod returns true if the signature declares a parameter list.
func (s Signature) IsMethod() bool {
	return s.Parameters != nil
}

// InsertText is the text inserted into a document when the signature is completed.
// Parameter types are left out, so that only the names remain as placeholders.
func (s Signature) InsertText() string {
	if !s.IsMethod() {
		return s.Name
	}
	var sb strings.Builder
	sb.WriteString(s.Name)
	sb.WriteRune('(')
	for i, p := range s.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteString(": ")
	}
	sb.WriteRune(')')
	return sb.String()
}

// String renders the signature in catalog form.
func (s Signature) String() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	if s.IsMethod() {
		sb.WriteRune('(')
		for i, p := range s.Parameters {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.String())
		}
		sb.WriteRune(')')
	}
	if s.Type != "" {
		sb.WriteString(": ")
		sb.WriteString(s.Type)
	}
	return sb.String()
}

// Parameter of a method signature.
type Parameter struct {
	Name string
	// Type is empty for untyped parameters.
	Type string
}

func (p Parameter) String() string {
	if p.Type == "" {
		return p.Name
	}
	return p.Name + ": " + p.Type
}

var (
	openParen  = parse.Rune('(')
	closeParen = ")"
	comma      = parse.Rune(',')
	colon      = parse.Rune(':')
	remainder  = parse.StringUntilEOF(parse.EOF[string]())
)

// head splits "name(params" into the name, and the text between the first and second "(".
var head = parse.Then(
	parse.StringUntilEOF(openParen),
	parse.Optional(parse.Then(openParen, parse.StringUntilEOF(openParen))),
)

var typedName = parse.Then(
	parse.StringUntilEOF(colon),
	parse.Optional(parse.Then(colon, remainder)),
)

// parameter splits "name: Type" on the first colon.
var parameter = parse.Func(func(in *parse.Input) (p Parameter, ok bool, err error) {
	t, ok, err := typedName.Parse(in)
	if err != nil || !ok {
		return
	}
	p.Name = strings.TrimSpace(t.A)
	if t.B.OK {
		p.Type = strings.TrimSpace(t.B.Value.B)
	}
	return p, true, nil
})

// parameterList splits a comma separated list, parsing each piece as a parameter.
var parameterList = parse.Func(func(in *parse.Input) (params []Parameter, ok bool, err error) {
	params = []Parameter{}
	for {
		var piece string
		piece, ok, err = parse.StringUntilEOF(comma).Parse(in)
		if err != nil || !ok {
			return
		}
		var p Parameter
		p, ok, err = parameter.Parse(parse.NewInput(piece))
		if err != nil || !ok {
			return
		}
		params = append(params, p)
		// Chomp the separator, or stop at the end of the list.
		if _, ok, err = comma.Parse(in); err != nil || !ok {
			return params, true, err
		}
	}
})

// Parse a raw signature string. Parse never fails: missing pieces of a malformed
// signature are left empty.
//
// The last colon in the string separates the return type, regardless of any
// parentheses, and the parameter list is the text between the first "(" and a
// trailing ")". Nested parentheses are not supported.
func Parse(raw string) (sig Signature) {
	if i := strings.LastIndexByte(raw, ':'); i >= 0 {
		sig.Type = strings.TrimSpace(raw[i+1:])
		raw = raw[:i]
	}
	h, ok, err := head.Parse(parse.NewInput(raw))
	if err != nil || !ok {
		sig.Name = strings.TrimSpace(raw)
		return
	}
	sig.Name = strings.TrimSpace(h.A)
	if !h.B.OK {
		return
	}
	list := strings.TrimSpace(h.B.Value.B)
	if !strings.HasSuffix(list, closeParen) {
		return
	}
	list = strings.TrimSpace(strings.TrimSuffix(list, closeParen))
	if list == "" {
		sig.Parameters = []Parameter{}
		return
	}
	params, ok, err := parameterList.Parse(parse.NewInput(list))
	if err != nil || !ok {
		return
	}
	sig.Parameters = params
	return
}
