// Package completion proposes keywords, operators and symbols for the identifier
// being typed at the cursor.
package completion

// Kind classifies a completion item.
type Kind int

const (
	KindKeyword Kind = iota
	KindOperator
	KindType
	KindVar
	KindMethod
	KindField
	// KindPseudoVar is used for builtin values: null, void, true and false.
	KindPseudoVar
	// KindPseudoField is used for references available in method bodies: self and super.
	KindPseudoField
)

func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "Keyword"
	case KindOperator:
		return "Operator"
	case KindType:
		return "Type"
	case KindVar:
		return "Var"
	case KindMethod:
		return "Method"
	case KindField:
		return "Field"
	case KindPseudoVar:
		return "PseudoVar"
	case KindPseudoField:
		return "PseudoField"
	}
	return "Unknown"
}

// Item is a single completion suggestion.
type Item struct {
	// Label is displayed, and inserted unless InsertText is set.
	Label string `json:"label"`
	Kind  Kind   `json:"kind"`
	// InsertText is set for methods, to insert parameter names instead of the full signature.
	InsertText    string `json:"insertText,omitempty"`
	FilterText    string `json:"filterText,omitempty"`
	Detail        string `json:"detail,omitempty"`
	Documentation string `json:"documentation,omitempty"`
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
