// Package catalog contains the hand-authored descriptions of the Phalcom builtin
// types and objects, along with the language keywords and operators.
package catalog

// TypeDescriptor describes a type before cross-references are resolved.
type TypeDescriptor struct {
	Name string `toml:"name"`
	// Super is the name of the super type, empty for root types.
	Super string `toml:"super"`
	// Meta is the name of the type of the type.
	Meta string `toml:"meta"`
	// Global types are completed as global symbols.
	Global bool `toml:"global"`
	// Methods holds raw signature strings, e.g. "get(at: Number): Object".
	Methods []string `toml:"methods"`
}

// ObjectDescriptor describes a builtin singleton value, e.g. null, true or self.
type ObjectDescriptor struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Global bool   `toml:"global"`
	Local  bool   `toml:"local"`
}

// Catalog is the full set of descriptors used to build a registry.
type Catalog struct {
	Types   []TypeDescriptor   `toml:"types"`
	Objects []ObjectDescriptor `toml:"objects"`
}

// Merge returns a new catalog containing the descriptors of c followed by those of other.
func (c Catalog) Merge(other Catalog) Catalog {
	return Catalog{
		Types:   append(append([]TypeDescriptor{}, c.Types...), other.Types...),
		Objects: append(append([]ObjectDescriptor{}, c.Objects...), other.Objects...),
	}
}

// Keywords of the language.
func Keywords() []string {
	return []string{
		"let",
		"const",
		"import",
		"from",
		"if",
		"else",
		"while",
		"for",
		"return",
		"break",
		"continue",
	}
}

// Operators of the language.
func Operators() []string {
	return []string{
		"+",
		"-",
		"*",
		"/",
		"%",
		"=",
		"+=",
		"-=",
		"*=",
		"/=",
		"%=",
		"++",
		"--",
		"==",
		"!=",
		">",
		"<",
		">=",
		"<=",
		"is",
		"in",
		"and",
		"or",
		"not",
	}
}
