// Package registry resolves a catalog into the read-only symbol context that
// completions are computed from.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/a-h/phalcomlsp/catalog"
	"github.com/a-h/phalcomlsp/signature"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"
)

var (
	// ErrUnresolvedType is returned by Build when a descriptor refers to a type that isn't in the catalog.
	ErrUnresolvedType = errors.New("unresolved type")
	// ErrDuplicateType is returned by Build when a type name is defined more than once.
	ErrDuplicateType = errors.New("duplicate type")
)

// Method of a type, with its parsed signature.
type Method struct {
	SignatureString string
	Signature       signature.Signature
}

// Type is a resolved catalog type. Super and meta types are referenced by name,
// and always refer to another type in the same Context, or are empty.
type Type struct {
	Name    string
	Super   string
	Meta    string
	Methods []Method
}

// Context is the resolved catalog. It is not modified after Build returns, so it
// is safe for concurrent use.
type Context struct {
	types     map[string]*Type
	typeNames []string
	globals   *Symbols
	locals    *Symbols
}

// Build a Context from the catalog.
//
// The returned Context is always usable. Super and meta references to types that
// don't exist in the catalog resolve to nothing, as if the type was a root type.
// Objects keep the type name they declare. Each unresolved reference is reported
// in the returned error, along with any duplicate type definitions.
func Build(c catalog.Catalog) (ctx *Context, err error) {
	ctx = &Context{
		types:   make(map[string]*Type, len(c.Types)),
		globals: newSymbols(),
		locals:  newSymbols(),
	}

	// Create every type first, since descriptors refer to each other by name.
	for _, td := range c.Types {
		if _, exists := ctx.types[td.Name]; exists {
			err = multierror.Append(err, fmt.Errorf("%w: %q", ErrDuplicateType, td.Name))
		} else {
			ctx.typeNames = append(ctx.typeNames, td.Name)
		}
		t := &Type{
			Name:    td.Name,
			Methods: make([]Method, len(td.Methods)),
		}
		for i, raw := range td.Methods {
			t.Methods[i] = Method{
				SignatureString: raw,
				Signature:       signature.Parse(raw),
			}
		}
		ctx.types[td.Name] = t
	}

	// Then link super and meta types.
	for _, td := range c.Types {
		t := ctx.types[td.Name]
		var resolveErr error
		t.Super, resolveErr = ctx.resolve(td.Super, "super type of "+td.Name)
		err = appendIfError(err, resolveErr)
		t.Meta, resolveErr = ctx.resolve(td.Meta, "meta type of "+td.Name)
		err = appendIfError(err, resolveErr)
	}

	for _, td := range c.Types {
		if td.Global {
			ctx.globals.add(td.Name, td.Name)
		}
	}
	// Objects keep their declared type name, even when it doesn't resolve.
	for _, od := range c.Objects {
		_, resolveErr := ctx.resolve(od.Type, "type of "+od.Name)
		err = appendIfError(err, resolveErr)
		if od.Global {
			ctx.globals.add(od.Name, od.Type)
		}
		if od.Local {
			ctx.locals.add(od.Name, od.Type)
		}
	}
	return ctx, err
}

func appendIfError(err error, next error) error {
	if next == nil {
		return err
	}
	return multierror.Append(err, next)
}

func (ctx *Context) resolve(name, of string) (string, error) {
	if name == "" {
		return "", nil
	}
	if _, ok := ctx.types[name]; !ok {
		return "", fmt.Errorf("%w: %s: %q", ErrUnresolvedType, of, name)
	}
	return name, nil
}

// Type returns the named type.
func (ctx *Context) Type(name string) (t *Type, ok bool) {
	t, ok = ctx.types[name]
	return
}

// IsType returns true if the name is a registered type.
func (ctx *Context) IsType(name string) bool {
	_, ok := ctx.types[name]
	return ok
}

// Super returns the super type of the named type.
func (ctx *Context) Super(name string) (t *Type, ok bool) {
	if t, ok = ctx.types[name]; !ok {
		return
	}
	return ctx.Type(t.Super)
}

// Meta returns the type of the named type.
func (ctx *Context) Meta(name string) (t *Type, ok bool) {
	if t, ok = ctx.types[name]; !ok {
		return
	}
	return ctx.Type(t.Meta)
}

// Types returns all types in catalog order.
func (ctx *Context) Types() []*Type {
	types := make([]*Type, len(ctx.typeNames))
	for i, name := range ctx.typeNames {
		types[i] = ctx.types[name]
	}
	return types
}

// Ancestors returns the super type chain of the named type, nearest first.
// Cycles in the chain are cut at the first repeated type.
func (ctx *Context) Ancestors(name string) (names []string) {
	seen := map[string]bool{name: true}
	for {
		st, ok := ctx.Super(name)
		if !ok || seen[st.Name] {
			return
		}
		seen[st.Name] = true
		names = append(names, st.Name)
		name = st.Name
	}
}

// Globals returns the global symbols.
func (ctx *Context) Globals() *Symbols {
	return ctx.globals
}

// Locals returns the symbols available inside method bodies.
func (ctx *Context) Locals() *Symbols {
	return ctx.locals
}

// Symbols maps identifiers to type names, and keeps the order they were added in.
type Symbols struct {
	names []string
	types map[string]string
}

func newSymbols() *Symbols {
	return &Symbols{
		types: map[string]string{},
	}
}

func (s *Symbols) add(name, typeName string) {
	if _, exists := s.types[name]; !exists {
		s.names = append(s.names, name)
	}
	s.types[name] = typeName
}

// Lookup returns the type name of the symbol.
func (s *Symbols) Lookup(name string) (typeName string, ok bool) {
	typeName, ok = s.types[name]
	return
}

// Has returns true if the symbol exists.
func (s *Symbols) Has(name string) bool {
	_, ok := s.types[name]
	return ok
}

// Names returns the symbol names in the order they were added.
func (s *Symbols) Names() []string {
	return slices.Clone(s.names)
}

// WithPrefix returns the symbol names that start with prefix, in the order they were added.
func (s *Symbols) WithPrefix(prefix string) (names []string) {
	for _, name := range s.names {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names
}
