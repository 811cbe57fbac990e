package completion

import (
	"regexp"
	"strings"

	"github.com/a-h/phalcomlsp/catalog"
	"github.com/a-h/phalcomlsp/registry"
)

// Hint provides lexical information about where the prefix was typed.
type Hint int

const (
	HintNone Hint = iota
	// HintMemberAccess is used when the prefix immediately follows a ".".
	HintMemberAccess
)

var (
	keywords  = catalog.Keywords()
	operators = catalog.Operators()
	number    = regexp.MustCompile(`^\d+$`)
	typeLike  = regexp.MustCompile(`^[A-Z]`)
)

// generator produces the candidates of a single category.
type generator func(ctx *registry.Context, prefix string, hint Hint) []Item

// cascade is evaluated in order, stopping at the first category that has candidates.
var cascade = []generator{
	globalCompletions,
	keywordCompletions,
	operatorCompletions,
	localCompletions,
	methodCompletions,
}

// Resolve the completions for the prefix. A nil ctx, e.g. after the registry has been
// destroyed, results in no completions.
func Resolve(ctx *registry.Context, prefix string, hint Hint) []Item {
	if ctx == nil || number.MatchString(prefix) {
		return nil
	}
	for _, g := range cascade {
		if items := g(ctx, prefix, hint); len(items) > 0 {
			return items
		}
	}
	return nil
}

func globalCompletions(ctx *registry.Context, prefix string, _ Hint) []Item {
	return symbolCompletions(ctx, ctx.Globals(), prefix, "global")
}

func localCompletions(ctx *registry.Context, prefix string, _ Hint) []Item {
	return symbolCompletions(ctx, ctx.Locals(), prefix, "local")
}

func symbolCompletions(ctx *registry.Context, symbols *registry.Symbols, prefix, scope string) (items []Item) {
	if prefix == "" {
		return nil
	}
	for _, name := range symbols.WithPrefix(prefix) {
		item := Item{
			Label: name,
			Kind:  Classify(ctx, name),
		}
		if typeName, _ := symbols.Lookup(name); typeName != "" {
			item.Detail = scope + " " + typeName
		}
		items = append(items, item)
	}
	return items
}

func keywordCompletions(_ *registry.Context, prefix string, _ Hint) []Item {
	return listCompletions(keywords, prefix, KindKeyword)
}

func operatorCompletions(_ *registry.Context, prefix string, _ Hint) []Item {
	return listCompletions(operators, prefix, KindOperator)
}

func listCompletions(list []string, prefix string, kind Kind) (items []Item) {
	if prefix == "" {
		return nil
	}
	for _, s := range list {
		if strings.HasPrefix(s, prefix) {
			items = append(items, Item{Label: s, Kind: kind})
		}
	}
	return items
}

// methodCompletions lists every method of every type after a ".", whatever the prefix.
func methodCompletions(ctx *registry.Context, _ string, hint Hint) (items []Item) {
	if hint != HintMemberAccess {
		return nil
	}
	for _, t := range ctx.Types() {
		for _, m := range t.Methods {
			items = append(items, Item{
				Label:         m.SignatureString,
				Kind:          KindMethod,
				InsertText:    m.Signature.InsertText(),
				FilterText:    t.Name + "." + m.SignatureString,
				Detail:        "method of " + t.Name,
				Documentation: "Method of objects with type " + t.Name + ".",
			})
		}
	}
	return items
}

// Classify the kind of a symbol name. Registered types come first, then the
// builtin pseudo variables and fields, which are also registered as symbols.
// Names that aren't known at all are assumed to be types if they're capitalised,
// and fields otherwise.
func Classify(ctx *registry.Context, name string) Kind {
	if ctx != nil && ctx.IsType(name) {
		return KindType
	}
	switch name {
	case "null", "void", "true", "false":
		return KindPseudoVar
	case "self", "super":
		return KindPseudoField
	}
	if ctx != nil && (ctx.Globals().Has(name) || ctx.Locals().Has(name)) {
		return KindVar
	}
	if typeLike.MatchString(name) {
		return KindType
	}
	return KindField
}
