package completion

import (
	"strings"
	"unicode"

	"github.com/a-h/phalcomlsp/registry"
)

// Cursor describes the text surrounding the cursor on the current line.
type Cursor struct {
	// Prefix is the part of the word under the cursor that's to the left of the cursor.
	Prefix string
	// InString is true if the cursor is inside a string literal.
	InString bool
	// InComment is true if the cursor is inside a line comment.
	InComment bool
	// MemberAccess is true if the text before the cursor ends with ".".
	MemberAccess bool
}

// Hint returns the lexical hint used by Resolve.
func (c Cursor) Hint() Hint {
	if c.MemberAccess {
		return HintMemberAccess
	}
	return HintNone
}

// Analyze the line, with the cursor at the given character offset. Offsets are
// counted in runes, and are clamped to the line.
func Analyze(line string, character int) (c Cursor) {
	runes := []rune(line)
	if character > len(runes) {
		character = len(runes)
	}
	if character < 0 {
		character = 0
	}
	before := string(runes[:character])
	c.Prefix = wordBefore(runes[:character])
	c.InString = isInString(before)
	c.InComment = isInComment(line, character)
	c.MemberAccess = strings.HasSuffix(before, ".")
	return c
}

// Complete returns the completions at the cursor position of the line.
func Complete(ctx *registry.Context, line string, character int) []Item {
	c := Analyze(line, character)
	if c.InComment || c.InString {
		return nil
	}
	return Resolve(ctx, c.Prefix, c.Hint())
}

func isIdentifierRune(r rune) bool {
	return r == '_' || r == '?' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isOperatorRune(r rune) bool {
	return strings.ContainsRune("+-*/%=<>!", r)
}

// wordBefore returns the run of identifier, or operator, runes that ends at the end of runes.
func wordBefore(runes []rune) string {
	if len(runes) == 0 {
		return ""
	}
	inWord := isIdentifierRune
	if !inWord(runes[len(runes)-1]) {
		inWord = isOperatorRune
	}
	start := len(runes)
	for start > 0 && inWord(runes[start-1]) {
		start--
	}
	return string(runes[start:])
}

// isInString returns true if the text contains an odd number of unescaped double quotes.
func isInString(text string) bool {
	quotes := strings.Count(text, `"`) - strings.Count(text, `\"`)
	return quotes%2 == 1
}

// isInComment returns true if the cursor is after a "//" that isn't inside a string.
func isInComment(line string, character int) bool {
	index := strings.Index(line, "//")
	if index < 0 {
		return false
	}
	commentStart := len([]rune(line[:index]))
	if character <= commentStart {
		return false
	}
	return !isInString(line[:index])
}
