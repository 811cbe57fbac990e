package messages

// Position in a text document, both zero based.
// The server counts Character in runes of the line.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is only sent for incremental changes, which the server doesn't ask for.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}
