package messages

import "go.lsp.dev/uri"

const DidChangeTextDocumentNotification = "textDocument/didChange"

type DidChangeTextDocumentParams struct {
	TextDocument VersionedTextDocumentIdentifier `json:"textDocument"`

	// ContentChanges are applied in order. With full sync, each one holds the whole document.
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

type VersionedTextDocumentIdentifier struct {
	URI uri.URI `json:"uri"`
	// Version increases after each change, including undo and redo.
	Version int `json:"version"`
}

// An event describing a change to a text document. If only a text is provided
// it is considered to be the full content of the document.
type TextDocumentContentChangeEvent struct {
	Range *Range `json:"range"`
	Text  string `json:"text"`
}
