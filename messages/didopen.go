package messages

const DidOpenTextDocumentNotification = "textDocument/didOpen"

type DidOpenTextDocumentParams struct {
	// The document that was opened.
	TextDocument TextDocumentItem `json:"textDocument"`
}

const DidCloseTextDocumentNotification = "textDocument/didClose"

type DidCloseTextDocumentParams struct {
	// The document that was closed.
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}
