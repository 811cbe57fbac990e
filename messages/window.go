package messages

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#window_showMessage
const ShowMessageMethod = "window/showMessage"

type ShowMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#window_logMessage
const LogMessageMethod = "window/logMessage"

// LogMessageParams are written to the client's output log, without interrupting the user.
type LogMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

type MessageType int

const (
	MessageTypeError MessageType = iota + 1
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeLog
)
