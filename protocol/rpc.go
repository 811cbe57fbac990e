package protocol

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"strconv"
)

const Version = "2.0"

type Message struct {
	// ProtocolVersion must be "2.0".
	ProtocolVersion string `json:"jsonrpc"`
	// ID is a string or number chosen by the client. Notifications don't have one.
	ID *json.RawMessage `json:"id,omitempty"`
}

func (msg Message) IsNotification() bool {
	return msg.ID == nil
}

func (msg Message) IsJSONRPC() bool {
	return msg.ProtocolVersion == Version
}

type Request struct {
	Message
	// Method to invoke, e.g. "textDocument/completion".
	Method string `json:"method"`
	// Params are decoded by the handler of the method.
	Params json.RawMessage `json:"params,omitempty"`
}

// Response to a request. Exactly one of result and error is written.
type Response struct {
	Message
	// Result is written as null when the handler returns nothing.
	Result any `json:"result"`
	// Error is set on failure.
	Error *Error `json:"error,omitempty"`
}

var null = json.RawMessage("null")

func (r Response) MarshalJSON() ([]byte, error) {
	// The id is null when the request couldn't be read.
	id := &null
	if r.ID != nil {
		id = r.ID
	}
	if r.Error != nil {
		return json.Marshal(struct {
			ProtocolVersion string           `json:"jsonrpc"`
			ID              *json.RawMessage `json:"id"`
			Error           *Error           `json:"error"`
		}{r.ProtocolVersion, id, r.Error})
	}
	return json.Marshal(struct {
		ProtocolVersion string           `json:"jsonrpc"`
		ID              *json.RawMessage `json:"id"`
		Result          any              `json:"result"`
	}{r.ProtocolVersion, id, r.Result})
}

func NewResponse(id *json.RawMessage, result any) Response {
	return Response{
		Message: Message{ProtocolVersion: Version, ID: id},
		Result:  result,
	}
}

func NewResponseError(id *json.RawMessage, err error) Response {
	return Response{
		Message: Message{ProtocolVersion: Version, ID: id},
		Error:   NewError(err),
	}
}

type Notification struct {
	ProtocolVersion string `json:"jsonrpc"`
	Method          string `json:"method"`
	Params          any    `json:"params"`
}

func NewNotification(method string, params any) Notification {
	return Notification{
		ProtocolVersion: Version,
		Method:          method,
		Params:          params,
	}
}

// NewError converts err to a JSON-RPC error. Errors that are already *Error are returned as is.
func NewError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{
		Code:    ErrInternal.Code,
		Message: err.Error(),
		Data:    nil,
	}
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrParseError           *Error = &Error{Code: -32700, Message: "Parse error"}
	ErrInvalidRequest       *Error = &Error{Code: -32600, Message: "Invalid Request"}
	ErrMethodNotFound       *Error = &Error{Code: -32601, Message: "Method not found"}
	ErrInvalidParams        *Error = &Error{Code: -32602, Message: "Invalid params"}
	ErrInternal             *Error = &Error{Code: -32603, Message: "Internal error"}
	ErrServerNotInitialized *Error = &Error{Code: -32002, Message: "Server not initialized"}
)

// Read the next message. Each message is a MIME style header, followed by a JSON body
// of Content-Length bytes. After ErrParseError or ErrInvalidRequest the reader is
// positioned at the next message, so reading can continue.
func Read(r *bufio.Reader) (req Request, err error) {
	header, err := textproto.NewReader(r).ReadMIMEHeader()
	if err != nil {
		return req, err
	}
	length, err := strconv.ParseInt(header.Get("Content-Length"), 10, 64)
	if err != nil || length < 0 {
		return req, ErrInvalidContentLengthHeader
	}
	body := io.LimitReader(r, length)
	decodeErr := json.NewDecoder(body).Decode(&req)
	// Skip anything the decoder didn't consume, so the next read starts at a header.
	if _, err = io.Copy(io.Discard, body); err != nil {
		return req, err
	}
	if decodeErr != nil {
		return req, fmt.Errorf("%w: %v", ErrParseError, decodeErr)
	}
	if !req.IsJSONRPC() {
		return req, ErrInvalidRequest
	}
	return req, nil
}

var ErrInvalidContentLengthHeader = errors.New("missing or invalid Content-Length header")

// Write msg as JSON, with a Content-Length header, and flush w.
func Write(w *bufio.Writer, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	if _, err = fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		return err
	}
	if _, err = w.Write(body); err != nil {
		return err
	}
	return w.Flush()
}
