// Package server binds the Phalcom registry and completion resolver to the language server protocol.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf16"

	"github.com/a-h/phalcomlsp/catalog"
	"github.com/a-h/phalcomlsp/completion"
	"github.com/a-h/phalcomlsp/documents"
	"github.com/a-h/phalcomlsp/lsp"
	"github.com/a-h/phalcomlsp/messages"
	"github.com/a-h/phalcomlsp/protocol"
	"github.com/a-h/phalcomlsp/registry"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slog"
)

const Name = "phalcomlsp"

// Server handles LSP messages for Phalcom documents.
type Server struct {
	log       *slog.Logger
	catalog   catalog.Catalog
	registry  *registry.Store
	documents *documents.Store
	mux       *lsp.Mux
	// buildErr is set by initialize, and reported to the user once the client is initialized.
	buildErr error
}

// New creates a Server that reads requests from r and writes responses to w.
func New(log *slog.Logger, c catalog.Catalog, r io.Reader, w io.Writer) *Server {
	s := &Server{
		log:       log,
		catalog:   c,
		registry:  registry.NewStore(),
		documents: documents.NewStore(),
		mux:       lsp.NewMux(log, r, w),
	}
	s.mux.HandleMethod(messages.InitializeMethod, s.initialize)
	s.mux.HandleNotification(messages.InitializedNotification, s.initialized)
	s.mux.HandleNotification(messages.DidOpenTextDocumentNotification, s.didOpen)
	s.mux.HandleNotification(messages.DidChangeTextDocumentNotification, s.didChange)
	s.mux.HandleNotification(messages.DidCloseTextDocumentNotification, s.didClose)
	s.mux.HandleMethod(messages.CompletionRequestMethod, s.completion)
	s.mux.HandleMethod(messages.ShutdownMethod, s.shutdown)
	s.mux.HandleNotification(messages.ExitNotification, s.exit)
	return s
}

// SetConcurrencyLimit sets the number of requests handled at once.
func (s *Server) SetConcurrencyLimit(limit int64) {
	s.mux.SetConcurrencyLimit(limit)
}

// Process messages until the client exits, or the input ends.
func (s *Server) Process() error {
	return s.mux.Process()
}

func unmarshal(params json.RawMessage, v any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return fmt.Errorf("%w: %v", protocol.ErrInvalidParams, err)
	}
	return nil
}

func (s *Server) initialize(params json.RawMessage) (result any, err error) {
	var initializeParams messages.InitializeParams
	if err = unmarshal(params, &initializeParams); err != nil {
		return
	}
	s.log.Info("received initialize method", slog.Any("params", initializeParams))

	if s.buildErr = s.registry.Build(s.catalog); s.buildErr != nil {
		s.log.Warn("catalog contains errors", slog.Any("error", s.buildErr))
	}
	ctx := s.registry.Current()
	s.log.Info("registry built", slog.Int("types", len(ctx.Types())), slog.Int("globals", len(ctx.Globals().Names())))

	result = messages.InitializeResult{
		Capabilities: messages.ServerCapabilities{
			TextDocumentSync: messages.TextDocumentSyncKindFull,
			CompletionProvider: &messages.CompletionOptions{
				TriggerCharacters: []string{"."},
			},
		},
		ServerInfo: &messages.ServerInfo{
			Name: Name,
		},
	}
	return
}

// initialized writes each catalog error to the client's log, and shows a single warning.
func (s *Server) initialized(params json.RawMessage) (err error) {
	if s.buildErr == nil {
		return nil
	}
	errs := []error{s.buildErr}
	var merr *multierror.Error
	if errors.As(s.buildErr, &merr) {
		errs = merr.Errors
	}
	for _, e := range errs {
		if err = s.mux.Notify(messages.LogMessageMethod, messages.LogMessageParams{
			Type:    messages.MessageTypeWarning,
			Message: e.Error(),
		}); err != nil {
			return err
		}
	}
	return s.mux.Notify(messages.ShowMessageMethod, messages.ShowMessageParams{
		Type:    messages.MessageTypeWarning,
		Message: fmt.Sprintf("%s: the catalog contains %d error(s), completions may be incomplete", Name, len(errs)),
	})
}

func (s *Server) didOpen(rawParams json.RawMessage) (err error) {
	var params messages.DidOpenTextDocumentParams
	if err = unmarshal(rawParams, &params); err != nil {
		return
	}
	s.log.Debug("document opened", slog.String("uri", string(params.TextDocument.URI)), slog.Int("version", params.TextDocument.Version))
	s.documents.Open(params.TextDocument.URI, params.TextDocument.Version, params.TextDocument.Text)
	return nil
}

func (s *Server) didChange(rawParams json.RawMessage) (err error) {
	var params messages.DidChangeTextDocumentParams
	if err = unmarshal(rawParams, &params); err != nil {
		return
	}
	// Full sync means each change carries the whole document, so only the last one matters.
	if len(params.ContentChanges) == 0 {
		return nil
	}
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	if !s.documents.Update(params.TextDocument.URI, params.TextDocument.Version, text) {
		s.log.Warn("ignoring stale document change", slog.String("uri", string(params.TextDocument.URI)), slog.Int("version", params.TextDocument.Version))
	}
	return nil
}

func (s *Server) didClose(rawParams json.RawMessage) (err error) {
	var params messages.DidCloseTextDocumentParams
	if err = unmarshal(rawParams, &params); err != nil {
		return
	}
	s.documents.Close(params.TextDocument.URI)
	return nil
}

func (s *Server) completion(rawParams json.RawMessage) (result any, err error) {
	var params messages.CompletionParams
	if err = unmarshal(rawParams, &params); err != nil {
		return
	}
	list := messages.CompletionList{
		Items: []messages.CompletionItem{},
	}
	line, ok := s.documents.Line(params.TextDocument.URI, params.Position.Line)
	if !ok {
		s.log.Warn("completion requested for unknown line", slog.String("uri", string(params.TextDocument.URI)), slog.Int("line", params.Position.Line))
		return list, nil
	}
	character := runeOffset(line, params.Position.Character)
	for _, item := range completion.Complete(s.registry.Current(), line, character) {
		list.Items = append(list.Items, messages.CompletionItem{
			Label:         item.Label,
			Kind:          completionItemKind(item.Kind),
			Detail:        item.Detail,
			Documentation: item.Documentation,
			FilterText:    item.FilterText,
			InsertText:    item.InsertText,
		})
	}
	return list, nil
}

// runeOffset converts an LSP character offset, counted in UTF-16 code units, to a
// rune offset within the line.
func runeOffset(line string, character int) (runes int) {
	var units int
	for _, r := range line {
		if units >= character {
			break
		}
		units++
		// Runes outside the basic multilingual plane are a surrogate pair.
		if r1, _ := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
			units++
		}
		runes++
	}
	return runes
}

func completionItemKind(k completion.Kind) messages.CompletionItemKind {
	switch k {
	case completion.KindKeyword:
		return messages.CompletionItemKindKeyword
	case completion.KindOperator:
		return messages.CompletionItemKindOperator
	case completion.KindType:
		return messages.CompletionItemKindClass
	case completion.KindVar:
		return messages.CompletionItemKindVariable
	case completion.KindMethod:
		return messages.CompletionItemKindMethod
	case completion.KindField:
		return messages.CompletionItemKindField
	case completion.KindPseudoVar:
		return messages.CompletionItemKindValue
	case completion.KindPseudoField:
		return messages.CompletionItemKindStruct
	}
	return messages.CompletionItemKindText
}

func (s *Server) shutdown(params json.RawMessage) (result any, err error) {
	s.log.Info("shutting down")
	s.registry.Destroy()
	return nil, nil
}

func (s *Server) exit(params json.RawMessage) (err error) {
	s.log.Info("exiting", slog.Int("openDocuments", s.documents.Len()))
	return nil
}
