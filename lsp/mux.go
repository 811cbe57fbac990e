// Package lsp dispatches framed JSON-RPC messages from an LSP client to registered handlers.
package lsp

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/a-h/phalcomlsp/messages"
	"github.com/a-h/phalcomlsp/protocol"
	"golang.org/x/exp/slog"
)

type MethodHandler func(params json.RawMessage) (result any, err error)
type NotificationHandler func(params json.RawMessage) (err error)

// Mux reads messages from the client, and dispatches them to handlers. Until the
// client has sent initialize, other methods are rejected. After that, notifications
// and shutdown are handled in order, and up to the concurrency limit of requests are handled at
// once.
type Mux struct {
	in      *bufio.Reader
	out     *bufio.Writer
	outLock sync.Mutex
	limit   int64
	pending sync.WaitGroup

	methods       map[string]MethodHandler
	notifications map[string]NotificationHandler

	log     *slog.Logger
	onError func(err error)
}

func NewMux(log *slog.Logger, r io.Reader, w io.Writer) *Mux {
	return &Mux{
		in:            bufio.NewReader(r),
		out:           bufio.NewWriter(w),
		limit:         4,
		methods:       map[string]MethodHandler{},
		notifications: map[string]NotificationHandler{},
		log:           log,
		onError:       func(err error) {},
	}
}

// SetConcurrencyLimit sets the maximum number of requests handled at once. Must be called before Process.
func (m *Mux) SetConcurrencyLimit(limit int64) {
	m.limit = max(limit, 1)
}

// OnError is called when a notification handler fails, or a response can't be written.
func (m *Mux) OnError(f func(err error)) {
	m.onError = f
}

func (m *Mux) HandleMethod(name string, h MethodHandler) {
	m.methods[name] = h
}

func (m *Mux) HandleNotification(name string, h NotificationHandler) {
	m.notifications[name] = h
}

// Notify sends a notification to the client.
func (m *Mux) Notify(method string, params any) error {
	return m.send(protocol.NewNotification(method, params))
}

func (m *Mux) send(msg any) error {
	m.outLock.Lock()
	defer m.outLock.Unlock()
	return protocol.Write(m.out, msg)
}

// Process messages until the input ends, or the client sends the exit notification.
// Reaching the end of the input isn't an error. Handlers that are still running are
// waited for before Process returns.
func (m *Mux) Process() error {
	defer m.pending.Wait()
	exited, err := m.awaitInitialize()
	if exited || err != nil {
		return ignoreEOF(err)
	}
	m.log.Info("initialization complete")
	return ignoreEOF(m.serve())
}

// awaitInitialize handles messages until the client sends initialize, or exits.
func (m *Mux) awaitInitialize() (exited bool, err error) {
	for {
		req, err := m.read()
		if err != nil {
			return false, err
		}
		switch {
		case req.Method == messages.ExitNotification:
			m.dispatch(req)
			return true, nil
		case req.Method == messages.InitializeMethod && !req.IsNotification():
			m.dispatch(req)
			return false, nil
		case req.IsNotification():
			m.log.Warn("dropping notification sent before initialization", slog.String("method", req.Method))
		default:
			m.log.Warn("rejecting method sent before initialization", slog.String("method", req.Method))
			if err = m.send(protocol.NewResponseError(req.ID, protocol.ErrServerNotInitialized)); err != nil {
				return false, err
			}
		}
	}
}

// serve handles notifications and shutdown one at a time, in the order they're
// received, once the requests received before them have completed. Other requests
// run concurrently, bounded by the concurrency limit.
func (m *Mux) serve() error {
	slots := make(chan struct{}, m.limit)
	for {
		req, err := m.read()
		if err != nil {
			return err
		}
		if req.IsNotification() || req.Method == messages.ShutdownMethod {
			m.pending.Wait()
			m.dispatch(req)
			if req.Method == messages.ExitNotification {
				return nil
			}
			continue
		}
		slots <- struct{}{}
		m.pending.Add(1)
		go func(req protocol.Request) {
			defer func() {
				<-slots
				m.pending.Done()
			}()
			m.dispatch(req)
		}(req)
	}
}

// read the next message. Messages that can't be decoded are answered with an error,
// and skipped.
func (m *Mux) read() (req protocol.Request, err error) {
	for {
		req, err = protocol.Read(m.in)
		switch {
		case errors.Is(err, protocol.ErrParseError):
			req.ID = nil
		case errors.Is(err, protocol.ErrInvalidRequest):
		default:
			return req, err
		}
		m.log.Warn("skipping invalid message", slog.Any("error", err))
		if err = m.send(protocol.NewResponseError(req.ID, err)); err != nil {
			return req, err
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Mux) dispatch(req protocol.Request) {
	log := m.log.With(slog.String("method", req.Method))
	if !req.IsNotification() {
		log = log.With(slog.String("id", string(*req.ID)))
	}
	start := time.Now()
	defer func() {
		log.Debug("handled", slog.Duration("duration", time.Since(start)))
	}()
	if req.IsNotification() {
		m.notify(log, req)
		return
	}
	m.respond(log, req)
}

func (m *Mux) notify(log *slog.Logger, req protocol.Request) {
	h, ok := m.notifications[req.Method]
	if !ok {
		log.Warn("notification not handled")
		return
	}
	// Clients don't expect a reply to a notification, so errors are only logged.
	if err := recoverHandler(func() error { return h(req.Params) }); err != nil {
		log.Error("failed to handle notification", slog.Any("error", err))
		m.onError(err)
	}
}

func (m *Mux) respond(log *slog.Logger, req protocol.Request) {
	res := protocol.NewResponseError(req.ID, protocol.ErrMethodNotFound)
	if h, ok := m.methods[req.Method]; ok {
		var result any
		err := recoverHandler(func() (err error) {
			result, err = h(req.Params)
			return err
		})
		if err != nil {
			log.Error("failed to handle method", slog.Any("error", err))
			res = protocol.NewResponseError(req.ID, err)
		} else {
			res = protocol.NewResponse(req.ID, result)
		}
	} else {
		log.Error("method not found")
	}
	if err := m.send(res); err != nil {
		log.Error("failed to respond", slog.Any("error", err))
		m.onError(fmt.Errorf("failed to respond: %w", err))
	}
}

// recoverHandler runs f, turning a panic into an error.
func recoverHandler(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return f()
}
