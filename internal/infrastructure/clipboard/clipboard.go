// Package clipboard adapts the system clipboard to the ports clipboard contracts.
package clipboard

import (
	"context"
	"errors"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

// ErrUnsupported is returned when no clipboard utility is available on this system.
var ErrUnsupported = errors.New("system clipboard is not available")

// System reads and writes the operating system clipboard.
type System struct {
	logger ports.Logger
}

// New returns a System clipboard. logger may be nil.
func New(logger ports.Logger) *System {
	return &System{logger: logger}
}

// ReadText implements ports.ClipboardReader.
func (s *System) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		s.logError(ctx, "clipboard read failed", err)
		return "", err
	}
	s.logDebug(ctx, "clipboard read", len(text))
	return text, nil
}

// WriteText implements ports.ClipboardWriter.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		s.logError(ctx, "clipboard write failed", err)
		return err
	}
	s.logDebug(ctx, "clipboard written", len(text))
	return nil
}

func (s *System) logDebug(ctx context.Context, msg string, n int) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(ctx, msg, "component", "clipboard", "bytes", n)
}

func (s *System) logError(ctx context.Context, msg string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Error(ctx, msg, "component", "clipboard", "error", err)
}

// Memory is an in-process clipboard, used when no system clipboard is wanted.
type Memory struct {
	mu   sync.Mutex
	text string
	err  error
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// FailWith makes every subsequent call return err. A nil err restores normal behaviour.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// ReadText implements ports.ClipboardReader.
func (m *Memory) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

// WriteText implements ports.ClipboardWriter.
func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

var (
	_ ports.Clipboard = (*System)(nil)
	_ ports.Clipboard = (*Memory)(nil)
)
