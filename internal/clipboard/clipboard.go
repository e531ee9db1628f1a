package clipboard

import (
	"fmt"

	atottoClip "github.com/atotto/clipboard"
)

// Clipboard is the write-only platform clipboard collaborator. The core
// never reads the clipboard back.
type Clipboard interface {
	WriteText(text string) error
}

// AtottoClipboard is the production clipboard implementation using the
// atotto/clipboard library. It only supports text content.
type AtottoClipboard struct{}

// NewAtottoClipboard returns a new Atotto-based clipboard implementation
func NewAtottoClipboard() *AtottoClipboard {
	return &AtottoClipboard{}
}

func (c *AtottoClipboard) WriteText(text string) error {
	if err := atottoClip.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// NoOpClipboard discards writes. Used in headless environments and tests.
type NoOpClipboard struct{}

// NewNoOpClipboard returns a clipboard implementation that does nothing
func NewNoOpClipboard() *NoOpClipboard {
	return &NoOpClipboard{}
}

func (c *NoOpClipboard) WriteText(text string) error {
	return nil
}
