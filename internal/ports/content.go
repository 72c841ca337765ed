package ports

import (
	"context"
	"errors"
)

// ImportFile is a candidate theme document supplied by the user. Name and
// ContentType are declarations only; importers must not trust them beyond
// routing and must enforce Size limits before calling ReadContent.
type ImportFile interface {
	// Name is the file name, including extension, as the user provided it.
	Name() string
	// ContentType is the declared media type, or "" when none was declared.
	ContentType() string
	// Size is the declared length in bytes.
	Size() int64
	// ReadContent returns at most limit bytes of content. Implementations
	// return an error rather than silently truncating when more is available.
	ReadContent(ctx context.Context, limit int64) ([]byte, error)
}

// ClipboardReader reads the system clipboard as text.
type ClipboardReader interface {
	ReadText(ctx context.Context) (string, error)
}

// ClipboardWriter replaces the system clipboard contents.
type ClipboardWriter interface {
	WriteText(ctx context.Context, text string) error
}

// Clipboard is a read/write system clipboard.
type Clipboard interface {
	ClipboardReader
	ClipboardWriter
}

// ErrContentTooLarge is returned by ImportFile.ReadContent when more than the
// requested limit is available.
var ErrContentTooLarge = errors.New("content exceeds size limit")
