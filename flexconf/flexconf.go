package flexconf

import (
	"fmt"
	"io"
)

const (
	// FileExtension is the conventional extension for documents.
	FileExtension = ".fc"
	// MIMEType identifies documents in transport.
	MIMEType = "application/flexconf"
)

type options struct {
	file string
}

type Option func(*options)

// WithFile names the source in positions, diagnostics and snippets.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// ParseText parses a complete UTF-8 document and returns its root
// value. On failure the returned error is a *Error carrying the kind,
// span and rendered snippet of the first problem found; no partial tree
// is returned. Parsing is a pure function of the input bytes.
func ParseText(data []byte, opts ...Option) (*Value, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	src, serr := NewSource(data, o.file)
	if serr != nil {
		return nil, serr
	}
	cfg := DefaultLexerConfig()
	if err := scanPragmas(src, &cfg); err != nil {
		return nil, err
	}
	lx := NewLexer(src, cfg)
	tokens, err := lx.Tokenize()
	if err != nil {
		return nil, err
	}
	root, perr := newParser(src, cfg, lx.Mode(), tokens).parseDocument()
	if perr != nil {
		return nil, perr
	}
	return root, nil
}

// ParseStream reads r to completion and parses the result. There is no
// incremental output; the whole document is in memory before the first
// token is produced.
func ParseStream(r io.Reader, opts ...Option) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return ParseText(data, opts...)
}

// Tokenize exposes the token stream and the detected document mode
// without building a tree. Pragmas are applied before tokenization, the
// same as in ParseText.
func Tokenize(data []byte, opts ...Option) ([]Token, Mode, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	src, serr := NewSource(data, o.file)
	if serr != nil {
		return nil, ModeIndentation, serr
	}
	cfg := DefaultLexerConfig()
	if err := scanPragmas(src, &cfg); err != nil {
		return nil, ModeIndentation, err
	}
	lx := NewLexer(src, cfg)
	tokens, err := lx.Tokenize()
	if err != nil {
		return nil, lx.Mode(), err
	}
	return tokens, lx.Mode(), nil
}
