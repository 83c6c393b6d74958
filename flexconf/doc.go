// Package flexconf parses FlexConf configuration documents.
//
// # Overview
//
// FlexConf is a configuration language with two semantically equivalent
// surface syntaxes: an indentation-sensitive mode in the style of YAML,
// and a bracket mode with brace-delimited, comma-separated containers.
// A document commits to one mode; mixing them is an error. The parser
// turns a UTF-8 byte stream into a tree of primitives, ordered maps and
// sequences, and reports malformed input with line/column precision.
//
// # Architecture
//
//	┌─────────────┐    ┌─────────────┐    ┌─────────────┐    ┌─────────────┐
//	│   Source    │───▶│   Pragma    │───▶│    Lexer    │───▶│   Parser    │
//	│  (bytes)    │    │  directives │    │  (tokens)   │    │   (tree)    │
//	└─────────────┘    └─────────────┘    └─────────────┘    └─────────────┘
//	       │                  │                  │                  │
//	       ▼                  ▼                  ▼                  ▼
//	  UTF-8 check        LexerConfig       indent stack        container
//	  line index          (frozen)        mode detection        builder
//
// The source buffer validates encoding and indexes line starts. The
// pragma preprocessor reads leading "#?>" directives into a LexerConfig
// that the tokenizer consults at every character-classification site,
// so remapped delimiters behave exactly like the defaults. The lexer
// detects the document mode from the first significant code point and
// produces a flat token stream; in indentation mode it maintains a
// strictly increasing indent stack and emits Indent/Dedent pairs. The
// parser is recursive descent with two tokens of look-ahead and builds
// containers bottom-up.
//
// # Containers
//
// Maps and lists share one container shape. A block's first item
// decides whether it is keyed (a map) or positional (a list); the
// decision is frozen and mixing is rejected. In indentation mode a
// blank line between items at the same level separates anonymous maps,
// so a keyed block holding blank-line separators materializes as a
// sequence of maps. An empty block is an empty map.
//
// # Values
//
// The result is a tree of Value nodes: null, bool, int, float, string,
// map and seq. Map iteration order is source order. Integer literals
// that exceed int64 widen to big.Int rather than failing; +inf, -inf
// and nan are ordinary float values.
//
// # Errors
//
// Every failure is reported as a *Error with a kind (EncodingError,
// SyntaxError, IndentationError, ModeMismatchError, KeyError,
// NumberError, PragmaError), a message, the offending span and a
// rendered snippet with a caret. The first error aborts the parse; no
// partial tree is produced.
//
// # Thread Safety
//
// Parsing shares no mutable state between invocations; any number of
// documents may be parsed concurrently.
//
// # Example
//
//	root, err := flexconf.ParseText([]byte(input), flexconf.WithFile("app.fc"))
//	if err != nil {
//		var perr *flexconf.Error
//		if errors.As(err, &perr) {
//			fmt.Println(perr.Snippet)
//		}
//		return err
//	}
//	server, _ := root.Get("server")
package flexconf
