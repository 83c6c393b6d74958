package flexconf

// Parser is a recursive-descent parser over the token stream. It needs
// at most two tokens of look-ahead: a candidate key and whether the
// key-value separator follows it.
type Parser struct {
	src    *Source
	cfg    LexerConfig
	mode   Mode
	tokens []Token
	pos    int
}

func newParser(src *Source, cfg LexerConfig, mode Mode, tokens []Token) *Parser {
	return &Parser{src: src, cfg: cfg, mode: mode, tokens: tokens}
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekN(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(kind TokenKind) (Token, *Error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, errorf(p.src, SyntaxError, tok.Span, "expected %s, got %s", kind, tok.Kind)
	}
	p.advance()
	return tok, nil
}

func isKeyToken(tok Token) bool {
	return tok.Kind == TokenIdent || tok.Kind == TokenString
}

func (p *Parser) parseDocument() (*Value, *Error) {
	var root *Value
	var err *Error
	if p.mode == ModeBracket {
		root, err = p.parseBracketBlock()
	} else {
		root, err = p.parseIndentItems(TokenEOF)
	}
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		if tok.Kind == TokenBlockClose {
			return nil, errorf(p.src, SyntaxError, tok.Span, "unmatched %q", p.cfg.BlockClose)
		}
		return nil, errorf(p.src, SyntaxError, tok.Span, "unexpected %s after document", tok.Kind)
	}
	return root, nil
}

// parseIndentItems parses the body of one indentation-mode block up to
// the given terminator. Blank-line separators split the body into
// anonymous items; a body holding one or more separators materializes
// as a sequence.
func (p *Parser) parseIndentItems(end TokenKind) (*Value, *Error) {
	startSpan := p.peek().Span
	seg := newContainerBuilder(p.src)
	var segs []*Value
	split := false

	for {
		tok := p.peek()
		if tok.Kind == end || tok.Kind == TokenEOF {
			break
		}
		switch tok.Kind {
		case TokenNewline:
			// a blank-line separator closes the current anonymous item
			p.advance()
			if !seg.empty() {
				segs = append(segs, seg.finish(Span{Start: startSpan.Start, End: tok.Span.Start}))
				seg = newContainerBuilder(p.src)
				split = true
			}
		case TokenIndent:
			p.advance()
			nested, err := p.parseIndentItems(TokenDedent)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenDedent); err != nil {
				return nil, err
			}
			if err := seg.putPositional(tok.Span, nested); err != nil {
				return nil, err
			}
		default:
			if err := p.parseIndentLine(seg); err != nil {
				return nil, err
			}
		}
	}

	span := Span{Start: startSpan.Start, End: p.peek().Span.Start}
	if !split {
		return seg.finish(span), nil
	}
	if !seg.empty() {
		segs = append(segs, seg.finish(span))
	}
	return mergeItems(p.src, segs, span)
}

// mergeItems combines blank-line separated items. Keyed items become the
// elements of a sequence of anonymous maps; positional items are plain
// list runs whose separators carry no meaning, so they flatten into a
// single sequence.
func mergeItems(src *Source, segs []*Value, span Span) (*Value, *Error) {
	maps, lists := 0, 0
	for _, s := range segs {
		if s.Kind == ValueMap {
			maps++
		} else {
			lists++
		}
	}
	if maps > 0 && lists > 0 {
		return nil, errorf(src, SyntaxError, span, "mixed keyed and positional items in one block")
	}
	if lists > 0 {
		var elems []*Value
		for _, s := range segs {
			elems = append(elems, s.Elems...)
		}
		return &Value{Kind: ValueSeq, Span: span, Elems: elems}, nil
	}
	return &Value{Kind: ValueSeq, Span: span, Elems: segs}, nil
}

// parseIndentLine parses one content line: a keyed entry with an inline
// primitive or a nested block, or a positional scalar.
func (p *Parser) parseIndentLine(b *containerBuilder) *Error {
	tok := p.peek()
	if isKeyToken(tok) && p.peekN(1).Kind == TokenKVSep {
		p.advance()
		p.advance()
		var v *Value
		if next := p.peek(); next.Kind == TokenNewline {
			p.advance()
			if p.peek().Kind != TokenIndent {
				return errorf(p.src, SyntaxError, next.Span, "expected an indented block after key %q", tok.Str)
			}
			p.advance()
			nested, err := p.parseIndentItems(TokenDedent)
			if err != nil {
				return err
			}
			if _, err := p.expect(TokenDedent); err != nil {
				return err
			}
			v = nested
		} else {
			prim, err := p.parsePrimitive()
			if err != nil {
				return err
			}
			if err := p.endOfLine(); err != nil {
				return err
			}
			v = prim
		}
		return b.putKeyed(tok.Str, tok.Span, v)
	}

	prim, err := p.parsePrimitive()
	if err != nil {
		return err
	}
	if err := p.endOfLine(); err != nil {
		return err
	}
	return b.putPositional(prim.Span, prim)
}

// endOfLine consumes the line's terminating Newline. A Dedent or EOF is
// also a legal line end: the lexer has already flushed the line.
func (p *Parser) endOfLine() *Error {
	switch tok := p.peek(); tok.Kind {
	case TokenNewline:
		p.advance()
		return nil
	case TokenDedent, TokenEOF:
		return nil
	default:
		return errorf(p.src, SyntaxError, tok.Span, "unexpected %s, expected end of line", tok.Kind)
	}
}

func (p *Parser) parseBracketBlock() (*Value, *Error) {
	open, err := p.expect(TokenBlockOpen)
	if err != nil {
		return nil, err
	}
	b := newContainerBuilder(p.src)
	if p.peek().Kind == TokenBlockClose {
		close := p.advance()
		return b.finish(Span{Start: open.Span.Start, End: close.Span.End}), nil
	}
	for {
		tok := p.peek()
		if tok.Kind == TokenEOF {
			return nil, errorf(p.src, SyntaxError, open.Span, "unmatched %q", p.cfg.BlockOpen)
		}

		if isKeyToken(tok) && p.peekN(1).Kind == TokenKVSep {
			p.advance()
			p.advance()
			v, err := p.parseBracketValue()
			if err != nil {
				return nil, err
			}
			if err := b.putKeyed(tok.Str, tok.Span, v); err != nil {
				return nil, err
			}
		} else {
			v, err := p.parseBracketValue()
			if err != nil {
				return nil, err
			}
			if err := b.putPositional(tok.Span, v); err != nil {
				return nil, err
			}
		}

		switch sep := p.peek(); sep.Kind {
		case TokenItemSep:
			p.advance()
			// a single trailing separator before the closer is dropped
			if p.peek().Kind == TokenBlockClose {
				close := p.advance()
				return b.finish(Span{Start: open.Span.Start, End: close.Span.End}), nil
			}
		case TokenBlockClose:
			close := p.advance()
			return b.finish(Span{Start: open.Span.Start, End: close.Span.End}), nil
		case TokenEOF:
			return nil, errorf(p.src, SyntaxError, open.Span, "unmatched %q", p.cfg.BlockOpen)
		default:
			return nil, errorf(p.src, SyntaxError, sep.Span, "expected %q or %q, got %s",
				p.cfg.ItemSep, p.cfg.BlockClose, sep.Kind)
		}
	}
}

func (p *Parser) parseBracketValue() (*Value, *Error) {
	if p.peek().Kind == TokenBlockOpen {
		return p.parseBracketBlock()
	}
	return p.parsePrimitive()
}

func (p *Parser) parsePrimitive() (*Value, *Error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenString:
		p.advance()
		return &Value{Kind: ValueString, Span: tok.Span, Str: tok.Str}, nil
	case TokenInt:
		p.advance()
		return &Value{Kind: ValueInt, Span: tok.Span, Int: tok.Int, Big: tok.Big}, nil
	case TokenFloat:
		p.advance()
		return &Value{Kind: ValueFloat, Span: tok.Span, Float: tok.Float}, nil
	case TokenBool:
		p.advance()
		return &Value{Kind: ValueBool, Span: tok.Span, Bool: tok.Bool}, nil
	case TokenNull:
		p.advance()
		return &Value{Kind: ValueNull, Span: tok.Span}, nil
	case TokenIdent:
		return nil, errorf(p.src, SyntaxError, tok.Span, "bare word %q is not a value; strings must be quoted", tok.Str)
	}
	return nil, errorf(p.src, SyntaxError, tok.Span, "expected a value, got %s", tok.Kind)
}
