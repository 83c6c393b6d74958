package flexconf

import (
	"strings"
	"unicode/utf8"
)

// pragmaPrefix introduces a configuration directive. It is only honored
// before the first data token; later occurrences are ordinary comments
// because they start with the comment character.
const pragmaPrefix = "#?>"

// LexerConfig holds the delimiter set the tokenizer consults at every
// character-classification site. It is mutable only while pragmas are
// being processed and frozen before the first data token.
type LexerConfig struct {
	BlockOpen   rune
	BlockClose  rune
	KVSep       rune
	ItemSep     rune
	LineComment rune
}

func DefaultLexerConfig() LexerConfig {
	return LexerConfig{
		BlockOpen:   '{',
		BlockClose:  '}',
		KVSep:       ':',
		ItemSep:     ',',
		LineComment: '#',
	}
}

// reservedDelimiters can never be configured as structural delimiters:
// the comment introducer, the string and key quotes, and the escape
// character.
var reservedDelimiters = map[rune]bool{
	'#':  true,
	'"':  true,
	'\'': true,
	'`':  true,
	'\\': true,
}

// scanPragmas consumes the leading comment-and-whitespace prefix of src
// and applies every directive found there to cfg. Scanning stops at the
// first line that is neither blank nor a comment.
func scanPragmas(src *Source, cfg *LexerConfig) *Error {
	for n := 1; n <= len(src.lines); n++ {
		text := src.Line(n)
		trimmed := strings.TrimLeft(text, " \t")
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, pragmaPrefix) {
			indent := len(text) - len(trimmed)
			offset := src.lines[n-1] + indent
			if err := applyPragma(src, cfg, trimmed, offset); err != nil {
				return err
			}
			continue
		}
		if strings.HasPrefix(trimmed, string(cfg.LineComment)) {
			continue
		}
		break
	}
	return nil
}

func applyPragma(src *Source, cfg *LexerConfig, text string, offset int) *Error {
	p := pragmaScanner{src: src, text: text, offset: offset}
	p.pos = len(pragmaPrefix)

	verb, err := p.word()
	if err != nil {
		return err
	}
	if verb != "SET" {
		return errorf(src, PragmaError, p.spanFrom(0), "unknown pragma verb %q", verb)
	}

	subject, err := p.word()
	if err != nil {
		return err
	}

	next := *cfg
	switch subject {
	case "BLOCKIDENTIFIER", "BLOCKIDENTIFER":
		open, err := p.quotedRune()
		if err != nil {
			return err
		}
		close, err := p.quotedRune()
		if err != nil {
			return err
		}
		next.BlockOpen, next.BlockClose = open, close
	case "KVSEP":
		sep, err := p.quotedRune()
		if err != nil {
			return err
		}
		next.KVSep = sep
	case "SPLITER":
		sep, err := p.quotedRune()
		if err != nil {
			return err
		}
		next.ItemSep = sep
	default:
		return errorf(src, PragmaError, p.spanFrom(0), "unknown pragma directive %q", subject)
	}

	if err := p.end(); err != nil {
		return err
	}
	if err := validateDelimiters(src, next, p.spanFrom(0)); err != nil {
		return err
	}
	*cfg = next
	return nil
}

func validateDelimiters(src *Source, cfg LexerConfig, span Span) *Error {
	set := map[rune]bool{}
	for _, r := range []rune{cfg.BlockOpen, cfg.BlockClose, cfg.KVSep, cfg.ItemSep} {
		if reservedDelimiters[r] {
			return errorf(src, PragmaError, span, "delimiter %q collides with a literal delimiter", r)
		}
		if set[r] {
			return errorf(src, PragmaError, span, "delimiter %q configured twice", r)
		}
		set[r] = true
	}
	return nil
}

// pragmaScanner walks a single directive line. All positions it reports
// are relative to the directive's offset in the source buffer.
type pragmaScanner struct {
	src    *Source
	text   string
	offset int
	pos    int
}

func (p *pragmaScanner) spanFrom(start int) Span {
	sl, sc := p.src.LineCol(p.offset + start)
	el, ec := p.src.LineCol(p.offset + p.pos)
	return Span{
		Start: Position{File: p.src.file, Offset: p.offset + start, Line: sl, Column: sc},
		End:   Position{File: p.src.file, Offset: p.offset + p.pos, Line: el, Column: ec},
	}
}

func (p *pragmaScanner) skipSpace() {
	for p.pos < len(p.text) && (p.text[p.pos] == ' ' || p.text[p.pos] == '\t') {
		p.pos++
	}
}

func (p *pragmaScanner) word() (string, *Error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.text) {
		c := p.text[p.pos]
		if c == ' ' || c == '\t' || c == '\'' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", errorf(p.src, PragmaError, p.spanFrom(start), "malformed pragma: missing directive word")
	}
	return p.text[start:p.pos], nil
}

func (p *pragmaScanner) quotedRune() (rune, *Error) {
	p.skipSpace()
	start := p.pos
	if p.pos >= len(p.text) || p.text[p.pos] != '\'' {
		return 0, errorf(p.src, PragmaError, p.spanFrom(start), "malformed pragma: expected a quoted delimiter")
	}
	p.pos++
	r, size := utf8.DecodeRuneInString(p.text[p.pos:])
	if size == 0 || r == '\'' {
		return 0, errorf(p.src, PragmaError, p.spanFrom(start), "malformed pragma: empty delimiter")
	}
	p.pos += size
	if p.pos >= len(p.text) || p.text[p.pos] != '\'' {
		return 0, errorf(p.src, PragmaError, p.spanFrom(start), "malformed pragma: delimiter must be a single code point")
	}
	p.pos++
	return r, nil
}

func (p *pragmaScanner) end() *Error {
	p.skipSpace()
	if p.pos != len(p.text) {
		return errorf(p.src, PragmaError, p.spanFrom(p.pos), "malformed pragma: trailing text %q", p.text[p.pos:])
	}
	return nil
}
