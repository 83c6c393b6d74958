package flexconf

import (
	"strings"
	"testing"
)

func TestPragmaKVSep(t *testing.T) {
	root := mustParse(t, "#?> SET KVSEP '='\na = 1\nb = 2\n")
	if v := field(t, root, "a"); v.Int != 1 {
		t.Errorf("a = %d, want 1", v.Int)
	}
	if v := field(t, root, "b"); v.Int != 2 {
		t.Errorf("b = %d, want 2", v.Int)
	}
}

func TestPragmaSpliter(t *testing.T) {
	root := mustParse(t, "#?> SET SPLITER ';'\n{a: 1; b: 2}")
	if root.Len() != 2 {
		t.Errorf("len = %d, want 2", root.Len())
	}
}

func TestPragmaBlockIdentifierSpellings(t *testing.T) {
	for _, directive := range []string{"BLOCKIDENTIFIER", "BLOCKIDENTIFER"} {
		t.Run(directive, func(t *testing.T) {
			root := mustParse(t, "#?> SET "+directive+" '[' ']'\n[ a: 1 ]\n")
			if v := field(t, root, "a"); v.Int != 1 {
				t.Errorf("a = %d, want 1", v.Int)
			}
		})
	}
}

func TestPragmaStability(t *testing.T) {
	remapped := mustParse(t, "#?> SET BLOCKIDENTIFIER '<' '>'\n< a: 1, b: < c: 2 > >\n")
	plain := mustParse(t, "{ a: 1, b: { c: 2 } }")
	if !remapped.Equal(plain) {
		t.Errorf("remapped delimiters changed the parse")
	}
}

func TestPragmaStacking(t *testing.T) {
	input := "#?> SET BLOCKIDENTIFIER '[' ']'\n#?> SET KVSEP '='\n#?> SET SPLITER ';'\n[ a = 1; b = [ c = 2 ] ]\n"
	root := mustParse(t, input)
	b := field(t, root, "b")
	if v := field(t, b, "c"); v.Int != 2 {
		t.Errorf("c = %d, want 2", v.Int)
	}
}

func TestPragmaErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown verb", "#?> UNSET KVSEP '='\na: 1\n"},
		{"unknown directive", "#?> SET SOMETHING '='\na: 1\n"},
		{"unquoted argument", "#?> SET KVSEP =\na: 1\n"},
		{"multi-rune delimiter", "#?> SET KVSEP '=='\na: 1\n"},
		{"missing argument", "#?> SET BLOCKIDENTIFIER '['\na: 1\n"},
		{"trailing text", "#?> SET KVSEP '=' extra\na: 1\n"},
		{"comment collision", "#?> SET KVSEP '#'\na: 1\n"},
		{"quote collision", "#?> SET KVSEP '\"'\na: 1\n"},
		{"backtick collision", "#?> SET KVSEP '`'\na: 1\n"},
		{"separator collision", "#?> SET KVSEP ','\na: 1\n"},
		{"open equals close", "#?> SET BLOCKIDENTIFIER '<' '<'\na: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseErr(t, tt.input)
			if err.Kind != PragmaError {
				t.Errorf("Kind = %v, want %v", err.Kind, PragmaError)
			}
		})
	}
}

func TestPragmaAfterDataIsComment(t *testing.T) {
	// once data has started, a pragma line is just a comment and the
	// delimiter set stays frozen
	root := mustParse(t, "{a: 1,\n#?> SET KVSEP '='\nb: 2}")
	if root.Len() != 2 {
		t.Errorf("len = %d, want 2", root.Len())
	}
	if _, ok := root.Get("b"); !ok {
		t.Errorf("missing key b")
	}
}

func TestPragmaOnlyLeadingLines(t *testing.T) {
	// blank and comment lines may precede pragmas
	root := mustParse(t, "\n# header\n#?> SET KVSEP '='\n\na = 1\n")
	if v := field(t, root, "a"); v.Int != 1 {
		t.Errorf("a = %d, want 1", v.Int)
	}
}

func TestPragmaErrorMentionsDirective(t *testing.T) {
	err := parseErr(t, "#?> SET SOMETHING '='\na: 1\n")
	if !strings.Contains(err.Message, "SOMETHING") {
		t.Errorf("Message = %q, want directive name", err.Message)
	}
}
