package flexconf

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestValueEqual(t *testing.T) {
	a := mustParse(t, "{x: 1, y: {\"a\", \"b\"}}")
	b := mustParse(t, "x: 1\ny:\n    \"a\"\n    \"b\"\n")
	if !a.Equal(b) {
		t.Errorf("equivalent documents compare unequal")
	}

	c := mustParse(t, "{x: 1, y: {\"a\", \"c\"}}")
	if a.Equal(c) {
		t.Errorf("different documents compare equal")
	}

	small := &Value{Kind: ValueInt, Int: 5}
	wide := &Value{Kind: ValueInt, Big: big.NewInt(5)}
	if !small.Equal(wide) {
		t.Errorf("int64 and big.Int forms of the same value compare unequal")
	}

	nan1 := &Value{Kind: ValueFloat, Float: math.NaN()}
	nan2 := &Value{Kind: ValueFloat, Float: math.NaN()}
	if !nan1.Equal(nan2) {
		t.Errorf("nan values compare unequal")
	}
}

func TestValueJSON(t *testing.T) {
	root := mustParse(t, `{b: 1, a: "x", c: {true, null}, d: 2.5}`)
	data, err := json.Marshal(root)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"b":1,"a":"x","c":[true,null],"d":2.5}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestValueJSONSpecials(t *testing.T) {
	root := mustParse(t, "p: +inf\nn: -inf\nq: nan\nbig: 99999999999999999999999999\n")
	data, err := json.Marshal(root)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"p":"+inf","n":"-inf","q":"nan","big":99999999999999999999999999}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestValueYAML(t *testing.T) {
	root := mustParse(t, `{b: 1, a: "x"}`)
	data, err := yaml.Marshal(root)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := "b: 1\na: x\n"
	if string(data) != want {
		t.Errorf("YAML = %q, want %q", data, want)
	}
}

func TestValueInterface(t *testing.T) {
	root := mustParse(t, `{a: 1, b: {2, 3}}`)
	got := root.Interface()
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Interface() = %T, want map", got)
	}
	if m["a"] != int64(1) {
		t.Errorf("a = %v", m["a"])
	}
	s, ok := m["b"].([]any)
	if !ok || len(s) != 2 || s[1] != int64(3) {
		t.Errorf("b = %v", m["b"])
	}
}

func TestValueAccessors(t *testing.T) {
	root := mustParse(t, `{a: 1}`)
	if _, ok := root.Get("missing"); ok {
		t.Errorf("Get(missing) = true")
	}
	if root.At(0) != nil {
		t.Errorf("At on a map returned a value")
	}
	seq := mustParse(t, `{1, 2}`)
	if seq.At(5) != nil {
		t.Errorf("At out of range returned a value")
	}
	if seq.Len() != 2 {
		t.Errorf("Len = %d, want 2", seq.Len())
	}
}
