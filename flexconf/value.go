package flexconf

import (
	"math"
	"math/big"
)

type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueInt
	ValueFloat
	ValueString
	ValueMap
	ValueSeq
)

var valueKindNames = map[ValueKind]string{
	ValueNull:   "null",
	ValueBool:   "bool",
	ValueInt:    "int",
	ValueFloat:  "float",
	ValueString: "string",
	ValueMap:    "map",
	ValueSeq:    "seq",
}

func (k ValueKind) String() string {
	if name, ok := valueKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is one node of a parsed document. Exactly the fields implied by
// Kind are meaningful: Bool, Int/Big, Float or Str for scalars, Keys
// and Fields for maps, Elems for sequences. Keys holds map insertion
// order; iteration over Keys reproduces source order.
//
// Integers wider than int64 are carried exactly in Big; Int is only
// valid when Big is nil.
type Value struct {
	Kind ValueKind
	Span Span

	Bool  bool
	Int   int64
	Big   *big.Int
	Float float64
	Str   string

	Keys   []string
	Fields map[string]*Value
	Elems  []*Value
}

// Len returns the member count of a container, zero for scalars.
func (v *Value) Len() int {
	switch v.Kind {
	case ValueMap:
		return len(v.Keys)
	case ValueSeq:
		return len(v.Elems)
	}
	return 0
}

// Get looks up a map entry by key.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind != ValueMap {
		return nil, false
	}
	val, ok := v.Fields[key]
	return val, ok
}

// At returns the i-th element of a sequence, nil when out of range.
func (v *Value) At(i int) *Value {
	if v.Kind != ValueSeq || i < 0 || i >= len(v.Elems) {
		return nil
	}
	return v.Elems[i]
}

func (v *Value) bigInt() *big.Int {
	if v.Big != nil {
		return v.Big
	}
	return big.NewInt(v.Int)
}

// Equal reports deep structural equality, ignoring spans. Two NaN
// floats compare equal so that equivalent documents compare equal.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueNull:
		return true
	case ValueBool:
		return v.Bool == o.Bool
	case ValueInt:
		return v.bigInt().Cmp(o.bigInt()) == 0
	case ValueFloat:
		if math.IsNaN(v.Float) && math.IsNaN(o.Float) {
			return true
		}
		return v.Float == o.Float
	case ValueString:
		return v.Str == o.Str
	case ValueMap:
		if len(v.Keys) != len(o.Keys) {
			return false
		}
		for i, k := range v.Keys {
			if o.Keys[i] != k || !v.Fields[k].Equal(o.Fields[k]) {
				return false
			}
		}
		return true
	case ValueSeq:
		if len(v.Elems) != len(o.Elems) {
			return false
		}
		for i, e := range v.Elems {
			if !e.Equal(o.Elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts the value into plain Go data: nil, bool, int64,
// *big.Int, float64, string, map[string]any and []any. Map insertion
// order is not represented in the native view; use Keys when order
// matters.
func (v *Value) Interface() any {
	switch v.Kind {
	case ValueNull:
		return nil
	case ValueBool:
		return v.Bool
	case ValueInt:
		if v.Big != nil {
			return v.Big
		}
		return v.Int
	case ValueFloat:
		return v.Float
	case ValueString:
		return v.Str
	case ValueMap:
		m := make(map[string]any, len(v.Keys))
		for _, k := range v.Keys {
			m[k] = v.Fields[k].Interface()
		}
		return m
	case ValueSeq:
		s := make([]any, len(v.Elems))
		for i, e := range v.Elems {
			s[i] = e.Interface()
		}
		return s
	}
	return nil
}
