package flexconf

import "strconv"

type blockShape int

const (
	shapeUndecided blockShape = iota
	shapeKeyed
	shapePositional
)

// containerBuilder accumulates the members of one block behind the
// unified container model: every member has a key, positional members
// receiving implicit integer keys "0", "1", …. The shape is frozen by
// the first member; a member of the other shape is rejected. finish
// promotes an all-positional container to a Seq, so the integer-keyed
// intermediate form never reaches the caller.
type containerBuilder struct {
	src   *Source
	shape blockShape
	keys  []string
	index map[string]int
	vals  []*Value
}

func newContainerBuilder(src *Source) *containerBuilder {
	return &containerBuilder{src: src, index: make(map[string]int)}
}

func (b *containerBuilder) empty() bool {
	return b.shape == shapeUndecided
}

func (b *containerBuilder) putKeyed(key string, span Span, v *Value) *Error {
	switch b.shape {
	case shapePositional:
		return errorf(b.src, SyntaxError, span, "mixed keyed and positional items in one block")
	case shapeUndecided:
		b.shape = shapeKeyed
	}
	if _, dup := b.index[key]; dup {
		return errorf(b.src, KeyError, span, "duplicate key %q", key)
	}
	b.index[key] = len(b.keys)
	b.keys = append(b.keys, key)
	b.vals = append(b.vals, v)
	return nil
}

func (b *containerBuilder) putPositional(span Span, v *Value) *Error {
	switch b.shape {
	case shapeKeyed:
		return errorf(b.src, SyntaxError, span, "mixed keyed and positional items in one block")
	case shapeUndecided:
		b.shape = shapePositional
	}
	key := strconv.Itoa(len(b.keys))
	b.index[key] = len(b.keys)
	b.keys = append(b.keys, key)
	b.vals = append(b.vals, v)
	return nil
}

// finish materializes the container. An undecided block is an empty map
// by convention.
func (b *containerBuilder) finish(span Span) *Value {
	if b.shape == shapePositional {
		return &Value{Kind: ValueSeq, Span: span, Elems: b.vals}
	}
	fields := make(map[string]*Value, len(b.keys))
	for i, k := range b.keys {
		fields[k] = b.vals[i]
	}
	keys := b.keys
	if keys == nil {
		keys = []string{}
	}
	return &Value{Kind: ValueMap, Span: span, Keys: keys, Fields: fields}
}
