package flexconf

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// MarshalJSON encodes the value as JSON, emitting map entries in
// insertion order. Non-finite floats have no JSON representation and
// are rendered as the strings "+inf", "-inf" and "nan"; integers wider
// than int64 are written as plain JSON numbers.
func (v *Value) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	v.encodeJSON(&b)
	return b.Bytes(), nil
}

func (v *Value) encodeJSON(b *bytes.Buffer) {
	switch v.Kind {
	case ValueNull:
		b.WriteString("null")
	case ValueBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case ValueInt:
		if v.Big != nil {
			b.WriteString(v.Big.String())
		} else {
			b.WriteString(strconv.FormatInt(v.Int, 10))
		}
	case ValueFloat:
		switch {
		case math.IsInf(v.Float, 1):
			b.WriteString(`"+inf"`)
		case math.IsInf(v.Float, -1):
			b.WriteString(`"-inf"`)
		case math.IsNaN(v.Float):
			b.WriteString(`"nan"`)
		default:
			b.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 64))
		}
	case ValueString:
		writeJSONString(b, v.Str)
	case ValueMap:
		b.WriteByte('{')
		for i, k := range v.Keys {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSONString(b, k)
			b.WriteByte(':')
			v.Fields[k].encodeJSON(b)
		}
		b.WriteByte('}')
	case ValueSeq:
		b.WriteByte('[')
		for i, e := range v.Elems {
			if i > 0 {
				b.WriteByte(',')
			}
			e.encodeJSON(b)
		}
		b.WriteByte(']')
	}
}

func writeJSONString(b *bytes.Buffer, s string) {
	data, err := json.Marshal(s)
	if err != nil {
		data = []byte(`""`)
	}
	b.Write(data)
}
