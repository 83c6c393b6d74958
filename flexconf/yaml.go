package flexconf

import "github.com/goccy/go-yaml"

// MarshalYAML renders the value for goccy/go-yaml. Maps become
// yaml.MapSlice so insertion order survives the round trip to text.
func (v *Value) MarshalYAML() (any, error) {
	return v.yamlValue(), nil
}

func (v *Value) yamlValue() any {
	switch v.Kind {
	case ValueNull:
		return nil
	case ValueBool:
		return v.Bool
	case ValueInt:
		if v.Big != nil {
			return v.Big.String()
		}
		return v.Int
	case ValueFloat:
		return v.Float
	case ValueString:
		return v.Str
	case ValueMap:
		ms := make(yaml.MapSlice, 0, len(v.Keys))
		for _, k := range v.Keys {
			ms = append(ms, yaml.MapItem{Key: k, Value: v.Fields[k].yamlValue()})
		}
		return ms
	case ValueSeq:
		s := make([]any, len(v.Elems))
		for i, e := range v.Elems {
			s[i] = e.yamlValue()
		}
		return s
	}
	return nil
}
