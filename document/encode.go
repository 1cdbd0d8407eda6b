package document

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON emits the value as compact JSON with object members in their
// stored order. It implements json.Marshaler.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent emits the value as indented JSON, preserving member order.
// The compact form is produced first and re-indented, the same way the
// ordered and indented forms relate in encoding/json.
func (v *Value) MarshalIndent(prefix, indent string) ([]byte, error) {
	compact, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeValue assembles compact JSON by hand so member order survives;
// scalars go through json.Marshal for correct escaping and number
// validation.
func writeValue(buf *bytes.Buffer, v *Value) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
		return nil
	case KindBool:
		if v.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case KindNumber:
		return writeScalar(buf, v.num)
	case KindString:
		return writeScalar(buf, v.str)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindObject:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeScalar(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeValue(buf, m.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		buf.WriteString("null")
		return nil
	}
}

func writeScalar(buf *bytes.Buffer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
