// Package jsonwire is the reference wire encoding for response values.
// It maps each Value variant onto its nearest JSON type and nothing
// else: null, number (keeping Int and Float distinguishable), bool,
// string, array and object. Object members are written in the stored
// entry order, so the same value always encodes to the same bytes.
package jsonwire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	value "github.com/hanpama/responsegraph/internal/value"
)

// Marshal encodes v as compact JSON.
func Marshal(v value.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent encodes v with the given indentation.
func MarshalIndent(v value.Value, prefix, indent string) ([]byte, error) {
	compact, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes v as compact JSON followed by a newline, mirroring
// json.Encoder behavior.
func Encode(w io.Writer, v value.Value) error {
	b, err := Marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func writeValue(buf *bytes.Buffer, v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		buf.WriteString("null")
	case value.KindInt:
		buf.WriteString(strconv.FormatInt(int64(v.Int()), 10))
	case value.KindFloat:
		return writeFloat(buf, v.Float())
	case value.KindBoolean:
		buf.WriteString(strconv.FormatBool(v.Boolean()))
	case value.KindString:
		return writeString(buf, v.Text())
	case value.KindEnum:
		// Enum values serialize as their name string.
		return writeString(buf, string(v.Enum()))
	case value.KindList:
		buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, v.Item(i)); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case value.KindMap:
		buf.WriteByte('{')
		for i, e := range v.Entries() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, string(e.Name)); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeValue(buf, e.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode value of unexpected kind %s", v.Kind())
	}
	return nil
}

// writeFloat keeps floats visibly floating: when the shortest rendering
// has neither a fraction nor an exponent, a trailing .0 is added so a
// decoder never mistakes the number for an integer.
func writeFloat(buf *bytes.Buffer, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("cannot encode %v as JSON", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	buf.WriteString(s)
	if !bytes.ContainsAny([]byte(s), ".eE") {
		buf.WriteString(".0")
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
