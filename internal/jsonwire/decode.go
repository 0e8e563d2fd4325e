package jsonwire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	value "github.com/hanpama/responsegraph/internal/value"
)

// Unmarshal decodes a JSON document into a Value, preserving object key
// order. Numbers without a fraction or exponent that fit in int32 decode
// to Int; everything else decodes to Float. Strings always decode to
// String: the wire format cannot tell an enum from a string, so Enum
// values do not survive a round trip through JSON.
func Unmarshal(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := readValue(dec)
	if err != nil {
		return value.Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return value.Value{}, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}

func readValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (value.Value, error) {
	switch t := tok.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.FromBoolean(t), nil
	case string:
		return value.FromString(t), nil
	case json.Number:
		return numberValue(t)
	case json.Delim:
		switch t {
		case '[':
			return readList(dec)
		case '{':
			return readMap(dec)
		}
	}
	return value.Value{}, fmt.Errorf("unexpected JSON token %v", tok)
}

func numberValue(n json.Number) (value.Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, err := n.Int64()
		if err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
			return value.FromInt(int32(i)), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return value.Value{}, fmt.Errorf("invalid number %q", s)
	}
	return value.FromFloat(f), nil
}

func readList(dec *json.Decoder) (value.Value, error) {
	var items []value.Value
	for dec.More() {
		item, err := readValue(dec)
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil { // closing ]
		return value.Value{}, err
	}
	return value.FromList(items...), nil
}

func readMap(dec *json.Decoder) (value.Value, error) {
	var entries []value.MapEntry
	seen := make(map[string]struct{})
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return value.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return value.Value{}, fmt.Errorf("unexpected object key %v", keyTok)
		}
		if _, dup := seen[key]; dup {
			return value.Value{}, fmt.Errorf("duplicate object key %q", key)
		}
		seen[key] = struct{}{}
		item, err := readValue(dec)
		if err != nil {
			return value.Value{}, err
		}
		entries = append(entries, value.MapEntry{Name: value.Name(key), Value: item})
	}
	if _, err := dec.Token(); err != nil { // closing }
		return value.Value{}, err
	}
	return value.FromMap(entries...), nil
}
