package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/erraggy/openapi-snapshot/snaperrors"
)

// Parse decodes data as a single JSON value, preserving object key order and
// number literals. It is strict: empty input, truncated input, and trailing
// content after the top-level value are all parse errors. Any failure is
// reported with snaperrors.KindParse.
func Parse(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, snaperrors.New(snaperrors.KindParse, "document: invalid JSON: unexpected end of input")
		}
		return nil, snaperrors.Wrap(snaperrors.KindParse, "document: invalid JSON", err)
	}

	// A complete document has nothing after its top-level value.
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, snaperrors.Wrap(snaperrors.KindParse, "document: invalid JSON", err)
		}
		return nil, snaperrors.Newf(snaperrors.KindParse, "document: invalid JSON: unexpected %v after top-level value", tok)
	}
	return v, nil
}

// parseValue reads the next complete value from the decoder.
func parseValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			// The decoder only hands out a closing delimiter here on
			// malformed input it did not reject itself.
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return NewString(t), nil
	case json.Number:
		return NewNumber(t), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// parseObject reads members until the closing brace. Duplicate keys keep
// their first position with the last value winning.
func parseObject(dec *json.Decoder) (*Value, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (*Value, error) {
	arr := NewArray()
	for dec.More() {
		item, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Append(item)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
