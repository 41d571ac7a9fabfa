package jsonx

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Bytes returns the JSON document for v.
//
// Values that already are JSON are passed through without re-encoding: any byte
// slice type (including json.RawMessage) and strings holding a valid JSON
// document. Everything else is marshaled.
func Bytes(v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		if gjson.Valid(val) {
			return []byte(val), nil
		}
		return json.Marshal(val)
	case gjson.Result:
		return []byte(val.Raw), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return rv.Bytes(), nil
	}
	return json.Marshal(v)
}

// Clone round trips v through JSON into a fresh value of v's dynamic type.
//
// Only what survives encoding is copied: unexported struct fields come back as
// their zero value, and values that cannot be encoded (channels, functions)
// produce an error.
func Clone(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("jsonx: encode %T: %w", v, err)
	}

	target := reflect.New(reflect.TypeOf(v))
	if err := json.Unmarshal(b, target.Interface()); err != nil {
		return nil, fmt.Errorf("jsonx: decode %T: %w", v, err)
	}
	return target.Elem().Interface(), nil
}
