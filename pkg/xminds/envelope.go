package xminds

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Kind identifies the JSON type held by a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// RawBodyField is the envelope field that carries a non-JSON success body.
const RawBodyField = "body"

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a decoded JSON document. Every JSON object becomes a field-addressable
// Value, recursively, so v.Path("nested", "x") walks arbitrarily deep documents.
// Object keys keep the order in which the server sent them.
type Value struct {
	kind   Kind
	b      bool
	num    json.Number
	str    string
	arr    []*Value
	keys   []string
	fields map[string]*Value
}

// FieldError reports a failed lookup on a Value.
type FieldError struct {
	Field string
	Kind  Kind
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q on %s value: %v", e.Field, e.Kind, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewObject returns an empty object Value.
func NewObject() *Value {
	return &Value{kind: KindObject, fields: make(map[string]*Value)}
}

// NewString returns a string Value.
func NewString(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// Set adds or replaces a field on an object Value.
func (v *Value) Set(name string, field *Value) {
	if v.kind != KindObject {
		return
	}

	if _, exists := v.fields[name]; !exists {
		v.keys = append(v.keys, name)
	}

	v.fields[name] = field
}

// Kind returns the JSON type of the value. A nil Value reports KindNull.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}

	return v.kind
}

// IsNull reports whether the value is JSON null (or a nil Value).
func (v *Value) IsNull() bool {
	return v.Kind() == KindNull
}

// Field returns the named field of an object value.
func (v *Value) Field(name string) (*Value, error) {
	if v.Kind() != KindObject {
		return nil, &FieldError{Field: name, Kind: v.Kind(), Err: ErrNotObject}
	}

	field, ok := v.fields[name]
	if !ok {
		return nil, &FieldError{Field: name, Kind: KindObject, Err: ErrFieldNotFound}
	}

	return field, nil
}

// Path walks nested object fields, e.g. v.Path("error_data", "key").
func (v *Value) Path(names ...string) (*Value, error) {
	current := v

	for _, name := range names {
		next, err := current.Field(name)
		if err != nil {
			return nil, err
		}

		current = next
	}

	return current, nil
}

// Has reports whether an object value carries the named field.
func (v *Value) Has(name string) bool {
	if v.Kind() != KindObject {
		return false
	}

	_, ok := v.fields[name]

	return ok
}

// Keys returns object field names in document order.
func (v *Value) Keys() []string {
	if v.Kind() != KindObject {
		return nil
	}

	keys := make([]string, len(v.keys))
	copy(keys, v.keys)

	return keys
}

// Len returns the number of elements of an array or fields of an object.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.keys)
	default:
		return 0
	}
}

// Index returns the i-th element of an array value.
func (v *Value) Index(i int) (*Value, error) {
	if v.Kind() != KindArray {
		return nil, fmt.Errorf("%w: got %s", ErrNotArray, v.Kind())
	}

	if i < 0 || i >= len(v.arr) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(v.arr))
	}

	return v.arr[i], nil
}

// Array returns the elements of an array value.
func (v *Value) Array() ([]*Value, error) {
	if v.Kind() != KindArray {
		return nil, fmt.Errorf("%w: got %s", ErrNotArray, v.Kind())
	}

	return v.arr, nil
}

// Str returns the contents of a string value.
func (v *Value) Str() (string, error) {
	if v.Kind() != KindString {
		return "", fmt.Errorf("%w: want string, got %s", ErrWrongKind, v.Kind())
	}

	return v.str, nil
}

// Bool returns the contents of a bool value.
func (v *Value) Bool() (bool, error) {
	if v.Kind() != KindBool {
		return false, fmt.Errorf("%w: want bool, got %s", ErrWrongKind, v.Kind())
	}

	return v.b, nil
}

// Int64 returns a number value as an integer.
func (v *Value) Int64() (int64, error) {
	if v.Kind() != KindNumber {
		return 0, fmt.Errorf("%w: want number, got %s", ErrWrongKind, v.Kind())
	}

	n, err := v.num.Int64()
	if err != nil {
		return 0, fmt.Errorf("parsing %q as integer: %w", v.num, err)
	}

	return n, nil
}

// Float64 returns a number value as a float.
func (v *Value) Float64() (float64, error) {
	if v.Kind() != KindNumber {
		return 0, fmt.Errorf("%w: want number, got %s", ErrWrongKind, v.Kind())
	}

	f, err := v.num.Float64()
	if err != nil {
		return 0, fmt.Errorf("parsing %q as float: %w", v.num, err)
	}

	return f, nil
}

// Number returns the literal JSON number.
func (v *Value) Number() (json.Number, error) {
	if v.Kind() != KindNumber {
		return "", fmt.Errorf("%w: want number, got %s", ErrWrongKind, v.Kind())
	}

	return v.num, nil
}

// Interface converts the value to plain Go values: map[string]any, []any,
// string, json.Number, bool or nil.
func (v *Value) Interface() any {
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr))
		for i, elem := range v.arr {
			out[i] = elem.Interface()
		}

		return out
	case KindObject:
		out := make(map[string]any, len(v.keys))
		for _, key := range v.keys {
			out[key] = v.fields[key].Interface()
		}

		return out
	default:
		return nil
	}
}

// Decode projects the value onto a typed Go value using encoding/json rules.
func (v *Value) Decode(target any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding envelope: %w", err)
	}

	err = json.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("decoding envelope: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler, preserving object key order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	err := v.encode(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (v *Value) encode(buf *bytes.Buffer) error {
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		buf.WriteString(v.num.String())
	case KindString:
		data, err := json.Marshal(v.str)
		if err != nil {
			return fmt.Errorf("encoding string: %w", err)
		}

		buf.Write(data)
	case KindArray:
		buf.WriteByte('[')

		for i, elem := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}

			err := elem.encode(buf)
			if err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')

		for i, key := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}

			name, err := json.Marshal(key)
			if err != nil {
				return fmt.Errorf("encoding key: %w", err)
			}

			buf.Write(name)
			buf.WriteByte(':')

			err = v.fields[key].encode(buf)
			if err != nil {
				return err
			}
		}

		buf.WriteByte('}')
	}

	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}

	*v = *parsed

	return nil
}

// ParseJSON decodes a single JSON document into a Value.
func ParseJSON(data []byte) (*Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	value, err := decodeValue(decoder)
	if err != nil {
		return nil, fmt.Errorf("parsing JSON envelope: %w", err)
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing JSON envelope: %w", ErrTrailingData)
	}

	return value, nil
}

func decodeValue(decoder *json.Decoder) (*Value, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped once by ParseJSON
	}

	switch tok := token.(type) {
	case json.Delim:
		switch tok {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnexpectedToken, tok)
		}
	case bool:
		return &Value{kind: KindBool, b: tok}, nil
	case json.Number:
		return &Value{kind: KindNumber, num: tok}, nil
	case string:
		return &Value{kind: KindString, str: tok}, nil
	case nil:
		return &Value{kind: KindNull}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedToken, tok)
	}
}

func decodeObject(decoder *json.Decoder) (*Value, error) {
	object := NewObject()

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err //nolint:wrapcheck // wrapped once by ParseJSON
		}

		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", ErrUnexpectedToken, token)
		}

		field, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}

		object.Set(key, field)
	}

	// closing brace
	_, err := decoder.Token()
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped once by ParseJSON
	}

	return object, nil
}

func decodeArray(decoder *json.Decoder) (*Value, error) {
	array := &Value{kind: KindArray, arr: []*Value{}}

	for decoder.More() {
		elem, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}

		array.arr = append(array.arr, elem)
	}

	_, err := decoder.Token()
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped once by ParseJSON
	}

	return array, nil
}

// ParseResponse normalizes one HTTP exchange. 204 yields an empty object, a
// JSON success body is parsed, any other success body is returned verbatim
// under RawBodyField, and a non-2xx status yields an *APIError.
func ParseResponse(statusCode int, contentType string, body []byte) (*Value, error) {
	switch {
	case statusCode == http.StatusNoContent:
		return NewObject(), nil
	case statusCode >= 200 && statusCode < 300:
		if strings.Contains(contentType, "application/json") {
			if len(bytes.TrimSpace(body)) == 0 {
				return NewObject(), nil
			}

			return ParseJSON(body)
		}

		envelope := NewObject()
		envelope.Set(RawBodyField, NewString(string(body)))

		return envelope, nil
	default:
		return nil, NewAPIError(statusCode, body)
	}
}
