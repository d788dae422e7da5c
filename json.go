package jsonopt

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON emits null for both the undefined and null states and the
// encoded payload otherwise. Whether an undefined field appears in the output
// at all is the enclosing struct's decision: tag the field
// `json:"name,omitzero"` so the encoder consults IsZero and omits it.
// Only encoding/json (Go 1.24+) honors omitzero; goccy/go-json ignores the
// option and emits null for undefined fields, so encode with encoding/json
// when undefined fields must vanish from the output. Decoding is identical
// under both.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.state != stateDefined {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes a field that was present in the payload: a JSON null
// token yields the null state, anything else decodes as T into the defined
// state. Absent fields never reach this method; they leave the zero value,
// which is Undefined. A decode failure for T propagates verbatim and leaves
// the receiver unchanged.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*o = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}

func isJSONNull(data []byte) bool { return string(data) == "null" }

// Field extracts one top-level field of a JSON object as an Optional without
// declaring a carrier struct: a missing key yields Undefined, an explicit
// null yields Null, and any other value decodes as T.
func Field[T any](data []byte, key string) (Optional[T], error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return Undefined[T](), err
	}
	raw, ok := obj[key]
	if !ok {
		return Undefined[T](), nil
	}
	var o Optional[T]
	if err := o.UnmarshalJSON(raw); err != nil {
		return Undefined[T](), err
	}
	return o, nil
}
