package jsonopt

// Package jsonopt provides:
//
// - Optional[T], a tri-state JSON field value distinguishing keys absent from a
//   payload (undefined) from keys present with an explicit null (null) and keys
//   present with a decoded value (defined)
// - Decoder bindings for encoding/json, goccy/go-json and gopkg.in/yaml.v3
//   (absent fields stay at the zero value; present fields route through the
//   Unmarshal hooks). Omission of undefined fields on encode needs a zero-aware
//   encoder: encoding/json with `omitzero`, or yaml.v3 with `omitempty`;
//   goccy/go-json ignores omitzero and emits null for undefined fields
// - PresenceMap collection via ScanJSON for auditing payload shape
// - Merge-patch application via Apply/ApplyPtr
//
// Design policy:
// - Keep only public APIs in the root package; put the token scanner under internal/.
// - Callback-based operations (IfPresent, Filter, Map, FlatMap, ...) hand the raw
//   payload pointer to the callback, nil included when the state is null. Classic
//   optionals refuse to do this; the deviation is the entire reason jsonopt exists,
//   and every affected operation documents it.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	type userPatch struct {
//		Name jsonopt.Optional[string] `json:"name,omitzero"`
//		Age  jsonopt.Optional[int]    `json:"age,omitzero"`
//	}
//
//	var p userPatch
//	_ = json.Unmarshal(body, &p)
//	jsonopt.Apply(&user.Name, p.Name) // defined sets, null clears, undefined keeps
//
