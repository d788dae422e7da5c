package jsonopt

import "gopkg.in/yaml.v3"

// MarshalYAML emits an explicit null for the undefined and null states and
// the payload otherwise. Tag fields `yaml:"name,omitempty"`: yaml.v3 consults
// IsZero, so undefined fields drop out of the mapping.
func (o Optional[T]) MarshalYAML() (any, error) {
	if o.state != stateDefined {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML decodes a mapping value that was present in the document: a
// !!null node yields the null state, anything else decodes as T into the
// defined state. Absent keys never reach this method; they leave the zero
// value, which is Undefined.
func (o *Optional[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*o = Null[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}
