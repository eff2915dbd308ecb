package option

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// String implements fmt.Stringer.
func (o Option[A]) String() string {
	if o.isSome {
		return fmt.Sprintf("some(%v)", o.value)
	}
	return "none"
}

// LogValue implements slog.LogValuer.
func (o Option[A]) LogValue() slog.Value {
	if o.isSome {
		return slog.AnyValue(o.value)
	}
	return slog.StringValue("none")
}

// MarshalJSON encodes None as null and Some as its value.
//
// A Some whose value itself encodes as null (Some(nil) of a pointer, map or
// slice, or Some(None) of a nested Option) is indistinguishable from None and
// decodes back as None. The same holds for YAML.
func (o Option[A]) MarshalJSON() ([]byte, error) {
	if !o.isSome {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and anything else as Some.
func (o *Option[A]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = None[A]()
		return nil
	}
	var value A
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("option: %w", err)
	}
	*o = Some(value)
	return nil
}

// YAMLNoneTag marks a null sequence item that must decode as None. yaml.v3
// never passes a plain null to UnmarshalYAML, and drops null items of struct
// kind from sequences; codec.TypedYAMLCodec applies this tag to keep them.
const YAMLNoneTag = "!none"

// MarshalYAML encodes None as null and Some as its value.
func (o Option[A]) MarshalYAML() (interface{}, error) {
	if !o.isSome {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML decodes a YAMLNoneTag item as None and anything else as Some.
// A null mapping value never reaches it: yaml.v3 leaves the field at its zero
// value, which is None.
func (o *Option[A]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == YAMLNoneTag {
		*o = None[A]()
		return nil
	}
	var value A
	if err := node.Decode(&value); err != nil {
		return fmt.Errorf("option: %w", err)
	}
	*o = Some(value)
	return nil
}

// Scan implements sql.Scanner: NULL becomes None.
func (o *Option[A]) Scan(src any) error {
	var n sql.Null[A]
	if err := n.Scan(src); err != nil {
		return fmt.Errorf("option: %w", err)
	}
	*o = FromComma(n.V, n.Valid)
	return nil
}

// Value implements driver.Valuer: None becomes NULL.
func (o Option[A]) Value() (driver.Value, error) {
	return sql.Null[A]{V: o.value, Valid: o.isSome}.Value()
}
