// Package codec encodes and decodes typed values as JSON or YAML and exposes
// the outcome as Either or Option.
//
// Option fields encode as null when absent and Either values as an object
// holding exactly one of "left" or "right", so structs built from this
// module's containers round-trip through either format.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/authcorp/libs/go/fp/either"
	"github.com/authcorp/libs/go/fp/option"
	"gopkg.in/yaml.v3"
)

// ErrTrailingData reports input left over after the decoded value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// TypedCodec encodes and decodes values of T.
type TypedCodec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// TypedJSONCodec encodes values of T as JSON.
type TypedJSONCodec[T any] struct {
	Pretty bool
	Indent string
	// Strict rejects object keys that do not match a field of T.
	Strict bool
}

// NewTypedJSONCodec creates a compact JSON codec.
func NewTypedJSONCodec[T any]() *TypedJSONCodec[T] {
	return &TypedJSONCodec[T]{Indent: "  "}
}

// WithPretty enables indented output.
func (c *TypedJSONCodec[T]) WithPretty() *TypedJSONCodec[T] {
	c.Pretty = true
	return c
}

// WithStrict enables rejection of unknown fields.
func (c *TypedJSONCodec[T]) WithStrict() *TypedJSONCodec[T] {
	c.Strict = true
	return c
}

// Encode encodes v.
func (c *TypedJSONCodec[T]) Encode(v T) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if c.Pretty {
		data, err = json.MarshalIndent(v, "", c.Indent)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("codec: encode json: %w", err)
	}
	return data, nil
}

// Decode decodes data into a T.
func (c *TypedJSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(data))
	if c.Strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("codec: decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return v, fmt.Errorf("codec: decode json: %w", ErrTrailingData)
	}
	return v, nil
}

// TypedYAMLCodec encodes values of T as YAML.
type TypedYAMLCodec[T any] struct {
	Indent int
	// Strict rejects mapping keys that do not match a field of T.
	Strict bool
}

// NewTypedYAMLCodec creates a YAML codec indenting with two spaces.
func NewTypedYAMLCodec[T any]() *TypedYAMLCodec[T] {
	return &TypedYAMLCodec[T]{Indent: 2}
}

// WithIndent sets the indentation width.
func (c *TypedYAMLCodec[T]) WithIndent(indent int) *TypedYAMLCodec[T] {
	c.Indent = indent
	return c
}

// WithStrict enables rejection of unknown fields.
func (c *TypedYAMLCodec[T]) WithStrict() *TypedYAMLCodec[T] {
	c.Strict = true
	return c
}

// Encode encodes v.
func (c *TypedYAMLCodec[T]) Encode(v T) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.Indent)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode decodes data into a T. Empty input decodes to the zero value.
//
// yaml.v3 skips null sequence items whose element type is a struct without
// asking its unmarshaler, so a None inside a []Option[A] would vanish. Decode
// retags those items with option.YAMLNoneTag before decoding.
func (c *TypedYAMLCodec[T]) Decode(data []byte) (T, error) {
	var (
		v    T
		root yaml.Node
	)
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return v, nil
		}
		return v, fmt.Errorf("codec: decode yaml: %w", err)
	}
	tagNullItems(&root, reflect.TypeFor[T]())

	if !c.Strict {
		if err := root.Decode(&v); err != nil {
			return v, fmt.Errorf("codec: decode yaml: %w", err)
		}
		return v, nil
	}
	// KnownFields is only available on a Decoder.
	retagged, err := yaml.Marshal(&root)
	if err != nil {
		return v, fmt.Errorf("codec: decode yaml: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(retagged))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("codec: decode yaml: %w", err)
	}
	return v, nil
}

var yamlUnmarshaler = reflect.TypeFor[yaml.Unmarshaler]()

// tagNullItems walks node alongside the Go type it decodes into and tags the
// null items of sequences whose elements are struct-kinded unmarshalers.
func tagNullItems(node *yaml.Node, t reflect.Type) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			tagNullItems(child, t)
		}
	case yaml.SequenceNode:
		if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
			return
		}
		elem := t.Elem()
		nullable := elem.Kind() == reflect.Struct && reflect.PointerTo(elem).Implements(yamlUnmarshaler)
		for _, item := range node.Content {
			if nullable && item.Kind == yaml.ScalarNode && item.ShortTag() == "!!null" {
				item.Tag = option.YAMLNoneTag
				continue
			}
			tagNullItems(item, elem)
		}
	case yaml.MappingNode:
		switch t.Kind() {
		case reflect.Map:
			for i := 1; i < len(node.Content); i += 2 {
				tagNullItems(node.Content[i], t.Elem())
			}
		case reflect.Struct:
			fields := yamlFields(t)
			for i := 0; i+1 < len(node.Content); i += 2 {
				if ft, ok := fields[node.Content[i].Value]; ok {
					tagNullItems(node.Content[i+1], ft)
				}
			}
		}
	}
}

// yamlFields maps the YAML keys of a struct to their field types, following
// yaml.v3's naming: the tag name, else the lowercased field name.
func yamlFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type)
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() && !f.Anonymous {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}
		if slices.Contains(strings.Split(opts, ","), "inline") {
			if ft := f.Type; ft.Kind() == reflect.Struct {
				maps.Copy(fields, yamlFields(ft))
			}
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		fields[name] = f.Type
	}
	return fields
}

// EncodeEither encodes v, returning the error as a Left.
func EncodeEither[T any](c TypedCodec[T], v T) either.Either[error, []byte] {
	return either.FromError(c.Encode(v))
}

// DecodeEither decodes data, returning the error as a Left.
func DecodeEither[T any](c TypedCodec[T], data []byte) either.Either[error, T] {
	return either.FromError(c.Decode(data))
}

// DecodeOption decodes data, discarding the error: malformed input is None.
func DecodeOption[T any](c TypedCodec[T], data []byte) option.Option[T] {
	return option.TryCatch(func() (T, error) {
		return c.Decode(data)
	})
}

// EncodeJSON encodes v as compact JSON.
func EncodeJSON[T any](v T) ([]byte, error) {
	return NewTypedJSONCodec[T]().Encode(v)
}

// DecodeJSON decodes JSON into a T.
func DecodeJSON[T any](data []byte) (T, error) {
	return NewTypedJSONCodec[T]().Decode(data)
}

// EncodeYAML encodes v as YAML.
func EncodeYAML[T any](v T) ([]byte, error) {
	return NewTypedYAMLCodec[T]().Encode(v)
}

// DecodeYAML decodes YAML into a T.
func DecodeYAML[T any](data []byte) (T, error) {
	return NewTypedYAMLCodec[T]().Decode(data)
}
