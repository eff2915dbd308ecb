package either

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned when an encoded Either does not carry exactly one
// of the "left" and "right" keys.
var ErrMalformed = errors.New("either: expected exactly one of \"left\" or \"right\"")

type encoded[E, A any] struct {
	Left  *E `json:"left,omitempty" yaml:"left,omitempty"`
	Right *A `json:"right,omitempty" yaml:"right,omitempty"`
}

type raw struct {
	Left  json.RawMessage `json:"left"`
	Right json.RawMessage `json:"right"`
}

// MarshalJSON encodes the Either as {"left": e} or {"right": a}.
func (e Either[E, A]) MarshalJSON() ([]byte, error) {
	if e.isRight {
		return json.Marshal(map[string]A{"right": e.right})
	}
	return json.Marshal(map[string]E{"left": e.left})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (e *Either[E, A]) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("either: %w", err)
	}
	switch {
	case r.Right != nil && r.Left == nil:
		var a A
		if err := json.Unmarshal(r.Right, &a); err != nil {
			return fmt.Errorf("either: right: %w", err)
		}
		*e = Right[E](a)
	case r.Left != nil && r.Right == nil:
		var l E
		if err := json.Unmarshal(r.Left, &l); err != nil {
			return fmt.Errorf("either: left: %w", err)
		}
		*e = Left[A](l)
	default:
		return ErrMalformed
	}
	return nil
}

// MarshalYAML encodes the Either as a single-key mapping.
func (e Either[E, A]) MarshalYAML() (interface{}, error) {
	if e.isRight {
		return encoded[E, A]{Right: &e.right}, nil
	}
	return encoded[E, A]{Left: &e.left}, nil
}

// UnmarshalYAML decodes the form written by MarshalYAML.
func (e *Either[E, A]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return ErrMalformed
	}
	key, value := node.Content[0].Value, node.Content[1]
	switch key {
	case "right":
		var a A
		if err := value.Decode(&a); err != nil {
			return fmt.Errorf("either: right: %w", err)
		}
		*e = Right[E](a)
	case "left":
		var l E
		if err := value.Decode(&l); err != nil {
			return fmt.Errorf("either: left: %w", err)
		}
		*e = Left[A](l)
	default:
		return ErrMalformed
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (e Either[E, A]) LogValue() slog.Value {
	if e.isRight {
		return slog.GroupValue(slog.Any("right", e.right))
	}
	return slog.GroupValue(slog.Any("left", e.left))
}
