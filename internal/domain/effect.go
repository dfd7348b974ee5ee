package domain

import (
	"encoding/json"
	"fmt"
)

// Effect is one gameplay side effect (or quest trigger) attached to an item.
// Besides type, value and description an effect keeps every other key of its
// source record as a parameter, so it round-trips unchanged.
type Effect struct {
	Type        string
	Value       float64
	Description string

	params    Record
	shorthand bool
}

// NewEffect builds an effect from its parts. params may be nil.
func NewEffect(kind string, value float64, description string, params Record) Effect {
	p := params.Clone()
	if p == nil {
		p = Record{}
	}
	p["type"] = kind
	p["value"] = value
	if description != "" {
		p["description"] = description
	}
	return Effect{Type: kind, Value: value, Description: description, params: p}
}

// ParseEffect decodes an effect from either its object form or the
// shorthand string form used by some content files ("instant_heal").
func ParseEffect(v any) (Effect, error) {
	switch t := v.(type) {
	case string:
		return Effect{Type: t, shorthand: true}, nil
	case map[string]any:
		return effectFromRecord(Record(t)), nil
	case Record:
		return effectFromRecord(t), nil
	}
	return Effect{}, fmt.Errorf("%w: effect must be an object or string, got %T", ErrMalformedRecord, v)
}

// ParseEffects decodes a list of effects. A nil value yields an empty list.
func ParseEffects(v any) ([]Effect, error) {
	var list []any
	switch t := v.(type) {
	case nil:
		return []Effect{}, nil
	case []Effect:
		return append([]Effect{}, t...), nil
	case []any:
		list = t
	case []map[string]any:
		for _, m := range t {
			list = append(list, m)
		}
	case []string:
		for _, s := range t {
			list = append(list, s)
		}
	default:
		return nil, fmt.Errorf("%w: effects must be a list, got %T", ErrMalformedRecord, v)
	}
	out := make([]Effect, 0, len(list))
	for i, raw := range list {
		e, err := ParseEffect(raw)
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func effectFromRecord(r Record) Effect {
	e := Effect{params: r.Clone()}
	e.Type = Text(r["type"])
	e.Value, _ = Number(r["value"])
	e.Description = Text(r["description"])
	return e
}

// Param returns a parameter rendered as text ("" when absent).
func (e Effect) Param(key string) string {
	return Text(e.params[key])
}

// NumberParam returns a numeric parameter (0 when absent or not numeric).
func (e Effect) NumberParam(key string) float64 {
	f, _ := Number(e.params[key])
	return f
}

// Export returns the persistable form of the effect.
func (e Effect) Export() any {
	if e.shorthand {
		return e.Type
	}
	return e.params.Clone()
}

// MarshalJSON implements json.Marshaler.
func (e Effect) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Export())
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Effect) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseEffect(raw)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
