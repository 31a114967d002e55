package goscalar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// ============================================================
// JSON / YAML
// ============================================================

// MarshalJSON writes a float as a JSON number and a symbol as a JSON string.
// JSON has no NaN or infinities, so non-finite floats are written as their
// canonical text ("NaN", "inf", "-inf"), which Parse reads back as floats.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.IsSymbolic() {
		return json.Marshal(s.text)
	}
	if math.IsNaN(s.num) || math.IsInf(s.num, 0) {
		return json.Marshal(formatExp(s.num))
	}
	return json.Marshal(s.num)
}

// UnmarshalJSON accepts a number or a string. Strings follow Parse, so "2.5"
// decodes to a float and "theta" to a symbol.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("goscalar: expected float or string, got empty input")
	}
	switch c := data[0]; {
	case c == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("goscalar: decoding string: %w", err)
		}
		*s = Parse(text)
		return nil
	case c == '-' || isDigit(c):
		f, ok := parseFloatLiteral(string(data))
		if !ok {
			return fmt.Errorf("goscalar: invalid number %s", data)
		}
		*s = Float(f)
		return nil
	}
	return fmt.Errorf("goscalar: expected float or string, got %s", data)
}

// MarshalYAML emits a float64 or a string; yaml.v3 takes care of quoting
// symbols that would otherwise read back as another type.
func (s Scalar) MarshalYAML() (interface{}, error) {
	if s.IsSymbolic() {
		return s.text, nil
	}
	return s.num, nil
}

// UnmarshalYAML accepts !!float, !!int and !!str scalars.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("goscalar: line %d: expected float or string", node.Line)
	}
	switch node.ShortTag() {
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("goscalar: line %d: %w", node.Line, err)
		}
		*s = Float(f)
	case "!!int":
		var n int64
		if err := node.Decode(&n); err != nil {
			var u uint64
			if uerr := node.Decode(&u); uerr != nil {
				return fmt.Errorf("goscalar: line %d: %w", node.Line, err)
			}
			*s = Float(float64(u))
			return nil
		}
		*s = Int(n)
	case "!!str":
		*s = Parse(node.Value)
	default:
		return fmt.Errorf("goscalar: line %d: expected float or string, got %s", node.Line, node.ShortTag())
	}
	return nil
}
