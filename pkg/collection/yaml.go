package collection

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a YAML document into a Value. Mapping order is kept, which is
// why this goes through yaml.Node instead of map[string]interface{}.
func FromYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return FromNode(&root)
}

// FromNode converts a decoded YAML node tree into a Value.
func FromNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case 0:
		return Null(), nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return FromNode(node.Content[0])
	case yaml.AliasNode:
		if node.Alias == nil {
			return Value{}, fmt.Errorf("line %d: dangling alias", node.Line)
		}
		return FromNode(node.Alias)
	case yaml.MappingNode:
		members := make([]Member, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			val, err := FromNode(node.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: key.Value, Value: val})
		}
		return Object(members...), nil
	case yaml.SequenceNode:
		elems := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			val, err := FromNode(child)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, val)
		}
		return Array(elems...), nil
	case yaml.ScalarNode:
		return fromScalar(node)
	}
	return Value{}, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
}

func fromScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		if isNumberLiteral(node.Value) {
			return Number(json.Number(node.Value)), nil
		}
		var i int64
		if err := node.Decode(&i); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return Number(json.Number(strconv.FormatInt(i, 10))), nil
	case "!!float":
		if isNumberLiteral(node.Value) {
			return Number(json.Number(node.Value)), nil
		}
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return Value{}, fmt.Errorf("line %d: %q has no JSON representation", node.Line, node.Value)
		}
		return Number(json.Number(strconv.FormatFloat(f, 'g', -1, 64))), nil
	}
	// Strings, timestamps and binary data are all carried as their text
	return String(node.Value), nil
}
