package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// displayNameKeys are tried in order when extracting a display name from an item.
var displayNameKeys = []string{"title", "name", "file", "id", "message"}

// detailKeys are tried in order when extracting a failure or partial-success
// detail from an item.
var detailKeys = []string{"error", "partial_reason", "reason", "detail"}

// Item is one unit of work's outcome record: an open-ended mapping of string
// keys to arbitrary values. The system never requires any particular key; keys
// used for display are read defensively with a fallback. Insertion order is
// preserved and survives JSON and YAML round-trips.
type Item struct {
	keys   []string
	values map[string]interface{}
}

// NewItem creates an empty item
func NewItem() *Item {
	return &Item{
		values: make(map[string]interface{}),
	}
}

// Set stores a value under key, appending the key to the insertion order if it
// is new. Returns the item for chaining.
func (it *Item) Set(key string, value interface{}) *Item {
	if it.values == nil {
		it.values = make(map[string]interface{})
	}
	if _, exists := it.values[key]; !exists {
		it.keys = append(it.keys, key)
	}
	it.values[key] = value
	return it
}

// Get returns the value stored under key
func (it *Item) Get(key string) (interface{}, bool) {
	v, ok := it.values[key]
	return v, ok
}

// Len returns the number of keys in the item
func (it *Item) Len() int {
	return len(it.keys)
}

// Keys returns the item's keys in insertion order
func (it *Item) Keys() []string {
	keys := make([]string, len(it.keys))
	copy(keys, it.keys)
	return keys
}

// DisplayName extracts a human-readable label for the item. Common naming keys
// are tried first, then the first key/value pair, then a placeholder.
func (it *Item) DisplayName() string {
	for _, key := range displayNameKeys {
		if v, ok := it.values[key]; ok {
			return fmt.Sprint(v)
		}
	}
	if len(it.keys) > 0 {
		first := it.keys[0]
		return fmt.Sprintf("%s: %v", first, it.values[first])
	}
	return "unknown"
}

// Detail extracts a failure or partial-success reason from the item, or an
// empty string when none of the known detail keys are present.
func (it *Item) Detail() string {
	for _, key := range detailKeys {
		if v, ok := it.values[key]; ok {
			return fmt.Sprint(v)
		}
	}
	return ""
}

// MarshalJSON encodes the item as a JSON object with keys in insertion order
func (it *Item) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range it.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyData, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyData)
		buf.WriteByte(':')
		valueData, err := json.Marshal(it.values[key])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal item key %q: %w", key, err)
		}
		buf.Write(valueData)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the item, preserving key order.
// Nested objects decode as *Item, arrays as []interface{}, numbers as
// json.Number so values survive a round-trip unchanged.
func (it *Item) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object for item, got %v", tok)
	}

	it.keys = nil
	it.values = make(map[string]interface{})

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key in item, got %v", keyTok)
		}
		value, err := decodeJSONValue(dec)
		if err != nil {
			return fmt.Errorf("failed to decode item key %q: %w", key, err)
		}
		it.Set(key, value)
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// decodeJSONValue reads one JSON value from the decoder's token stream
func decodeJSONValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		nested := NewItem()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("expected string key, got %v", keyTok)
			}
			value, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			nested.Set(key, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return nested, nil
	case '[':
		list := []interface{}{}
		for dec.More() {
			value, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

// UnmarshalYAML decodes a YAML mapping into the item, preserving key order
func (it *Item) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping for item, got %s at line %d", yamlKindName(node.Kind), node.Line)
	}

	it.keys = nil
	it.values = make(map[string]interface{})

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("failed to decode item key at line %d: %w", keyNode.Line, err)
		}
		value, err := decodeYAMLValue(valueNode)
		if err != nil {
			return fmt.Errorf("failed to decode item key %q: %w", key, err)
		}
		it.Set(key, value)
	}
	return nil
}

// decodeYAMLValue converts a YAML node into a value, keeping nested mappings
// as ordered items
func decodeYAMLValue(node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.MappingNode:
		nested := NewItem()
		if err := nested.UnmarshalYAML(node); err != nil {
			return nil, err
		}
		return nested, nil
	case yaml.SequenceNode:
		list := make([]interface{}, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := decodeYAMLValue(child)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	default:
		var value interface{}
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	}
}

// MarshalYAML encodes the item as a YAML mapping with keys in insertion order
func (it *Item) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range it.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(it.values[key]); err != nil {
			return nil, fmt.Errorf("failed to encode item key %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

func yamlKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
