package profile

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
)

// rawRecord holds the two views of the decoded YAML document: a plain
// tree for schema validation and field access, and the declaration
// order of the mappings where order is semantically meaningful (skills
// categories, custom sections).
type rawRecord struct {
	tree        map[string]interface{}
	topKeys     []string
	skillsOrder []string
}

// decode parses YAML bytes into a rawRecord. Mapping order is captured
// with a second ordered decode because plain Go maps do not preserve it.
func decode(data []byte) (*rawRecord, error) {
	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, &DecodeError{Message: "failed to parse YAML record", Cause: err}
	}
	if tree == nil {
		return nil, &DecodeError{Message: "record is empty"}
	}

	var ordered yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &ordered, yaml.UseOrderedMap()); err != nil {
		return nil, &DecodeError{Message: "failed to parse YAML record", Cause: err}
	}

	raw := &rawRecord{tree: tree}
	for _, item := range ordered {
		key, ok := item.Key.(string)
		if !ok {
			continue
		}
		raw.topKeys = append(raw.topKeys, key)
		if key == "skills" {
			if categories, ok := item.Value.(yaml.MapSlice); ok {
				for _, cat := range categories {
					if label, ok := cat.Key.(string); ok {
						raw.skillsOrder = append(raw.skillsOrder, label)
					}
				}
			}
		}
	}

	return raw, nil
}

// scalarString renders a YAML scalar as a string. Numbers are
// formatted without notation changes so values like gpa: 3.9 survive.
func scalarString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	case nil:
		return "", true
	}
	return "", false
}

// getString returns the string value at key, or "" when absent.
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := scalarString(v); ok {
			return s
		}
	}
	return ""
}

// getBool returns the bool value at key and whether it was present.
func getBool(m map[string]interface{}, key string) (bool, bool) {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b, true
		}
	}
	return false, false
}

// getInt returns the integer value at key, or 0 when absent. YAML
// decoders surface integers as several widths depending on sign.
func getInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// getStringSlice returns the sequence of scalars at key. Non-scalar
// items are preserved via their default formatting rather than dropped.
func getStringSlice(m map[string]interface{}, key string) []string {
	seq, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(seq))
	for _, item := range seq {
		if s, ok := scalarString(item); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprintf("%v", item))
		}
	}
	return out
}

// getMapSlice returns the sequence of mappings at key.
func getMapSlice(m map[string]interface{}, key string) []map[string]interface{} {
	seq, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(seq))
	for _, item := range seq {
		if entry, ok := item.(map[string]interface{}); ok {
			out = append(out, entry)
		}
	}
	return out
}
