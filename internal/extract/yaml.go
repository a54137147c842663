package extract

import (
	"gopkg.in/yaml.v3"
)

// ParseYAML flattens a nested YAML mapping into dotted leaf key paths.
func ParseYAML(data []byte) (Set, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	keys := make(Set)
	flattenYAML("", raw, keys)
	return keys, nil
}

func flattenYAML(prefix string, node map[string]interface{}, keys Set) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]interface{}); ok {
			flattenYAML(key, child, keys)
		} else {
			keys.Add(key)
		}
	}
}
