package keys

import (
	"sort"
	"strings"
)

// ExtractKeys flattens a nested mapping into dot-delimited key paths.
// Every mapping member yields a path; members that are themselves
// mappings are descended into. Arrays, nil and scalars terminate
// recursion at their own path. Keys are emitted in sorted order per
// mapping level so repeated runs over the same tree are byte-identical.
func ExtractKeys(tree map[string]any) []string {
	paths := []string{}
	walkKeys(tree, "", &paths)
	return paths
}

func walkKeys(m map[string]any, prefix string, out *[]string) {
	for _, k := range sortedKeys(m) {
		path := joinPath(prefix, k)
		*out = append(*out, path)
		if child, ok := m[k].(map[string]any); ok {
			walkKeys(child, path, out)
		}
	}
}

// EmptyLeaves returns the paths of every leaf whose value is "empty":
// nil, a whitespace-only string, an empty array or an empty mapping.
func EmptyLeaves(tree map[string]any) []string {
	paths := []string{}
	walkEmpty(tree, "", &paths)
	return paths
}

func walkEmpty(m map[string]any, prefix string, out *[]string) {
	for _, k := range sortedKeys(m) {
		path := joinPath(prefix, k)
		switch v := m[k].(type) {
		case nil:
			*out = append(*out, path)
		case string:
			if strings.TrimSpace(v) == "" {
				*out = append(*out, path)
			}
		case []any:
			if len(v) == 0 {
				*out = append(*out, path)
			}
		case map[string]any:
			if len(v) == 0 {
				*out = append(*out, path)
			} else {
				walkEmpty(v, path, out)
			}
		}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func sortedKeys(m map[string]any) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
