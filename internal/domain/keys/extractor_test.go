package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeys_Nested(t *testing.T) {
	tree := map[string]any{
		"database": map[string]any{
			"host": "localhost",
			"pool": map[string]any{"size": 10},
		},
		"name": "svc",
	}

	got := ExtractKeys(tree)
	assert.Equal(t, []string{
		"database",
		"database.host",
		"database.pool",
		"database.pool.size",
		"name",
	}, got)
}

func TestExtractKeys_ArraysAreTerminal(t *testing.T) {
	tree := map[string]any{
		"hosts": []any{
			map[string]any{"name": "a"},
			map[string]any{"name": "b"},
		},
	}

	got := ExtractKeys(tree)
	assert.Equal(t, []string{"hosts"}, got, "array elements must not expand into indexed paths")
}

func TestExtractKeys_NilRoot(t *testing.T) {
	assert.Empty(t, ExtractKeys(nil))
}

func TestExtractKeys_ScalarAndNullLeaves(t *testing.T) {
	tree := map[string]any{
		"a": nil,
		"b": 42,
		"c": true,
	}

	got := ExtractKeys(tree)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestExtractKeys_Deterministic(t *testing.T) {
	tree := map[string]any{
		"z": 1, "a": 1, "m": map[string]any{"y": 1, "b": 1},
	}

	first := ExtractKeys(tree)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExtractKeys(tree))
	}
}

func TestEmptyLeaves(t *testing.T) {
	tree := map[string]any{
		"blank":     "   ",
		"null":      nil,
		"emptyList": []any{},
		"emptyMap":  map[string]any{},
		"filled": map[string]any{
			"value": "x",
			"gap":   "",
		},
		"list": []any{1, 2},
	}

	got := EmptyLeaves(tree)
	assert.Equal(t, []string{"blank", "emptyList", "emptyMap", "filled.gap", "null"}, got)
}

func TestEmptyLeaves_NilRoot(t *testing.T) {
	assert.Empty(t, EmptyLeaves(nil))
}
