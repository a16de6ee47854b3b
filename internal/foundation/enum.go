package foundation

import (
	"fmt"
	"strings"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps free-form settings input onto a closed set of values.
type Normalizer[T comparable] struct {
	values       map[string]T
	defaultValue T
}

// NewNormalizer creates a normalizer from spelling->value pairs. Several
// spellings may map to the same value.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	for k, v := range values {
		normalized[normalize(k)] = v
	}
	return &Normalizer[T]{values: normalized, defaultValue: defaultValue}
}

// Normalize returns the matching value, or the default for unknown input.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[normalize(raw)]; ok {
		return v
	}
	return n.defaultValue
}

// Lookup reports whether raw is a known spelling.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.values[normalize(raw)]
	return v, ok
}

// NormalizeWithError is Normalize without the silent fallback.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if v, ok := n.Lookup(raw); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value: %s", raw)
}
