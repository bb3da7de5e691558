// SPDX-License-Identifier: MPL-2.0

package props

import (
	"maps"
	"slices"
)

// Properties is a flat configuration mapping. Keys are unique and a later
// write for the same key replaces the earlier value.
type Properties map[string]string

// New returns an empty mapping.
func New() Properties {
	return Properties{}
}

// Merge layers the given mappings from lowest to highest precedence and
// returns the result as a new mapping. Inputs are never modified.
func Merge(layers ...Properties) Properties {
	size := 0
	for _, layer := range layers {
		size += len(layer)
	}

	merged := make(Properties, size)
	for _, layer := range layers {
		maps.Copy(merged, layer)
	}
	return merged
}

// Clone returns a shallow copy of p. A nil mapping clones to an empty one.
func (p Properties) Clone() Properties {
	return Merge(p)
}

// Get returns the value stored under key and whether it was present.
func (p Properties) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Value returns the value stored under key, or "" when absent.
func (p Properties) Value(key string) string {
	return p[key]
}

// Keys returns the keys of p in lexical order.
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Rename returns a copy of p where the entry stored under from, if any, is
// removed and its value stored under to. An existing value under to is
// replaced.
func Rename(p Properties, from, to string) Properties {
	renamed := p.Clone()
	v, ok := renamed[from]
	if !ok {
		return renamed
	}
	delete(renamed, from)
	renamed[to] = v
	return renamed
}
