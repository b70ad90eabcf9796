// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package properties

import (
	"iter"
	"maps"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Set is an ordered mapping from property name to value.
//
// Keys are unique. Assigning to an existing key replaces its value and keeps
// the key at its original position, so iteration always follows the order in
// which keys were first added. The zero value is not usable; create sets with
// NewSet or SetFromMap.
type Set struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{m: orderedmap.New[string, string]()}
}

// SetFromMap returns a Set holding the entries of m. Go maps are unordered,
// so keys are added in lexical order to keep the output deterministic.
func SetFromMap(m map[string]string) *Set {
	s := NewSet()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		s.Set(k, m[k])
	}
	return s
}

// Get returns the value stored under key and whether it was present.
func (s *Set) Get(key string) (string, bool) {
	return s.m.Get(key)
}

// Set stores value under key.
func (s *Set) Set(key, value string) {
	s.m.Set(key, value)
}

// Delete removes key. It is a no-op if key is absent.
func (s *Set) Delete(key string) {
	s.m.Delete(key)
}

// Has reports whether key is present.
func (s *Set) Has(key string) bool {
	_, ok := s.m.Get(key)
	return ok
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return s.m.Len()
}

// Keys returns the keys in iteration order.
func (s *Set) Keys() []string {
	keys := make([]string, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// All returns an iterator over the entries in iteration order.
func (s *Set) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Map returns the entries as a plain map.
func (s *Set) Map() map[string]string {
	out := make(map[string]string, s.m.Len())
	for k, v := range s.All() {
		out[k] = v
	}
	return out
}

// Merge copies every entry of other into s. Values from other win.
func (s *Set) Merge(other *Set) {
	for k, v := range other.All() {
		s.Set(k, v)
	}
}

// Equal reports whether s and other hold the same entries, ignoring order.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for k, v := range s.All() {
		if ov, ok := other.Get(k); !ok || ov != v {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a JSON object, keeping key order.
func (s *Set) MarshalJSON() ([]byte, error) {
	return s.m.MarshalJSON()
}
