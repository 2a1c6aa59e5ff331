// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Record, the flat result of extracting one declared block.
//
// Why an ordered map instead of map[string]string?
//
// Every consumer of a record cares about order. The table renderer needs to
// know which keys exist across all records in the order they were first seen,
// the YAML export writes keys in extraction order, and the block `name` must
// always come first even though it is derived from text that is not a field
// assignment. A plain Go map loses all of that, so the record keeps its keys in
// a slice next to the values.
package model

// Field is one key/value pair of a Record.
type Field struct {
	Key   string
	Value string
}

// Record is an insertion-ordered set of raw field values for one block.
// The zero value is an empty record ready to use.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord creates a record whose first key is `name`.
func NewRecord(name string) *Record {
	r := &Record{}
	r.Set(FieldName, name)
	return r
}

// Set stores value under key. A new key is appended to the key order; an
// existing key keeps its position.
func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (r *Record) Get(key string) (string, bool) {
	if r == nil || r.values == nil {
		return "", false
	}
	v, ok := r.values[key]
	return v, ok
}

// Value returns the value stored under key, or the empty string.
func (r *Record) Value(key string) string {
	v, _ := r.Get(key)
	return v
}

// Name returns the block name.
func (r *Record) Name() string {
	return r.Value(FieldName)
}

// Keys returns a copy of the keys in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Fields returns the key/value pairs in insertion order.
func (r *Record) Fields() []Field {
	if r == nil {
		return nil
	}
	out := make([]Field, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, Field{Key: k, Value: r.values[k]})
	}
	return out
}
