// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the block kinds a source file may contain and the canonical
// field order of each kind.
//
// Why pass the field order around instead of looking it up?
//
// The order is configuration, not state. The CLI decides which columns to print
// (`--include-only`, `--add-columns`) by starting from this order, and the
// extractor decides which fields to look for from the same list. Returning a
// fresh slice on every call means no caller can mutate what another sees.
package model

import "slices"

// BlockKind is the keyword that introduces a declared block.
type BlockKind string

const (
	KindVariable BlockKind = "variable"
	KindOutput   BlockKind = "output"
)

// Field names understood by the extractor.
const (
	FieldName        = "name"
	FieldType        = "type"
	FieldDescription = "description"
	FieldSensitive   = "sensitive"
	FieldDefault     = "default"
	FieldDependsOn   = "depends_on"
	FieldValue       = "value"
)

// String returns the keyword as written in source files.
func (k BlockKind) String() string {
	return string(k)
}

// Valid reports whether k is one of the supported kinds.
func (k BlockKind) Valid() bool {
	return k == KindVariable || k == KindOutput
}

// FieldOrder returns the canonical column order for the kind. The returned
// slice is a copy and may be modified by the caller.
func FieldOrder(kind BlockKind) []string {
	switch kind {
	case KindOutput:
		return []string{FieldName, FieldDescription, FieldSensitive, FieldDependsOn, FieldValue}
	case KindVariable:
		return []string{FieldName, FieldType, FieldDescription, FieldSensitive, FieldDefault}
	default:
		return nil
	}
}

// HasField reports whether field belongs to the canonical order of the kind.
func HasField(kind BlockKind, field string) bool {
	return slices.Contains(FieldOrder(kind), field)
}

// TfvarsFields is the set of fields the tfvars synthesizer needs from each
// variable block.
func TfvarsFields() []string {
	return []string{FieldName, FieldType, FieldDefault, FieldSensitive, FieldDescription}
}
