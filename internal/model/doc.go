// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the shared vocabulary of the Terraform documentation
// pipeline: the kinds of blocks a source file may declare, the ordered field
// records extracted from them, and the per-kind field order that decides table
// layout.
//
// # Core Concepts
//
//   - BlockKind: Either `variable` or `output`. A single source file declares
//     blocks of exactly one kind.
//
//   - Record: One declared block. It always carries the block `name` and zero
//     or more raw field values (`type`, `description`, `default`, ...). Values
//     are kept as the text found in the source; nothing is type-interpreted at
//     this stage.
//
//   - FieldOrder: The canonical column order for a kind. It is handed to the
//     extractor and to the table renderer explicitly, so no stage depends on a
//     package-level lookup table.
//
// Why a separate model package?
//
// The extractor, the table renderer, the tfvars synthesizer and the YAML export
// all speak in records. Keeping the record type here lets each of them stay a
// pure function over plain values, and lets the CLI layer validate user input
// (column names, block kinds) against the same definitions the core uses.
package model
