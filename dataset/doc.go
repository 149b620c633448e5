// SPDX-License-Identifier: MIT

// Package dataset owns the observation table the factor engines consume:
// a fixed n×p block of named, complete, finite real-valued columns.
//
// What lives here:
//
//	Table       — immutable named-column table; rejects ragged rows and
//	              missing (NaN/±Inf) values at construction
//	Standardize — per-column z-scoring with the sample n−1 divisor;
//	              constant columns abort with the column named
//	Describe    — per-variable mean/std/min/max/CV summaries
//	CorrelationMatrix — Pearson correlation of the raw table
//	Generate    — deterministic synthetic table (trend + cycle + smooth
//	              simplex noise + gaussian jitter, clipped range)
//
// Error surface (errors.Is):
//
//	ErrNoVariables, ErrDuplicateVariable, ErrRaggedRow, ErrMissingValue,
//	ErrUnknownVariable, ErrInsufficientRows, ErrDegenerateVariance,
//	ErrBadSpec
//
// A Table is never mutated after New; every accessor hands out copies.
// Standardization failures are structural (a property of the data), so
// they abort and name the offending column — callers may Drop the column
// and retry, the package never substitutes silently.
package dataset
