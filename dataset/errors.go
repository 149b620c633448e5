// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set. All errors are matched via
// errors.Is; wrapping adds the offending row/column context.

package dataset

import "errors"

var (
	// ErrNoVariables is returned when a table is built without columns
	// or without rows.
	ErrNoVariables = errors.New("dataset: no variables or no rows")

	// ErrDuplicateVariable indicates two columns share a name.
	ErrDuplicateVariable = errors.New("dataset: duplicate variable name")

	// ErrRaggedRow indicates a row whose length differs from the header.
	ErrRaggedRow = errors.New("dataset: ragged row")

	// ErrMissingValue indicates a NaN or ±Inf entry; the engine assumes
	// complete data and rejects incomplete rows as a precondition failure.
	ErrMissingValue = errors.New("dataset: missing or non-finite value")

	// ErrUnknownVariable indicates a referenced column name is absent.
	ErrUnknownVariable = errors.New("dataset: unknown variable")

	// ErrInsufficientRows indicates too few observations for the requested
	// statistic (sample moments need n >= 2).
	ErrInsufficientRows = errors.New("dataset: insufficient rows")

	// ErrDegenerateVariance indicates a constant column: its sample
	// standard deviation is zero and z-scoring would divide by zero.
	ErrDegenerateVariance = errors.New("dataset: zero-variance column")

	// ErrBadSpec indicates an invalid synthetic series specification.
	ErrBadSpec = errors.New("dataset: invalid series spec")
)
