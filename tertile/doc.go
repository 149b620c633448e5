// SPDX-License-Identifier: MIT

// Package tertile discretizes continuous variables into three ordered,
// equal-frequency bands and expands the result into the indicator (one-hot)
// encoding that correspondence analysis consumes.
//
// Algorithm outline:
//
//  1. Per variable, compute the 33rd and 67th percentile of its own
//     empirical distribution via linear interpolation between order
//     statistics (h = (n−1)·p). Thresholds are never shared across
//     variables.
//  2. Assign Low when x ≤ Q33, Medium when Q33 < x ≤ Q67, High when
//     x > Q67. Boundaries are inclusive on the lower side, so heavy ties
//     at a cut point can produce unequal band sizes.
//  3. Indicator expansion: one binary column per (variable, level) pair;
//     each row carries exactly one 1 per variable, so row sums equal the
//     number of discretized variables.
//
// Errors:
//   - ErrInsufficientData — fewer than 3 rows cannot form 3 bands.
//
// Determinism: pure functions of the input column; a fixed input always
// produces identical cut points and labels.
//
// Complexity: O(n·log n) per variable for the sorted quantiles,
// O(n·K) for the indicator expansion.
package tertile
