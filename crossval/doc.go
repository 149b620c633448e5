// SPDX-License-Identifier: MIT

// Package crossval checks two independently computed eigen-spectra
// against each other. The two backends in package eigen share no code
// past the input matrix, so agreement within a relative tolerance is
// strong evidence that neither implementation is silently wrong.
//
// The comparison is per component: relΔ_k = |λA_k − λB_k| / |λA_k|,
// with relΔ = 0 when both values are exactly zero and +Inf when only
// the reference is. A component whose relΔ exceeds the tolerance is
// flagged; the report keeps every pair so callers can print the full
// table rather than just the verdict.
package crossval
