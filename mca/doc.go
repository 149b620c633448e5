// SPDX-License-Identifier: MIT

// Package mca is the categorical association engine: multiple
// correspondence analysis over the tertile-discretized view of an
// observation table, decomposed through the Burt matrix.
//
// Algorithm outline:
//
//  1. Indicator Z (n×K, row sums = Q) from the categorical table; any
//     category with zero members aborts with ErrEmptyCategory before the
//     eigenproblem is formed.
//  2. Burt B = ZᵀZ: diagonal blocks hold category frequencies,
//     off-diagonal blocks the pairwise cross-tabulations.
//  3. Weighted residual S[j,k] = (B[j,k]/(nQ²) − c_j·c_k)/√(c_j·c_k)
//     with category masses c_j = n_j/(nQ) — the symmetric form of the
//     frequency-weighted generalized eigenproblem of correspondence
//     analysis. Its eigenvalues μ_α are the principal inertias of the
//     indicator analysis, i.e. the singular values of the Burt analysis;
//     the Burt principal inertias are λ_α = μ_α².
//  4. K−Q nontrivial dimensions: principal coordinates
//     F_jα = μ_α·v_jα/√c_j, contributions CTR_jα = c_j·F²_jα/λ_α
//     (summing to 1 per dimension), and cos²_jα = F²_jα/Σ_β F²_jβ over
//     all nontrivial dimensions (per-category χ²-distance denominator).
//  5. Inertia percentages use the closed-form total I = (1/Q)(K/Q − 1),
//     independent of the decomposition. They are structurally deflated
//     next to PCA variance shares — an artifact of indicator encoding,
//     not an error — so the Benzécri rescaling is reported as a separate
//     field and never overwrites the raw percentages.
//
// Complexity: O(n·K²) for the Burt matrix plus the backend's O(K³).
package mca
