// SPDX-License-Identifier: MIT

// Package pca is the linear factor engine: it eigen-decomposes the
// correlation structure of a standardized observation table and derives
// the tables downstream consumers read.
//
// Algorithm outline:
//
//  1. Σ = Xᵀ X / (n−1) over the z-scored input — the correlation matrix.
//     Symmetry is re-verified within a floating tolerance as a sanity
//     invariant before any decomposition.
//  2. Eigen-decompose Σ through a pluggable eigen.Backend; eigenvalues
//     come back sorted descending with orthonormal vectors. Tiny negative
//     values from floating noise clamp to zero.
//  3. Derive scores Z_k = X·v_k, loadings ℓ_jk = v_jk·√λ_k, communalities
//     h²_j = Σ_{k≤K} ℓ²_jk, and the variance-share sequence
//     τ_k = λ_k/Σλ·100 (never rounded inside the engine).
//  4. Selection: Kaiser (λ > 1), cumulative variance (smallest K reaching
//     Options.VarianceTarget), and the full share sequence for scree
//     inspection — the engine never picks the elbow itself.
//
// Rank deficiency (p > n−1) is recoverable: the decomposition proceeds
// with trailing eigenvalues near zero, a warning goes to Options.Logger
// and Result.RankDeficient is set. Structural input errors abort.
//
// Complexity: O(n·p²) for Σ plus the backend's O(p³) decomposition.
package pca
