// Package eigenkit is an in-memory multivariate factor-analysis toolkit:
// principal component analysis and multiple correspondence analysis over
// the same observation table, with cross-validated eigen-decompositions.
//
// 🚀 What is eigenkit?
//
//	A deterministic, dependency-light library that brings together:
//		• matrix/   — row-major Dense, deterministic kernels, Jacobi eigensolver
//		• dataset/  — named observation tables, z-score standardization,
//		              descriptive summaries, a seeded synthetic generator
//		• tertile/  — equal-frequency 3-band discretization + indicator encoding
//		• eigen/    — pluggable symmetric-eigen backends (Jacobi, gonum)
//		• pca/      — loadings, communalities, variance shares, Kaiser/80% selection
//		• mca/      — Burt-matrix correspondence analysis: inertia, coordinates,
//		              contributions, cos², Benzécri correction
//		• crossval/ — two independent backends, one divergence report
//
// ✨ Why choose eigenkit?
//
//   - Deterministic by construction — fixed loop orders, seeded generators,
//     no global state; identical inputs give identical outputs
//   - Rock-solid error surface — sentinel errors, errors.Is matching,
//     offending columns and categories named in every failure
//   - Pure numeric core — all I/O, plotting and persistence stay outside;
//     the library consumes tables and produces tables
//
// Typical flow:
//
//	table → dataset.Standardize → pca.Analyze ┐
//	table → tertile.Discretize  → mca.Analyze ┼→ result tables
//	two eigen.Backends → crossval.Run ────────┘→ divergence report
//
// Dive into each package's doc.go for algorithms, error sets and complexity.
//
//	go get github.com/katalvlaran/eigenkit
package eigenkit
