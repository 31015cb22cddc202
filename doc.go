// Package algokata is your contest-ready toolbox of dynamic-programming
// engines and the small structures that feed them — from generic DAG and
// tree DP to digit counting, union-find and prefix sums.
//
// 🚀 What is algokata?
//
//	A single-threaded library of competitive-programming blocks:
//		• DP engines: pull/push DP over implicit state DAGs, reusable plans
//		• Tree DP: all-direction re-rooting in one linear pass
//		• Digit DP: count numerals under a huge bound, modulo 1e9+7
//		• Search: memoized DFS with goal collection & best-value tracking
//		• Structures: union-find (plain & rollback), cumulative sums, imos
//		  arrays, fixed-width bit vectors, coordinate compression
//		• Glue: key-addressed graphs, grid lattices, SCC condensation,
//		  predicate binary search, answer formatting helpers
//
// ✨ Why choose algokata?
//
//   - Rules-first API – one value describes a whole problem; the engine
//     owns traversal, ordering and memoization
//   - Loud on misuse, quiet on absence – broken preconditions panic,
//     unknown keys and empty inputs just report back
//   - Pure algorithms – no I/O, no goroutines, no globals
//
// Package map:
//
//	bisect/    — predicate binary search over ints and floats
//	bitvec/    — fixed-width bit vectors + 2^n enumeration
//	compress/  — coordinate compression with rank lookups
//	dagdp/     — pull/push/ordered DP over caller-defined state DAGs
//	digitdp/   — counting DP over decimal numerals
//	keygraph/  — key-addressed graphs, grids, tree folds, SCC split
//	memodfs/   — memoized depth-first search
//	prefixsum/ — cumulative sums (1D/2D) and imos difference arrays
//	strnum/    — yes/no answers, digit and bit-string formatting
//	treedp/    — re-rooting tree DP (every node as root in O(n))
//	unionfind/ — union by size, with an undo-log rollback variant
//
// Quick ASCII example:
//
//	      0
//	     / \
//	    1   2      treedp.Solve answers a subtree DP for all
//	   / \         five roots in a single two-pass walk.
//	  3   4
//
// Next up: 2-SAT riding on the SCC split, and lazy segment trees.
//
//	go get github.com/algokata/algokata
package algokata
