// Package dset provides a disjoint-set (union-find) forest over a dense
// non-negative integer id space.
//
// What:
//
//   - DisjointDenseIntSet tracks which sets in [0,N] have been merged.
//     Every integer up to the highest id seen is a set, so storage is O(N).
//   - Two merge policies are exposed as distinct operations: UnionSet
//     (union by rank, resulting root unspecified, amortized inverse-Ackermann
//     queries) and MergeAintoB (deterministic parenthood — b's root stays on
//     top — at the cost of the balanced-tree guarantee).
//
// Why:
//
//   - Terrain algorithms label large dense index spaces (region ids,
//     depression ids, watershed ids) and repeatedly merge those labels;
//     union-find with path compression does this in effectively O(1) per
//     operation.
//   - Callers that only need speed use UnionSet; callers that need to dictate
//     which label survives (e.g. merging a spurious region into its canonical
//     neighbor) use MergeAintoB.
//
// Complexity:
//
//   - MakeSet: amortized O(1) per created id.
//   - FindSet/UnionSet/SameSet: amortized O(α(N)) when only UnionSet is used;
//     MergeAintoB can degrade a later FindSet to O(N) worst case.
//
// Errors:
//
//   - RangeError: FindSet (and transitively UnionSet/SameSet) on an id outside
//     the allocated domain. MakeSet and MergeAintoB instead grow the domain
//     lazily; this asymmetry is deliberate and documented per operation.
//
// A DisjointDenseIntSet is not safe for concurrent use: every operation,
// including queries, may rewrite parent links through path compression.
package dset
