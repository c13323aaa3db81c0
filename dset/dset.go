package dset

import "fmt"

// RangeError reports a query on a set id outside the allocated dense domain.
type RangeError struct {
	// ID is the offending set id.
	ID uint32
	// Size is the number of allocated sets; valid ids are [0, Size).
	Size uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dset: set %d is outside the valid range [0,%d)", e.ID, e.Size)
}

// DisjointDenseIntSet is a union-find forest over the dense id space
// [0, MaxElement]. The parent graph is always a forest; sets are never
// deleted, the domain only grows.
type DisjointDenseIntSet struct {
	// rank[i] bounds the height of the subtree rooted at i.
	rank []uint32
	// parent[i] is i's parent set; a root is its own parent.
	parent []uint32
}

// NewDisjointDenseIntSet constructs an empty forest.
// Sets are created on demand by MakeSet and MergeAintoB.
func NewDisjointDenseIntSet() *DisjointDenseIntSet {
	return &DisjointDenseIntSet{}
}

// NewDisjointDenseIntSetSized constructs a forest with n singleton sets
// 0..n-1 preallocated. More sets can be created on demand.
// Complexity: O(n).
func NewDisjointDenseIntSetSized(n uint32) *DisjointDenseIntSet {
	d := &DisjointDenseIntSet{
		rank:   make([]uint32, n),
		parent: make([]uint32, n),
	}
	for i := uint32(0); i < n; i++ {
		d.parent[i] = i
	}

	return d
}

// checkSize grows the dense domain so that n is a valid id, creating every
// intermediate set as a fresh self-parented, rank-0 singleton. Growth uses
// append's amortized-doubling capacity, but Len/MaxElement always report the
// exact logical domain.
func (d *DisjointDenseIntSet) checkSize(n uint32) {
	for i := uint32(len(d.parent)); i <= n; i++ {
		d.rank = append(d.rank, 0)
		d.parent = append(d.parent, i)
	}
}

// MakeSet ensures sets 0..n exist, creating any missing ids as singletons.
// Idempotent if n already exists.
func (d *DisjointDenseIntSet) MakeSet(n uint32) {
	d.checkSize(n)
}

// Len returns the number of allocated sets.
func (d *DisjointDenseIntSet) Len() int {
	return len(d.parent)
}

// MaxElement returns the highest allocated set id.
// Meaningful only when Len() > 0.
func (d *DisjointDenseIntSet) MaxElement() uint32 {
	return uint32(len(d.parent)) - 1
}

// findRoot follows parent links from a known-valid id to its root, then
// rewrites every visited link directly to that root (path compression).
// Iterative two-pass walk: pathological pre-compression chains cannot
// overflow the stack.
func (d *DisjointDenseIntSet) findRoot(n uint32) uint32 {
	root := n
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[n] != root {
		d.parent[n], n = root, d.parent[n]
	}

	return root
}

// FindSet returns the representative (root) id of n's set, compressing the
// visited parent chain so that subsequent lookups along it are O(1).
// Returns a RangeError if n has not been allocated; FindSet never grows the
// domain.
func (d *DisjointDenseIntSet) FindSet(n uint32) (uint32, error) {
	if n >= uint32(len(d.parent)) {
		return 0, &RangeError{ID: n, Size: uint32(len(d.parent))}
	}

	return d.findRoot(n), nil
}

// UnionSet joins the sets containing a and b. The resulting root is
// implementation-chosen: the shorter tree is attached under the taller one's
// root so queries stay within the log2(N) height bound (and, with path
// compression, effectively O(α(N))). Callers that need a deterministic
// surviving root should use MergeAintoB instead.
// A no-op if a and b already share a root.
// Returns a RangeError if either id is unallocated.
func (d *DisjointDenseIntSet) UnionSet(a, b uint32) error {
	rootA, err := d.FindSet(a)
	if err != nil {
		return err
	}
	rootB, err := d.FindSet(b)
	if err != nil {
		return err
	}
	if rootA == rootB {
		return nil
	}

	// Keep rootA the shorter tree.
	if d.rank[rootA] > d.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	d.parent[rootA] = rootB
	// Equal heights: the merged tree grows taller by exactly one.
	if d.rank[rootA] == d.rank[rootB] {
		d.rank[rootB]++
	}

	return nil
}

// MergeAintoB joins the sets containing a and b, forcing b's root to remain
// the representative: after the call, FindSet(a) == FindSet(b) == b's
// pre-merge root. Both ids are allocated on demand, growing the domain as
// needed. b's root's rank is bumped only as far as the height-bound
// invariant requires, so the forest may become unbalanced — this trades the
// UnionSet query guarantee for caller-controlled parenthood.
// A no-op if a and b already share a root.
func (d *DisjointDenseIntSet) MergeAintoB(a, b uint32) {
	if a > b {
		d.checkSize(a)
	} else {
		d.checkSize(b)
	}

	rootA := d.findRoot(a)
	rootB := d.findRoot(b)
	if rootA == rootB {
		return
	}

	d.parent[rootA] = rootB
	if d.rank[rootA] >= d.rank[rootB] {
		d.rank[rootB] = d.rank[rootA] + 1
	}
}

// SameSet reports whether a and b belong to the same set.
// Returns a RangeError if either id is unallocated.
func (d *DisjointDenseIntSet) SameSet(a, b uint32) (bool, error) {
	rootA, err := d.FindSet(a)
	if err != nil {
		return false, err
	}
	rootB, err := d.FindSet(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}
