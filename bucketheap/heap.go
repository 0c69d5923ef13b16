package bucketheap

import "fmt"

// Absent is the sentinel used throughout the module for "no such key/link".
const Absent int32 = -1

// Heap is a linear-bucket min-priority queue keyed by small integers
// (vertex ids) with small non-negative integer values (degrees).
//
// Buckets indexed 0..maxVal each hold a doubly-linked list of the keys
// currently at that value, threaded through prev/next. Decrement unlinks a
// key from its current bucket and relinks it at the head of its new
// bucket — O(1) per operation, no rebalancing.
//
// A key that has been popped is marked in popped and never re-enters any
// bucket; Decrement on a popped key is a tolerated no-op that reports
// failure via its bool return, not a panic — callers that scan a stale
// neighbour list need that signal rather than a crash.
type Heap struct {
	size   int32
	maxVal int32
	min    int32

	heads []int32 // heads[v] = first key with value v, or Absent
	prev  []int32 // prev[k] = previous key in k's bucket, or Absent
	next  []int32 // next[k] = next key in k's bucket, or Absent
	value []int32 // value[k] = current value of key k
	popped []bool
}

// New builds a Heap over n keys (ids 0..n-1), with values bounded by
// maxVal and initial per-key values given by initialValues (len n).
//
// Complexity: O(n + maxVal).
func New(n int32, maxVal int32, initialValues []int32) *Heap {
	if int32(len(initialValues)) != n {
		panic(fmt.Sprintf("bucketheap: len(initialValues)=%d != n=%d", len(initialValues), n))
	}

	h := &Heap{
		size:   n,
		maxVal: maxVal,
		min:    maxVal,
		heads:  make([]int32, maxVal+1),
		prev:   make([]int32, n),
		next:   make([]int32, n),
		value:  make([]int32, n),
		popped: make([]bool, n),
	}
	for v := range h.heads {
		h.heads[v] = Absent
	}
	for k := int32(0); k < n; k++ {
		h.prev[k] = Absent
		h.value[k] = initialValues[k]
	}
	for k := int32(0); k < n; k++ {
		v := h.value[k]
		h.next[k] = h.heads[v]
		if h.heads[v] != Absent {
			h.prev[h.heads[v]] = k
		}
		h.heads[v] = k
		if v < h.min {
			h.min = v
		}
	}
	return h
}

// Len reports how many keys remain un-popped.
func (h *Heap) Len() int32 {
	return h.size
}

// Value returns the current value of key, regardless of whether it has
// been popped.
func (h *Heap) Value(key int32) int32 {
	return h.value[key]
}

// PopMin removes and returns the key with the smallest current value,
// marking it popped permanently. Panics if the heap is empty — callers
// must check Len() first, per the module's fatal-assertion policy for
// programmer errors.
//
// Amortised O(1): PopMin only advances the min pointer, and across the
// whole sequence of pops it advances at most maxVal plus the total amount
// by which Decrement has lowered it.
func (h *Heap) PopMin() (key, value int32) {
	if h.size == 0 {
		panic("bucketheap: PopMin on empty heap")
	}

	key = h.heads[h.min]
	value = h.min
	h.popped[key] = true
	h.size--

	h.heads[h.min] = h.next[key]
	if h.heads[h.min] != Absent {
		h.prev[h.heads[h.min]] = Absent
	}
	for h.min < h.maxVal && h.heads[h.min] == Absent {
		h.min++
	}
	return key, value
}

// Decrement lowers key's value by amount and relinks it into its new
// bucket. Returns false without effect if key has already been popped —
// the tolerated no-op a stale neighbour scan relies on. amount must not
// drive the value negative; callers only ever decrement by the number of
// still-present edges removed, which is structurally bounded.
func (h *Heap) Decrement(key, amount int32) bool {
	if h.popped[key] {
		return false
	}

	// Unlink from current bucket.
	if h.next[key] != Absent {
		h.prev[h.next[key]] = h.prev[key]
	}
	if h.prev[key] != Absent {
		h.next[h.prev[key]] = h.next[key]
	}
	if h.heads[h.value[key]] == key {
		h.heads[h.value[key]] = h.next[key]
	}

	newValue := h.value[key] - amount
	if newValue < 0 {
		panic(fmt.Sprintf("bucketheap: Decrement(%d, %d) would go negative from %d", key, amount, h.value[key]))
	}
	h.value[key] = newValue

	// Relink at the head of the new bucket.
	h.next[key] = h.heads[newValue]
	h.prev[key] = Absent
	if h.heads[newValue] != Absent {
		h.prev[h.heads[newValue]] = key
	}
	h.heads[newValue] = key

	if newValue < h.min {
		h.min = newValue
	}
	return true
}
