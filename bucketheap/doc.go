// Package bucketheap implements a linear-bucket min-priority structure for
// small non-negative integer keys, the kind degeneracy peeling needs: n
// pop/decrement pairs over values bounded by the graph's max degree, in
// amortised O(1) per operation.
//
// It trades the generality of a comparison-based container/heap queue for a
// bucket-indexed doubly-linked list: values live in [0, maxVal], and moving
// a key between buckets is a constant-time splice rather than a log-n
// sift.
package bucketheap
