// Package frontier provides the min-priority structures that feed Dijkstra's
// relaxation loop with the next node to settle.
//
// Two strategies are available, both satisfying Frontier:
//
//   - Heap: a binary min-heap keyed by tentative distance. A node whose
//     distance improves is pushed again; older entries stay in the heap
//     ("lazy decrease-key") and the consumer discards them when they surface
//     with a cost greater than the current best. O(log N) per Push/PopMin,
//     O((V+E) log V) per query.
//
//   - Scan: an unsettled set plus a best-distance table. PopMin linearly scans
//     the set for the minimum and removes it. O(V) per PopMin, O(V²) per
//     query; attractive for small, dense graphs and trivially correct.
//
// Both produce the same final shortest distances. Ties between equal
// distances are broken arbitrarily; callers must not rely on an order.
//
// A Frontier is owned by exactly one query and is not safe for concurrent use.
package frontier
