// Package matrix provides the dense numeric primitives behind feature
// embeddings: row-major float64 matrices with row views, row writes, column
// extraction, horizontal concatenation, and column selection.
//
// ✨ Design:
//   - Flat row-major backing slice (offset = row*cols + col) for cache
//     friendliness and cheap no-copy row views.
//   - Bounds-checked At/Set/SetRow/Col return errors instead of panicking;
//     RowView is the documented hot-path exception.
//   - No global state, no hidden allocation sharing: Clone, Col, HStack and
//     SelectColumns all produce independent storage.
//
// Concurrency: a Dense is not internally synchronized. Concurrent writers are
// safe only when they touch disjoint rows (RowView/SetRow), which is exactly
// the access pattern of the deepgl worker pool.
package matrix
