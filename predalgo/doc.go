/*
Package predalgo provides predicate-parameterized sequence algorithms over
abstract cursor ranges.

Every function operates on a half-open range [first, last) described by a
pair of cursors (see the ranges package) and a caller-supplied predicate or
comparator; no algorithm hard-codes an element type, a container, or a
default ordering. The set covers:

  - **Linear scans**: [FindIf], [CountIf], [AdjacentFind], plus the
    copying/mutating variants [CopyIf], [ReplaceIf], [ReplaceCopyIf],
    [RemoveCopyIf], [RemoveIf].
  - **Paired-range comparison**: [Mismatch], [Equal].
  - **Sorted-range search**: [LowerBound], [UpperBound], [EqualRange],
    [BinarySearch].

# Contracts

Preconditions are caller obligations, never runtime checks: ranges must be
valid, the search family requires input sorted under its comparator (a
strict weak ordering), and [Mismatch]/[Equal] require the second range to
have at least as many elements as the first. Violations yield meaningless
results, not panics from this package. Predicates must not mutate the range
they are scanning.

# Concurrency

The package holds no state and never allocates except through
caller-supplied output cursors. Concurrent calls are safe as long as no two
of them touch overlapping ranges with at least one mutating.
*/
package predalgo
