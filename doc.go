// Package reflectdb provides an in-memory, queryable database of reflected
// program entities — namespaces, types, classes, enums, enum constants,
// functions, and fields — extracted by scanning compiled translation units,
// for consumption by a downstream code-generation pipeline.
//
// # Pipeline
//
// The intended deployment has three phases:
//
//  1. Scan: an external walker processes each translation unit independently,
//     building one Database per unit via [Database.AddPrimitive] and saving it
//     with [SaveSnapshot]. Units share no state and may run fully in parallel.
//
//  2. Merge: a coordinator folds the per-unit snapshots into one aggregate
//     with [Combine] — snapshots load in parallel, merging is strictly
//     sequential in argument order.
//
//  3. Consume: the downstream generator reads the aggregate through the name
//     table and per-kind stores, or through the SQLite export written by the
//     reflectdb CLI.
//
// # Names and forward references
//
// Entities reference their enclosing scope and field types by [Name] — an
// interned handle carrying a deterministic 32-bit content hash — never by
// pointer. The hash of a string is identical across independently running
// processes, which is what makes cross-instance merging sound, and a Name may
// refer to a scope or type that has no registered record (yet, or ever);
// resolution is always by name.
//
// # Overloading
//
// Stores are duplicate-permitting: many entities may share one name. A
// Function's overloads are told apart by a scanner-supplied unique id, and
// parameters attach to their overload through that id. First-match lookups
// are deterministic but not overload-complete; use the range form to see
// every entry under a name.
package reflectdb
