// Package compiler turns markup templates into JavaScript render functions.
//
// The pipeline consists of:
//   - [Parser]: scans template text into a tree of [Element] and [Text] nodes
//   - [Emit]: walks the tree and produces `() => h(...)` source text
//
// Compilation never fails. Malformed markup degrades into text nodes and
// non-fatal [Warning] values that callers may inspect through
// [Parser.Warnings]. [GenerateGoFile] wraps compiled output into a Go source
// file for embedding.
package compiler
