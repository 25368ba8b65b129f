// Package linecode implements the 100BASE-T4 8B/6T line code.
//
// Ownership boundary:
// - the 256-entry code table and the per-stream delimiters
// - cumulative weight (DC balance) correction
// - three-way stream interleaving on encode and decode
//
// The package holds no mutable state; every Encode/Decode call starts from a
// reset balance state.
package linecode
