// Package session owns the Easy File Transfer Protocol session that runs over
// an 8B/6T line.
//
// Ownership boundary:
// - control frame first, then descending sequence-numbered data frames
// - one fresh codec call per frame
// - reassembly and storage of received files
package session
