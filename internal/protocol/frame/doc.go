// Package frame owns the pre-codec byte layouts of the file transfer protocol.
//
// Ownership boundary:
// - control frame (file metadata) build/parse
// - data frame layout and segmentation
package frame
